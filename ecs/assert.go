//go:build !korindebug

package ecs

// debugAssertions is false in release builds, so assert calls compile away.
const debugAssertions = false
