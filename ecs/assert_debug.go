//go:build korindebug

package ecs

const debugAssertions = true
