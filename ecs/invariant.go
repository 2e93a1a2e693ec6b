package ecs

import "fmt"

// assert panics when cond is false in builds tagged korindebug. It is reserved
// for programming errors; recoverable failures return errors instead.
func assert(cond bool, format string, args ...any) {
	if debugAssertions && !cond {
		panic(fmt.Sprintf("korin assertion failed: "+format, args...))
	}
}
