package logging

import (
	"context"
	"runtime"
	"runtime/debug"
)

// RecoverAndLog logs a panic with its stack trace and system info, then
// re-panics. Defer it at the top of main and of long-lived goroutines.
func RecoverAndLog(ctx context.Context) {
	r := recover()
	if r == nil {
		return
	}

	FromContext(ctx).Error().
		Interface("panic", r).
		Str("go", runtime.Version()).
		Str("os", runtime.GOOS).
		Str("arch", runtime.GOARCH).
		Int("goroutines", runtime.NumGoroutine()).
		Bytes("stack", debug.Stack()).
		Msg("panic")

	panic(r)
}
