package primitive

import "fmt"

// wrapf wraps a sentinel error with a formatted detail message while
// keeping errors.Is(err, sentinel) working.
func wrapf(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{sentinel}, args...)...)
}
