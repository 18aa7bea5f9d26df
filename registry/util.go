package registry

import (
	"fmt"
	"strconv"
)

func wrapf(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{sentinel}, args...)...)
}

func indexSegment(i int) string {
	return "[" + strconv.Itoa(i) + "]"
}
