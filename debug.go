package glide

import (
	"fmt"
	"io"
	"os"
)

// debugOut receives debug lines. Tests swap it for a buffer.
var debugOut io.Writer = os.Stderr

// debugf prints one [glide] line. Only called when a group's debug mode is on.
func debugf(format string, args ...any) {
	_, _ = fmt.Fprintf(debugOut, "[glide] "+format+"\n", args...)
}
