package nudge

import (
	"fmt"
	"os"
)

// Debugf appends one formatted line to the file named by the NUDGE_DEBUG
// environment variable. It is a no-op when the variable is unset. Terminal
// programs own stdout, so diagnostics go to a side file; tail it while
// reproducing an input problem:
//
//	NUDGE_DEBUG=/tmp/nudge.log ./yourapp
func Debugf(format string, args ...any) {
	path := os.Getenv("NUDGE_DEBUG")
	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return
	}
	_, _ = fmt.Fprintf(f, format+"\n", args...)
	_ = f.Close()
}
