package logging

import (
	"fmt"
	"os"
)

var verbose bool

// SetVerbose force-enables debug output regardless of the TL_DEBUG
// environment variable, wired from the application's verbose setting.
func SetVerbose(v bool) {
	verbose = v
}

// DebugEnabled returns true if debug mode is enabled via TL_DEBUG environment variable
func DebugEnabled() bool {
	return verbose || os.Getenv("TL_DEBUG") != ""
}

// Debugf prints a formatted debug message only if debug mode is enabled
func Debugf(format string, args ...interface{}) {
	if DebugEnabled() {
		fmt.Printf(format, args...)
	}
}

// Debugln prints a debug message followed by a newline only if debug mode is enabled
func Debugln(args ...interface{}) {
	if DebugEnabled() {
		fmt.Println(args...)
	}
}
