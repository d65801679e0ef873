package dom

import (
	"github.com/gopherjs/gopherjs/js"
)

// EnableDebug turns Debug output on. Warnings and errors are always logged.
var EnableDebug = false

// Debug logs a message to the browser console if debug mode is enabled.
func Debug(args ...interface{}) {
	if EnableDebug {
		js.Global.Get("console").Call("log", args...)
	}
}

// Warn logs a warning to the browser console.
func Warn(args ...interface{}) {
	js.Global.Get("console").Call("warn", args...)
}

// Error logs an error to the browser console.
func Error(args ...interface{}) {
	js.Global.Get("console").Call("error", args...)
}
