// Package diag holds host-facing diagnostics: a replaceable logger and a greeting.
package diag

import (
	"io"
	"log"
)

// Greeting is returned by Greet.
const Greeting = "Hello, numcrab!"

// Logf is the package-level diagnostic logger. It is a no-op until Setup or
// SetLogger installs one.
var Logf func(format string, v ...any) = func(string, ...any) {}

// SetLogger replaces the package logger. Passing nil sets a no-op logger.
func SetLogger(f func(format string, v ...any)) {
	if f == nil {
		Logf = func(string, ...any) {}
		return
	}
	Logf = f
}

// Setup routes diagnostics to w.
func Setup(w io.Writer) {
	SetLogger(log.New(w, "numcrab: ", log.LstdFlags).Printf)
}

// Greet logs the greeting and returns it.
func Greet() string {
	Logf("%s", Greeting)
	return Greeting
}
