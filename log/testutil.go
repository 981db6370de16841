package log

import (
	"flag"
	"os"
	"testing"
)

// defaultMainTest indicates what debug-level should be used when `go test -v`
// is called.
const defaultMainTest = 2

// MainTest can be called from TestMain. It will parse the flags and set the
// debug level to defaultMainTest when the tests are verbose, 0 otherwise.
// An optional level replaces defaultMainTest.
func MainTest(m *testing.M, ls ...int) {
	flag.Parse()
	l := defaultMainTest
	if len(ls) > 0 {
		l = ls[0]
	}
	TestOutput(testing.Verbose(), l)
	os.Exit(m.Run())
}

// TestOutput sets the DebugVisible to 0 if 'show'
// is false, else it will set DebugVisible to 'level'
//
// Usage: TestOutput( test.Verbose(), 2 )
func TestOutput(show bool, level int) {
	if show {
		SetDebugVisible(level)
	} else {
		SetDebugVisible(0)
	}
}
