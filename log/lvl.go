// Package log is the leveled logger used throughout sigbench. Messages of
// level 1 are always shown, higher levels need a higher debug level set with
// SetDebugVisible, the `--debug` flag or the DEBUG_LVL environment variable.
//
// Nothing in this package is meant to be called from inside a timed section
// of a benchmark: every call takes a lock and writes to the registered
// loggers.
package log

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"runtime"
	"strconv"
	"sync"
	"time"

	ct "github.com/daviddengcn/go-colortext"
)

const (
	lvlWarning = iota - 20
	lvlError
	lvlFatal
	lvlPanic
	lvlInfo
	lvlPrint
)

// NamePadding is the padding of function names in the output. It grows with
// the longest name seen when colors are on.
var NamePadding = 40

// LinePadding is the padding of line numbers, used like NamePadding.
var LinePadding = 3

// outputLines can be false to suppress outputting of lines in tests.
var outputLines = true

var debugMut sync.RWMutex

var regexpPaths, _ = regexp.Compile(".*/")

func init() {
	stdLogger, err := newStdLogger()
	if err != nil {
		panic(err)
	}
	stdKey := RegisterLogger(stdLogger)
	if stdKey != 0 {
		panic(errors.New("cannot add a logger before the standard logger"))
	}
	ParseEnv()
}

func lvl(lvl, skip int, args ...interface{}) {
	debugMut.Lock()
	defer debugMut.Unlock()
	for _, l := range loggers {
		lInfo := l.GetLoggerInfo()

		if lvl > lInfo.DebugLvl {
			continue
		}

		pc, _, line, _ := runtime.Caller(skip)
		name := regexpPaths.ReplaceAllString(runtime.FuncForPC(pc).Name(), "")
		if !outputLines {
			line = 0
		}

		if lInfo.UseColors && len(name) > NamePadding && NamePadding > 0 {
			NamePadding = len(name)
		}

		namePadding := 0
		linePadding := 0
		if lInfo.Padding {
			namePadding = NamePadding
			linePadding = LinePadding
		}
		caller := fmt.Sprintf(fmt.Sprintf("%%%ds: %%%dd", namePadding, linePadding), name, line)
		message := fmt.Sprintln(args...)

		var lvlStr string
		switch lvl {
		case lvlPrint, lvlInfo:
			lvlStr = "I"
		case lvlWarning:
			lvlStr = "W"
		case lvlError:
			lvlStr = "E"
		case lvlFatal:
			lvlStr = "F"
		case lvlPanic:
			lvlStr = "P"
		default:
			if lvl < 0 {
				lvlStr = strconv.Itoa(-lvl) + "!"
			} else {
				lvlStr = strconv.Itoa(lvl)
			}
		}

		str := fmt.Sprintf(": (%s) - %s", caller, message)
		if lInfo.ShowTime {
			ti := time.Now()
			str = fmt.Sprintf("%s.%09d%s", ti.Format("06/01/02 15:04:05"), ti.Nanosecond(), str)
		}
		l.Log(lvl, fmt.Sprintf("%-2s%s", lvlStr, str))
	}
}

func fg(l *LoggerInfo, c ct.Color, bright bool) {
	if l.UseColors {
		ct.Foreground(c, bright)
	}
}

// Needs two functions to keep the caller-depth the same and find who calls us
// Lvlf1 -> lvlf -> lvl
// or
// Lvl1 -> lvld -> lvl
func lvlf(l int, f string, args ...interface{}) {
	if l > DebugVisible() {
		return
	}
	lvl(l, 3, fmt.Sprintf(f, args...))
}

func lvld(l int, args ...interface{}) {
	lvl(l, 3, args...)
}

// Lvl1 debug output is informational and always displayed
func Lvl1(args ...interface{}) {
	lvld(1, args...)
}

// Lvl2 shows the progress of a run, one line per batch
func Lvl2(args ...interface{}) {
	lvld(2, args...)
}

// Lvl3 shows one line per trial
func Lvl3(args ...interface{}) {
	lvld(3, args...)
}

// Lvl4 is for everything else
func Lvl4(args ...interface{}) {
	lvld(4, args...)
}

// Lvlf1 is like Lvl1 but with a format-string
func Lvlf1(f string, args ...interface{}) {
	lvlf(1, f, args...)
}

// Lvlf2 is like Lvl2 but with a format-string
func Lvlf2(f string, args ...interface{}) {
	lvlf(2, f, args...)
}

// Lvlf3 is like Lvl3 but with a format-string
func Lvlf3(f string, args ...interface{}) {
	lvlf(3, f, args...)
}

// Lvlf4 is like Lvl4 but with a format-string
func Lvlf4(f string, args ...interface{}) {
	lvlf(4, f, args...)
}

// LLvl1 *always* prints
func LLvl1(args ...interface{}) { lvld(-1, args...) }

// LLvlf1 *always* prints
func LLvlf1(f string, args ...interface{}) { lvlf(-1, f, args...) }

// SetDebugVisible set the global debug output level in a go-rountine-safe way
func SetDebugVisible(lvl int) {
	debugMut.Lock()
	defer debugMut.Unlock()
	loggers[0].GetLoggerInfo().DebugLvl = lvl
}

// DebugVisible returns the actual visible debug-level
func DebugVisible() int {
	debugMut.RLock()
	defer debugMut.RUnlock()
	return loggers[0].GetLoggerInfo().DebugLvl
}

// SetShowTime allows for turning on the flag that adds the current
// time to the debug-output
func SetShowTime(show bool) {
	debugMut.Lock()
	defer debugMut.Unlock()
	loggers[0].GetLoggerInfo().ShowTime = show
}

// ShowTime returns the current setting for showing the time in the debug
// output
func ShowTime() bool {
	debugMut.RLock()
	defer debugMut.RUnlock()
	return loggers[0].GetLoggerInfo().ShowTime
}

// SetUseColors can turn off or turn on the use of colors in the debug-output
func SetUseColors(useColors bool) {
	debugMut.Lock()
	defer debugMut.Unlock()
	loggers[0].GetLoggerInfo().UseColors = useColors
}

// UseColors returns the actual setting of the color-usage in log
func UseColors() bool {
	debugMut.RLock()
	defer debugMut.RUnlock()
	return loggers[0].GetLoggerInfo().UseColors
}

// SetPadding can turn off or turn on the use of padding in log
func SetPadding(padding bool) {
	debugMut.Lock()
	defer debugMut.Unlock()
	loggers[0].GetLoggerInfo().Padding = padding
}

// Padding returns the actual setting of the padding in log
func Padding() bool {
	debugMut.RLock()
	defer debugMut.RUnlock()
	return loggers[0].GetLoggerInfo().Padding
}

// ParseEnv looks at the following environment-variables:
//   DEBUG_LVL - for the actual debug-lvl - default is 1
//   DEBUG_TIME - whether to show the timestamp - default is false
//   DEBUG_COLOR - whether to color the output - default is false
//   DEBUG_PADDING - whether to pad the output nicely - default is true
func ParseEnv() {
	if dv := os.Getenv("DEBUG_LVL"); dv != "" {
		dvInt, err := strconv.Atoi(dv)
		if err != nil {
			Error("Couldn't convert", dv, "to debug-level")
		} else {
			SetDebugVisible(dvInt)
		}
	}
	parseBoolEnv("DEBUG_TIME", SetShowTime)
	parseBoolEnv("DEBUG_COLOR", SetUseColors)
	parseBoolEnv("DEBUG_PADDING", SetPadding)
}

func parseBoolEnv(name string, set func(bool)) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		Error("Couldn't convert", v, "to boolean for", name)
		return
	}
	set(b)
}
