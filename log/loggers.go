package log

import (
	"bytes"
	"fmt"
	"io"
	"os"

	ct "github.com/daviddengcn/go-colortext"
	"golang.org/x/xerrors"
)

// LoggerInfo holds the configuration of a logger: what level it shows and how
// the messages are formatted.
type LoggerInfo struct {
	// DebugLvl is the maximal level that is shown by this logger.
	DebugLvl int
	// ShowTime adds a timestamp in front of each message.
	ShowTime bool
	// UseColors colors the output depending on the level.
	UseColors bool
	// Padding aligns the caller information.
	Padding bool
}

// Logger is the interface a logger must implement to be registered. The
// message is fully formatted when Log is called.
type Logger interface {
	Log(level int, msg string)
	Close()
	GetLoggerInfo() *LoggerInfo
}

var (
	// concurrent access is protected by debugMut
	loggers        = make(map[int]Logger)
	loggersCounter int

	stdOut io.Writer = os.Stdout
	stdErr io.Writer = os.Stderr

	bufStdOut bytes.Buffer
	bufStdErr bytes.Buffer
)

// RegisterLogger adds the logger to the list of loggers receiving every
// message and returns the key that can be used to unregister it.
func RegisterLogger(l Logger) int {
	debugMut.Lock()
	defer debugMut.Unlock()
	key := loggersCounter
	loggers[key] = l
	loggersCounter++
	return key
}

// UnregisterLogger closes and removes the logger stored under key. The
// standard logger (key 0) can be removed, it is the caller's job to not do
// that by accident.
func UnregisterLogger(key int) {
	debugMut.Lock()
	defer debugMut.Unlock()
	if l, ok := loggers[key]; ok {
		l.Close()
		delete(loggers, key)
	}
}

type stdLogger struct {
	info *LoggerInfo
}

func newStdLogger() (Logger, error) {
	return &stdLogger{info: &LoggerInfo{
		DebugLvl:  1,
		UseColors: false,
		ShowTime:  false,
		Padding:   true,
	}}, nil
}

func (sl *stdLogger) Log(lvl int, msg string) {
	if sl.info.UseColors {
		bright := lvl < 0
		lvlAbs := lvl
		if bright {
			lvlAbs *= -1
		}

		switch lvl {
		case lvlPrint:
			fg(sl.info, ct.White, true)
		case lvlInfo:
			fg(sl.info, ct.White, true)
		case lvlWarning:
			fg(sl.info, ct.Green, true)
		case lvlError:
			fg(sl.info, ct.Red, false)
		case lvlFatal:
			fg(sl.info, ct.Red, true)
		default:
			if lvl != 0 {
				if lvlAbs <= 5 {
					colors := []ct.Color{ct.Yellow, ct.Cyan, ct.Green, ct.Blue, ct.Cyan}
					fg(sl.info, colors[lvlAbs-1], bright)
				}
			}
		}
	}

	if lvl < lvlInfo {
		fmt.Fprint(stdErr, msg)
	} else {
		fmt.Fprint(stdOut, msg)
	}

	if sl.info.UseColors {
		ct.ResetColor()
	}
}

func (sl *stdLogger) Close() {}

func (sl *stdLogger) GetLoggerInfo() *LoggerInfo {
	return sl.info
}

type fileLogger struct {
	info *LoggerInfo
	file *os.File
}

func (fl *fileLogger) Log(lvl int, msg string) {
	if _, err := fl.file.WriteString(msg); err != nil {
		panic(err)
	}
}

func (fl *fileLogger) Close() {
	fl.file.Close()
}

func (fl *fileLogger) GetLoggerInfo() *LoggerInfo {
	return fl.info
}

// NewFileLogger creates a logger that appends every message to the file at
// path. Colors are always disabled for files.
func NewFileLogger(info *LoggerInfo, path string) (Logger, error) {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0660)
	if err != nil {
		return nil, xerrors.Errorf("opening log file: %v", err)
	}
	info.UseColors = false
	return &fileLogger{info: info, file: file}, nil
}

// OutputToBuf is called for sending all the log.*-outputs to internal buffers
// that can be used for checking what the logger would've written. This is
// mostly used for tests. The buffers are zeroed after this call.
func OutputToBuf() {
	debugMut.Lock()
	defer debugMut.Unlock()
	stdOut = &bufStdOut
	stdErr = &bufStdErr
}

// OutputToOs redirects the output of the log.*-outputs again to the os.
func OutputToOs() {
	debugMut.Lock()
	defer debugMut.Unlock()
	stdOut = os.Stdout
	stdErr = os.Stderr
}

// GetStdOut returns all log.*-outputs to StdOut since the last call.
func GetStdOut() string {
	debugMut.Lock()
	defer debugMut.Unlock()
	ret := bufStdOut.String()
	bufStdOut.Reset()
	return ret
}

// GetStdErr returns all log.*-outputs to StdErr since the last call.
func GetStdErr() string {
	debugMut.Lock()
	defer debugMut.Unlock()
	ret := bufStdErr.String()
	bufStdErr.Reset()
	return ret
}
