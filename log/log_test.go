package log

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func init() {
	outputLines = false
	SetUseColors(false)
	clearEnv()
}

func clearEnv() {
	os.Setenv("DEBUG_LVL", "")
	os.Setenv("DEBUG_TIME", "")
	os.Setenv("DEBUG_COLOR", "")
	os.Setenv("DEBUG_PADDING", "")
}

func TestOutputLevels(t *testing.T) {
	OutputToBuf()
	defer OutputToOs()
	old := DebugVisible()
	defer SetDebugVisible(old)

	SetDebugVisible(2)
	GetStdOut()
	Lvl1("one")
	Lvl2("two")
	Lvl3("three")
	out := GetStdOut()
	require.Contains(t, out, "1 : ")
	require.Contains(t, out, "one")
	require.Contains(t, out, "two")
	require.NotContains(t, out, "three")

	Lvlf2("value %d", 42)
	require.Contains(t, GetStdOut(), "value 42")
}

func TestErrorsGoToStdErr(t *testing.T) {
	OutputToBuf()
	defer OutputToOs()
	old := DebugVisible()
	defer SetDebugVisible(old)

	SetDebugVisible(1)
	GetStdOut()
	GetStdErr()
	Info("some information")
	Warn("careful")
	Error("broken")
	require.Contains(t, GetStdOut(), "some information")
	errOut := GetStdErr()
	require.Contains(t, errOut, "W : ")
	require.Contains(t, errOut, "careful")
	require.Contains(t, errOut, "E : ")
	require.Contains(t, errOut, "broken")

	SetDebugVisible(0)
	Error("raw")
	require.Equal(t, "raw\n", GetStdErr())
}

func TestTime(t *testing.T) {
	OutputToBuf()
	defer OutputToOs()
	old := DebugVisible()
	defer SetDebugVisible(old)

	SetDebugVisible(1)
	SetShowTime(false)
	GetStdOut()
	Lvl1("No time")
	require.True(t, strings.HasPrefix(GetStdOut(), "1 : "))

	SetShowTime(true)
	defer SetShowTime(false)
	Lvl1("With time")
	str := GetStdOut()
	require.False(t, strings.HasPrefix(str, "1 : "))
	require.Contains(t, str, "With time")
}

func TestParseEnv(t *testing.T) {
	lvl := DebugVisible()
	showTime := ShowTime()
	padding := Padding()
	defer func() {
		SetDebugVisible(lvl)
		SetShowTime(showTime)
		SetPadding(padding)
		clearEnv()
	}()

	SetDebugVisible(1)
	clearEnv()
	ParseEnv()
	require.Equal(t, 1, DebugVisible())

	os.Setenv("DEBUG_LVL", "3")
	os.Setenv("DEBUG_TIME", "true")
	os.Setenv("DEBUG_PADDING", "false")
	ParseEnv()
	require.Equal(t, 3, DebugVisible())
	require.True(t, ShowTime())
	require.False(t, Padding())
}

type countMsgs struct {
	count int
	info  *LoggerInfo
}

func (c *countMsgs) Log(lvl int, msg string) {
	c.count++
}

func (c *countMsgs) Close() {}

func (c *countMsgs) GetLoggerInfo() *LoggerInfo {
	return c.info
}

func TestRegisterLogger(t *testing.T) {
	c := &countMsgs{info: &LoggerInfo{DebugLvl: 3}}
	key := RegisterLogger(c)
	Lvl1("testing")
	Lvl3("testing")
	Lvl4("testing")
	require.Equal(t, 2, c.count)

	UnregisterLogger(key)
	Lvl1("testing")
	require.Equal(t, 2, c.count)
}

func TestFileLogger(t *testing.T) {
	dir, err := ioutil.TempDir("", "sigbench-log")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "bench.log")
	fl, err := NewFileLogger(&LoggerInfo{DebugLvl: 2, UseColors: true}, path)
	require.NoError(t, err)
	require.False(t, fl.GetLoggerInfo().UseColors)

	key := RegisterLogger(fl)
	Lvl1("testing1")
	Lvl2("testing2")
	Lvl3("testing3")
	UnregisterLogger(key)

	out, err := ioutil.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(out), "testing1")
	require.Contains(t, string(out), "testing2")
	require.NotContains(t, string(out), "testing3")
}
