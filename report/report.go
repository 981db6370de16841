// Package report renders the results of a benchmark run. The text format is
// meant to be read, CSV and TOML are meant to be processed by other tools.
package report

import (
	"io"
	"os"
	"runtime"
	"sync"
	"time"

	"go.dedis.ch/sigbench/bench"
	"golang.org/x/xerrors"
	uuid "gopkg.in/satori/go.uuid.v1"
	"rsc.io/goversion/version"
)

// Names of the output formats.
const (
	FormatText = "text"
	FormatCSV  = "csv"
	FormatTOML = "toml"
)

// Formats lists the supported output formats.
var Formats = []string{FormatText, FormatCSV, FormatTOML}

// Header describes a run and the machine it happened on.
type Header struct {
	RunID     uuid.UUID
	Started   time.Time
	GoVersion string
	OS        string
	Arch      string
	CPUs      int
	Host      string
	// Modules lists the module versions the binary was built with, when
	// the binary can be read.
	Modules string

	Trials  int
	Hash    string
	Policy  string
	Schemes []string
	Sizes   []int
}

var gover version.Version
var goverOnce sync.Once
var goverOk = false

// executablePath returns the path of the running binary. os.Args[0] is only
// the name when the binary was found through PATH.
func executablePath() string {
	if exe, err := os.Executable(); err == nil {
		return exe
	}
	return os.Args[0]
}

// NewHeader returns the header of a new run with a fresh identifier and the
// description of the running environment.
func NewHeader() Header {
	host, _ := os.Hostname()
	h := Header{
		RunID:     uuid.NewV4(),
		Started:   time.Now(),
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		CPUs:      runtime.NumCPU(),
		Host:      host,
	}

	goverOnce.Do(func() {
		v, err := version.ReadExe(executablePath())
		if err == nil {
			gover = v
			goverOk = true
		}
	})
	if goverOk {
		h.Modules = gover.ModuleInfo
	}
	return h
}

// Reporter writes the results of a run. WriteHeader is called once before
// any result, Close once after the last one.
type Reporter interface {
	WriteHeader(h Header) error
	WriteResult(res bench.Result) error
	Close() error
}

// CheckFormat returns an error when the format is not supported.
func CheckFormat(format string) error {
	for _, f := range Formats {
		if f == format {
			return nil
		}
	}
	return xerrors.Errorf("unknown format %q", format)
}

// New returns the reporter of the given format writing to w.
func New(format string, w io.Writer) (Reporter, error) {
	switch format {
	case FormatText:
		return newTextReporter(w), nil
	case FormatCSV:
		return newCSVReporter(w), nil
	case FormatTOML:
		return newTOMLReporter(w), nil
	}
	return nil, xerrors.Errorf("unknown format %q", format)
}

func microseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Microsecond)
}
