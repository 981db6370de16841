package report

import (
	"io"
	"time"

	"github.com/BurntSushi/toml"
	"go.dedis.ch/sigbench/bench"
	"golang.org/x/xerrors"
)

type tomlRun struct {
	ID        string    `toml:"id"`
	Started   time.Time `toml:"started"`
	GoVersion string    `toml:"go_version"`
	OS        string    `toml:"os"`
	Arch      string    `toml:"arch"`
	CPUs      int       `toml:"cpus"`
	Host      string    `toml:"host"`
	Modules   string    `toml:"modules,omitempty"`
	Trials    int       `toml:"trials"`
	Hash      string    `toml:"hash"`
	Policy    string    `toml:"on_failure"`
	Schemes   []string  `toml:"schemes"`
	Sizes     []int     `toml:"sizes"`
}

type tomlResult struct {
	Scheme        string  `toml:"scheme"`
	MessageSize   int     `toml:"message_size"`
	Trials        int     `toml:"trials"`
	Skipped       int     `toml:"skipped"`
	ParamTime     float64 `toml:"param_us"`
	SignTime      float64 `toml:"sign_us"`
	VerifyTime    float64 `toml:"verify_us"`
	SignatureSize float64 `toml:"signature_size"`
	Bandwidth     float64 `toml:"bandwidth_pct"`
	MemoryBefore  float64 `toml:"memory_before_kb"`
	Memory        float64 `toml:"memory_kb"`
}

// tomlDocument is the content of a TOML report.
type tomlDocument struct {
	Run     tomlRun      `toml:"run"`
	Results []tomlResult `toml:"results"`
}

// tomlReporter keeps the results in memory and encodes the whole document
// when closed.
type tomlReporter struct {
	w   io.Writer
	doc tomlDocument
}

func newTOMLReporter(w io.Writer) *tomlReporter {
	return &tomlReporter{w: w}
}

func (r *tomlReporter) WriteHeader(h Header) error {
	r.doc.Run = tomlRun{
		ID:        h.RunID.String(),
		Started:   h.Started.UTC().Truncate(time.Second),
		GoVersion: h.GoVersion,
		OS:        h.OS,
		Arch:      h.Arch,
		CPUs:      h.CPUs,
		Host:      h.Host,
		Modules:   h.Modules,
		Trials:    h.Trials,
		Hash:      h.Hash,
		Policy:    h.Policy,
		Schemes:   h.Schemes,
		Sizes:     h.Sizes,
	}
	return nil
}

func (r *tomlReporter) WriteResult(res bench.Result) error {
	agg := res.Aggregate
	r.doc.Results = append(r.doc.Results, tomlResult{
		Scheme:        res.Scheme,
		MessageSize:   res.MessageSize,
		Trials:        agg.Trials,
		Skipped:       res.Skipped,
		ParamTime:     microseconds(agg.AvgParamTime),
		SignTime:      microseconds(agg.AvgSignTime),
		VerifyTime:    microseconds(agg.AvgVerifyTime),
		SignatureSize: agg.AvgSignatureSize,
		Bandwidth:     agg.AvgBandwidthEfficiency,
		MemoryBefore:  agg.AvgMemoryBefore,
		Memory:        agg.AvgMemory,
	})
	return nil
}

func (r *tomlReporter) Close() error {
	if err := toml.NewEncoder(r.w).Encode(r.doc); err != nil {
		return xerrors.Errorf("toml encoding: %v", err)
	}
	return nil
}
