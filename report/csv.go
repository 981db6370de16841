package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"go.dedis.ch/sigbench/bench"
	"golang.org/x/xerrors"
)

var csvColumns = []string{
	"run", "scheme", "message_size", "trials", "skipped",
	"param_us", "sign_us", "verify_us",
	"signature_size", "bandwidth_pct", "memory_before_kb", "memory_kb",
}

// csvReporter writes one line per result, the run identifier repeated on
// every line so that files of several runs can be concatenated.
type csvReporter struct {
	w   *csv.Writer
	run string
}

func newCSVReporter(w io.Writer) *csvReporter {
	return &csvReporter{w: csv.NewWriter(w)}
}

func (r *csvReporter) WriteHeader(h Header) error {
	r.run = h.RunID.String()
	return r.write(csvColumns)
}

func (r *csvReporter) WriteResult(res bench.Result) error {
	agg := res.Aggregate
	return r.write([]string{
		r.run,
		res.Scheme,
		strconv.Itoa(res.MessageSize),
		strconv.Itoa(agg.Trials),
		strconv.Itoa(res.Skipped),
		formatFloat(microseconds(agg.AvgParamTime)),
		formatFloat(microseconds(agg.AvgSignTime)),
		formatFloat(microseconds(agg.AvgVerifyTime)),
		formatFloat(agg.AvgSignatureSize),
		formatFloat(agg.AvgBandwidthEfficiency),
		formatFloat(agg.AvgMemoryBefore),
		formatFloat(agg.AvgMemory),
	})
}

func (r *csvReporter) Close() error {
	return nil
}

// write flushes every line so the file is usable while the run goes on.
func (r *csvReporter) write(record []string) error {
	if err := r.w.Write(record); err != nil {
		return xerrors.Errorf("csv: %v", err)
	}
	r.w.Flush()
	if err := r.w.Error(); err != nil {
		return xerrors.Errorf("csv: %v", err)
	}
	return nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 3, 64)
}
