package report

import (
	"fmt"
	"io"
	"strings"

	"go.dedis.ch/sigbench/bench"
	"golang.org/x/xerrors"
)

type textReporter struct {
	w        io.Writer
	lastSize int
}

func newTextReporter(w io.Writer) *textReporter {
	return &textReporter{w: w}
}

func (r *textReporter) WriteHeader(h Header) error {
	_, err := fmt.Fprintf(r.w, "Run %s started %s\n%s %s/%s, %d CPUs, host %s\n",
		h.RunID, h.Started.Format("2006-01-02 15:04:05 MST"),
		h.GoVersion, h.OS, h.Arch, h.CPUs, h.Host)
	if err != nil {
		return xerrors.Errorf("writing header: %v", err)
	}
	_, err = fmt.Fprintf(r.w, "Schemes %s, %d trials per message size, %s digests, %s on failure\n",
		strings.Join(h.Schemes, ", "), h.Trials, h.Hash, h.Policy)
	if err != nil {
		return xerrors.Errorf("writing header: %v", err)
	}
	return nil
}

func (r *textReporter) WriteResult(res bench.Result) error {
	var b strings.Builder
	if res.MessageSize != r.lastSize {
		fmt.Fprintf(&b, "\n==== TESTING WITH MESSAGE SIZE: %d BYTES ====\n", res.MessageSize)
		r.lastSize = res.MessageSize
	}

	agg := res.Aggregate
	fmt.Fprintf(&b, "\n---- %s ----\n", res.Scheme)
	fmt.Fprintf(&b, "==== AVERAGE METRICS OVER %d ITERATIONS ====\n", agg.Trials)
	if res.Skipped > 0 {
		fmt.Fprintf(&b, "Skipped Trials: %d of %d\n", res.Skipped, res.Requested)
	}
	fmt.Fprintf(&b, "Average Parameter Generation Time: %.2f microseconds\n", microseconds(agg.AvgParamTime))
	fmt.Fprintf(&b, "Average Signature Time: %.2f microseconds\n", microseconds(agg.AvgSignTime))
	fmt.Fprintf(&b, "Average Verification Time: %.2f microseconds\n", microseconds(agg.AvgVerifyTime))
	fmt.Fprintf(&b, "Average Memory Usage: %.0f KB\n", agg.AvgMemory)
	fmt.Fprintf(&b, "Average Signature Size: %.2f bytes\n", agg.AvgSignatureSize)
	fmt.Fprintf(&b, "Average Bandwidth Efficiency: %.2f %%\n", agg.AvgBandwidthEfficiency)

	if _, err := io.WriteString(r.w, b.String()); err != nil {
		return xerrors.Errorf("writing result: %v", err)
	}
	return nil
}

func (r *textReporter) Close() error {
	return nil
}
