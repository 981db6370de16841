package bench

import (
	"math"
	"time"

	"github.com/montanaflynn/stats"
	"golang.org/x/xerrors"
)

// AggregateRecord is the mean of a set of trials of the same suite and
// message size.
type AggregateRecord struct {
	Trials                 int
	AvgParamTime           time.Duration
	AvgSignTime            time.Duration
	AvgVerifyTime          time.Duration
	AvgSignatureSize       float64
	AvgBandwidthEfficiency float64
	// AvgMemory is the mean of the peak memory sampled after each
	// verification, in KB.
	AvgMemory float64
	// AvgMemoryBefore is the mean of the peak memory sampled before each
	// signature, in KB.
	AvgMemoryBefore float64
}

// Aggregate computes the arithmetic mean of every field of the records,
// independently. It returns ErrEmptyTrialSet when there is no record.
func Aggregate(records []TrialRecord) (AggregateRecord, error) {
	if len(records) == 0 {
		return AggregateRecord{}, ErrEmptyTrialSet
	}

	n := len(records)
	paramTimes := make(stats.Float64Data, n)
	signTimes := make(stats.Float64Data, n)
	verifyTimes := make(stats.Float64Data, n)
	sizes := make(stats.Float64Data, n)
	efficiencies := make(stats.Float64Data, n)
	memory := make(stats.Float64Data, n)
	memoryBefore := make(stats.Float64Data, n)
	for i, rec := range records {
		paramTimes[i] = float64(rec.ParamTime)
		signTimes[i] = float64(rec.SignTime)
		verifyTimes[i] = float64(rec.VerifyTime)
		sizes[i] = float64(rec.SignatureSize)
		efficiencies[i] = rec.BandwidthEfficiency
		memory[i] = float64(rec.Memory)
		memoryBefore[i] = float64(rec.MemoryBefore)
	}

	agg := AggregateRecord{Trials: n}
	var err error
	means := []struct {
		data stats.Float64Data
		dst  *float64
	}{
		{sizes, &agg.AvgSignatureSize},
		{efficiencies, &agg.AvgBandwidthEfficiency},
		{memory, &agg.AvgMemory},
		{memoryBefore, &agg.AvgMemoryBefore},
	}
	for _, m := range means {
		*m.dst, err = stats.Mean(m.data)
		if err != nil {
			return AggregateRecord{}, xerrors.Errorf("mean: %v", err)
		}
	}

	durations := []struct {
		data stats.Float64Data
		dst  *time.Duration
	}{
		{paramTimes, &agg.AvgParamTime},
		{signTimes, &agg.AvgSignTime},
		{verifyTimes, &agg.AvgVerifyTime},
	}
	for _, d := range durations {
		mean, err := stats.Mean(d.data)
		if err != nil {
			return AggregateRecord{}, xerrors.Errorf("mean: %v", err)
		}
		*d.dst = time.Duration(math.Round(mean))
	}

	return agg, nil
}
