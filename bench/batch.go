package bench

import (
	"go.dedis.ch/sigbench/ciphersuite"
	"go.dedis.ch/sigbench/log"
	"golang.org/x/xerrors"
)

// Policy tells what happens to a run when a trial fails with a key
// generation or signing error.
type Policy int

const (
	// PolicyAbort ends the run at the first failure.
	PolicyAbort Policy = iota
	// PolicySkip drops the failed trial, logs a warning and continues. The
	// aggregate only contains the successful trials.
	PolicySkip
)

// Names of the policies as used in the configuration.
const (
	PolicyAbortName = "abort"
	PolicySkipName  = "skip"
)

// ParsePolicy returns the policy known under name.
func ParsePolicy(name string) (Policy, error) {
	switch name {
	case PolicyAbortName:
		return PolicyAbort, nil
	case PolicySkipName:
		return PolicySkip, nil
	}
	return 0, xerrors.Errorf("unknown failure policy %q", name)
}

func (p Policy) String() string {
	if p == PolicySkip {
		return PolicySkipName
	}
	return PolicyAbortName
}

// DefaultRetries is the number of consecutive randomness failures tolerated
// before a batch is given up.
const DefaultRetries = 3

// Result is the outcome of the trials of one suite for one message size.
type Result struct {
	Scheme      string
	MessageSize int
	// Requested is the number of trials asked for.
	Requested int
	// Skipped is the number of trials dropped by PolicySkip.
	Skipped   int
	Aggregate AggregateRecord
}

// Runner drives the executors: for every message size, in order, it runs the
// trials of every suite, in order, one after the other.
type Runner struct {
	Trials  int
	Policy  Policy
	Retries int
	Env     Environment
}

// RunBatch runs the trials of the executor for one message size and
// aggregates them.
//
// Randomness failures do not consume a trial: the trial is started again,
// and the batch is given up when more than Retries attempts in a row failed.
func (r *Runner) RunBatch(e *Executor, messageSize int) (Result, error) {
	res := Result{
		Scheme:      e.Suite().Name(),
		MessageSize: messageSize,
		Requested:   r.Trials,
	}

	records := make([]TrialRecord, 0, r.Trials)
	randFailures := 0
	for i := 0; i < r.Trials; {
		rec, err := e.Run(messageSize, i)
		switch {
		case err == nil:
			records = append(records, rec)
			randFailures = 0
			log.Lvlf3("%s %dB trial %d: param %v sign %v verify %v sig %dB",
				res.Scheme, messageSize, i, rec.ParamTime, rec.SignTime, rec.VerifyTime, rec.SignatureSize)
		case xerrors.Is(err, ErrRandomnessUnavailable):
			randFailures++
			if randFailures > r.Retries {
				return res, xerrors.Errorf("giving up after %d attempts: %w", randFailures, err)
			}
			log.Warn("Retrying trial:", err)
			continue
		case IsFatal(err) || r.Policy == PolicyAbort:
			return res, err
		default:
			res.Skipped++
			log.Warn("Skipping trial:", err)
		}
		i++
	}

	agg, err := Aggregate(records)
	if err != nil {
		return res, xerrors.Errorf("batch %s with %d bytes: %w", res.Scheme, messageSize, err)
	}
	res.Aggregate = agg
	return res, nil
}

// Run runs the batches of every suite and message size and hands the results
// to report as soon as they are available. It stops at the first error,
// except for a randomness failure under PolicySkip which only loses the
// batch.
func (r *Runner) Run(suites []ciphersuite.CipherSuite, sizes []int, report func(Result) error) error {
	if r.Trials <= 0 {
		return xerrors.Errorf("invalid number of trials %d", r.Trials)
	}
	for _, size := range sizes {
		if size <= 0 {
			return xerrors.Errorf("invalid message size %d", size)
		}
	}

	executors := make([]*Executor, len(suites))
	for i, suite := range suites {
		executors[i] = NewExecutor(suite, r.Env)
	}

	for _, size := range sizes {
		log.Lvlf2("Message size %d bytes", size)
		for _, e := range executors {
			res, err := r.RunBatch(e, size)
			if err != nil {
				if r.Policy == PolicySkip && !IsFatal(err) && xerrors.Is(err, ErrRandomnessUnavailable) {
					log.Error("Batch lost:", err)
					continue
				}
				return err
			}
			log.Lvlf2("%s done: %d trials, %d skipped", res.Scheme, res.Aggregate.Trials, res.Skipped)

			if err := report(res); err != nil {
				return xerrors.Errorf("reporting: %v", err)
			}
		}
	}
	return nil
}
