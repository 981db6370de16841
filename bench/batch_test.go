package bench

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.dedis.ch/sigbench/ciphersuite"
	"golang.org/x/xerrors"
)

func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy("abort")
	require.NoError(t, err)
	require.Equal(t, PolicyAbort, p)
	require.Equal(t, "abort", p.String())

	p, err = ParsePolicy("skip")
	require.NoError(t, err)
	require.Equal(t, PolicySkip, p)
	require.Equal(t, "skip", p.String())

	_, err = ParsePolicy("ignore")
	require.Error(t, err)
}

func TestRunner_RunBatch(t *testing.T) {
	suite := newStubSuite(72)
	r := &Runner{Trials: 10, Retries: DefaultRetries, Env: testEnv()}

	res, err := r.RunBatch(NewExecutor(suite, r.Env), 64)
	require.NoError(t, err)
	require.Equal(t, stubName, res.Scheme)
	require.Equal(t, 64, res.MessageSize)
	require.Equal(t, 10, res.Requested)
	require.Equal(t, 0, res.Skipped)
	require.Equal(t, 10, res.Aggregate.Trials)
	require.Equal(t, 112.5, res.Aggregate.AvgBandwidthEfficiency)
	require.Equal(t, 10, suite.generated)
}

func TestRunner_AbortPolicy(t *testing.T) {
	suite := newStubSuite(32)
	suite.failSign = func(call int) bool { return call == 3 }
	r := &Runner{Trials: 10, Policy: PolicyAbort, Env: testEnv()}

	_, err := r.RunBatch(NewExecutor(suite, r.Env), 64)
	require.True(t, xerrors.Is(err, ErrSigning))
	require.Equal(t, 3, suite.signCalls)
	require.Equal(t, 0, suite.live)
}

func TestRunner_SkipPolicy(t *testing.T) {
	suite := newStubSuite(32)
	suite.failSign = func(call int) bool { return call%2 == 0 }
	r := &Runner{Trials: 10, Policy: PolicySkip, Env: testEnv()}

	res, err := r.RunBatch(NewExecutor(suite, r.Env), 64)
	require.NoError(t, err)
	require.Equal(t, 5, res.Skipped)
	require.Equal(t, 5, res.Aggregate.Trials)
	require.Equal(t, 10, suite.signCalls)
}

func TestRunner_SkipPolicyFatal(t *testing.T) {
	suite := newStubSuite(32)
	suite.rejectVerify = true
	r := &Runner{Trials: 10, Policy: PolicySkip, Env: testEnv()}

	_, err := r.RunBatch(NewExecutor(suite, r.Env), 64)
	require.True(t, xerrors.Is(err, ErrSignatureRoundTrip))
	require.Equal(t, 1, suite.signCalls)
}

func TestRunner_AlwaysFailingSign(t *testing.T) {
	suite := newStubSuite(32)
	suite.failSign = func(int) bool { return true }
	r := &Runner{Trials: 5, Policy: PolicySkip, Env: testEnv()}

	reports := 0
	err := r.Run([]ciphersuite.CipherSuite{suite}, []int{64}, func(Result) error {
		reports++
		return nil
	})
	require.True(t, xerrors.Is(err, ErrEmptyTrialSet))
	require.Equal(t, 0, reports)
	require.Equal(t, 5, suite.signCalls)
}

func TestRunner_RandomnessRetry(t *testing.T) {
	suite := newStubSuite(32)
	env := testEnv()
	env.Samples = NewSampleGenerator(&flakyReader{failures: 3})
	r := &Runner{Trials: 4, Retries: 3, Env: env}

	res, err := r.RunBatch(NewExecutor(suite, r.Env), 64)
	require.NoError(t, err)
	require.Equal(t, 4, res.Aggregate.Trials)
	require.Equal(t, 0, res.Skipped)

	env.Samples = NewSampleGenerator(&flakyReader{failures: 4})
	r = &Runner{Trials: 4, Retries: 3, Env: env}
	_, err = r.RunBatch(NewExecutor(suite, r.Env), 64)
	require.True(t, xerrors.Is(err, ErrRandomnessUnavailable))
	require.Contains(t, err.Error(), "giving up after 4 attempts")
}

func TestRunner_RandomnessSkipsBatch(t *testing.T) {
	suite := newStubSuite(32)
	env := testEnv()
	env.Samples = NewSampleGenerator(&flakyReader{failures: 2})
	r := &Runner{Trials: 2, Retries: 1, Policy: PolicySkip, Env: env}

	var sizes []int
	err := r.Run([]ciphersuite.CipherSuite{suite}, []int{64, 128}, func(res Result) error {
		sizes = append(sizes, res.MessageSize)
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []int{128}, sizes)

	env.Samples = NewSampleGenerator(&flakyReader{failures: 2})
	r = &Runner{Trials: 2, Retries: 1, Policy: PolicyAbort, Env: env}
	err = r.Run([]ciphersuite.CipherSuite{suite}, []int{64, 128}, func(Result) error {
		return nil
	})
	require.True(t, xerrors.Is(err, ErrRandomnessUnavailable))
}

type namedStub struct {
	*stubSuite
	name string
}

func (n namedStub) Name() ciphersuite.Name {
	return n.name
}

func TestRunner_Order(t *testing.T) {
	a := namedStub{newStubSuite(32), "a"}
	b := namedStub{newStubSuite(32), "b"}
	r := &Runner{Trials: 2, Env: testEnv()}

	var order []Result
	err := r.Run([]ciphersuite.CipherSuite{a, b}, []int{256, 64}, func(res Result) error {
		order = append(order, res)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, order, 4)
	expected := []struct {
		scheme string
		size   int
	}{{"a", 256}, {"b", 256}, {"a", 64}, {"b", 64}}
	for i, exp := range expected {
		require.Equal(t, exp.scheme, order[i].Scheme)
		require.Equal(t, exp.size, order[i].MessageSize)
	}
}

func TestRunner_ReportError(t *testing.T) {
	r := &Runner{Trials: 1, Env: testEnv()}
	err := r.Run([]ciphersuite.CipherSuite{newStubSuite(32)}, []int{64, 128}, func(Result) error {
		return errStub
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "reporting")
}

func TestRunner_InvalidInput(t *testing.T) {
	suites := []ciphersuite.CipherSuite{newStubSuite(32)}
	noop := func(Result) error { return nil }

	r := &Runner{Trials: 0, Env: testEnv()}
	require.Error(t, r.Run(suites, []int{64}, noop))

	r.Trials = 1
	require.Error(t, r.Run(suites, []int{64, 0}, noop))
	require.Equal(t, 0, suites[0].(*stubSuite).generated)
}
