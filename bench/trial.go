package bench

import (
	"io"
	"time"

	"go.dedis.ch/sigbench/ciphersuite"
	"golang.org/x/xerrors"
)

// TrialRecord holds the measures of one trial.
type TrialRecord struct {
	// ParamTime is the time taken by the key (and parameter) generation.
	ParamTime time.Duration
	// SignTime is the time taken by the signature of the digest only.
	SignTime time.Duration
	// VerifyTime is the time taken by the verification.
	VerifyTime time.Duration
	// SignatureSize is the length in bytes of the signature.
	SignatureSize int
	// BandwidthEfficiency is the signature size as a percentage of the
	// message size.
	BandwidthEfficiency float64
	// MemoryBefore is the peak memory in KB sampled before signing.
	MemoryBefore int64
	// Memory is the peak memory in KB sampled after the verification.
	Memory int64
}

// Environment gathers the collaborators of the trials. Zero fields are
// replaced by the defaults: crypto/rand messages, SHA-256, the system clock,
// the process ResourceProbe and the default randomness of the suite.
type Environment struct {
	Samples *SampleGenerator
	Hash    Hasher
	Clock   Clock
	Probe   Probe
	// KeyRand is given to the suite for the key generation.
	KeyRand io.Reader
}

func (env Environment) withDefaults() Environment {
	if env.Samples == nil {
		env.Samples = NewSampleGenerator(nil)
	}
	if env.Hash == nil {
		env.Hash, _ = NewHasher(HashSHA256)
	}
	if env.Clock == nil {
		env.Clock = SystemClock{}
	}
	if env.Probe == nil {
		env.Probe = NewResourceProbe()
	}
	return env
}

// Executor runs the trials of one suite. It is the only user of the suite.
type Executor struct {
	suite ciphersuite.CipherSuite
	env   Environment
}

// NewExecutor returns an executor for the suite.
func NewExecutor(suite ciphersuite.CipherSuite, env Environment) *Executor {
	return &Executor{
		suite: suite,
		env:   env.withDefaults(),
	}
}

// Suite returns the suite of the executor.
func (e *Executor) Suite() ciphersuite.CipherSuite {
	return e.suite
}

// Run executes one trial: a fresh key pair, a fresh message of messageSize
// bytes, the signature of its digest and the verification. The key pair is
// destroyed before Run returns. The index is only used to describe a
// failure.
func (e *Executor) Run(messageSize, index int) (TrialRecord, error) {
	if messageSize <= 0 {
		return TrialRecord{}, xerrors.Errorf("invalid message size %d", messageSize)
	}

	var rec TrialRecord
	fail := func(stage Stage, kind, err error) (TrialRecord, error) {
		return TrialRecord{}, &TrialError{
			Stage:       stage,
			Scheme:      e.suite.Name(),
			MessageSize: messageSize,
			Trial:       index,
			Kind:        kind,
			Err:         err,
		}
	}

	kp, paramTime, err := Measure(e.env.Clock, func() (ciphersuite.KeyPair, error) {
		return e.suite.GenerateKeyPair(e.env.KeyRand)
	})
	if err != nil {
		return fail(StageKeyGeneration, ErrKeyGeneration, err)
	}
	defer kp.Destroy()
	rec.ParamTime = paramTime

	msg, err := e.env.Samples.Generate(messageSize)
	if err != nil {
		return fail(StageMessage, ErrRandomnessUnavailable, err)
	}
	digest := e.env.Hash(msg)

	rec.MemoryBefore = e.env.Probe.Sample()

	sig, signTime, err := Measure(e.env.Clock, func() ([]byte, error) {
		return e.suite.Sign(kp, digest[:])
	})
	if err != nil {
		return fail(StageSign, ErrSigning, err)
	}
	rec.SignTime = signTime
	rec.SignatureSize = len(sig)
	if limit := e.suite.MaxSignatureSize(kp); len(sig) > limit {
		return fail(StageSign, ErrSignatureTooLarge,
			xerrors.Errorf("%d bytes for a maximum of %d", len(sig), limit))
	}
	rec.BandwidthEfficiency = 100 * float64(len(sig)) / float64(messageSize)

	valid, verifyTime, _ := Measure(e.env.Clock, func() (bool, error) {
		return e.suite.Verify(kp, digest[:], sig), nil
	})
	if !valid {
		return fail(StageVerify, ErrSignatureRoundTrip, nil)
	}
	rec.VerifyTime = verifyTime

	rec.Memory = e.env.Probe.Sample()

	return rec, nil
}
