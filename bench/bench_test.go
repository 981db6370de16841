package bench

import (
	"crypto/rand"
	"io"
	"testing"
	"time"

	"go.dedis.ch/sigbench/ciphersuite"
	"go.dedis.ch/sigbench/log"
	"golang.org/x/xerrors"
)

func TestMain(m *testing.M) {
	log.MainTest(m)
}

const stubName = "stub"

type stubKeyPair struct {
	suite     *stubSuite
	destroyed bool
}

func (kp *stubKeyPair) Name() ciphersuite.Name {
	return stubName
}

func (kp *stubKeyPair) Destroy() {
	if !kp.destroyed {
		kp.destroyed = true
		kp.suite.live--
	}
}

// stubSuite produces zeroed signatures of sigSize bytes and counts the key
// pairs alive at any time.
type stubSuite struct {
	sigSize int
	maxSize int
	genErr  error
	// failSign is called with the 1-based index of the Sign call.
	failSign     func(call int) bool
	rejectVerify bool

	live      int
	maxLive   int
	generated int
	signCalls int
}

func newStubSuite(sigSize int) *stubSuite {
	return &stubSuite{sigSize: sigSize, maxSize: 72}
}

func (s *stubSuite) Name() ciphersuite.Name {
	return stubName
}

func (s *stubSuite) GenerateKeyPair(io.Reader) (ciphersuite.KeyPair, error) {
	if s.genErr != nil {
		return nil, s.genErr
	}
	s.generated++
	s.live++
	if s.live > s.maxLive {
		s.maxLive = s.live
	}
	return &stubKeyPair{suite: s}, nil
}

func (s *stubSuite) Sign(kp ciphersuite.KeyPair, digest []byte) ([]byte, error) {
	s.signCalls++
	if s.failSign != nil && s.failSign(s.signCalls) {
		return nil, errStub
	}
	return make([]byte, s.sigSize), nil
}

func (s *stubSuite) MaxSignatureSize(kp ciphersuite.KeyPair) int {
	return s.maxSize
}

func (s *stubSuite) Verify(kp ciphersuite.KeyPair, digest, sig []byte) bool {
	if kp.(*stubKeyPair).destroyed || len(digest) != DigestSize {
		return false
	}
	return !s.rejectVerify
}

var errStub = xerrors.New("stub failure")

// stepClock moves forward by step every time it is read.
type stepClock struct {
	now  time.Time
	step time.Duration
}

func (c *stepClock) Now() time.Time {
	c.now = c.now.Add(c.step)
	return c.now
}

// countingProbe returns 10, 20, 30... KB.
type countingProbe struct {
	n int64
}

func (p *countingProbe) Sample() int64 {
	p.n += 10
	return p.n
}

// flakyReader fails the given number of reads before delegating to
// crypto/rand.
type flakyReader struct {
	failures int
}

func (r *flakyReader) Read(p []byte) (int, error) {
	if r.failures > 0 {
		r.failures--
		return 0, xerrors.New("entropy pool exhausted")
	}
	return rand.Read(p)
}

func testEnv() Environment {
	return Environment{
		Clock: &stepClock{step: time.Microsecond},
		Probe: &countingProbe{},
	}
}
