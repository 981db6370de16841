package ciphersuite

import (
	"io"

	"go.dedis.ch/kyber/v3"
	"go.dedis.ch/kyber/v3/group/edwards25519"
	"go.dedis.ch/kyber/v3/sign/schnorr"
	"go.dedis.ch/kyber/v3/util/random"
	"golang.org/x/xerrors"
)

// SchnorrCipherSuiteName is the name of the kyber Schnorr suite.
const SchnorrCipherSuiteName = "schnorr"

// SchnorrKeyPair is a kyber scalar and its public point.
type SchnorrKeyPair struct {
	private kyber.Scalar
	public  kyber.Point
}

// Name returns the cipher suite name.
func (kp *SchnorrKeyPair) Name() Name {
	return SchnorrCipherSuiteName
}

// Destroy zeroes the private scalar.
func (kp *SchnorrKeyPair) Destroy() {
	if kp.private != nil {
		kp.private.Zero()
	}
	kp.private = nil
	kp.public = nil
}

// SchnorrCipherSuite signs with kyber's Schnorr implementation on the
// Edwards 25519 group.
type SchnorrCipherSuite struct {
	suite *edwards25519.SuiteEd25519
}

// NewSchnorrCipherSuite returns an instance of the cipher suite.
func NewSchnorrCipherSuite() *SchnorrCipherSuite {
	return &SchnorrCipherSuite{suite: edwards25519.NewBlakeSHA256Ed25519()}
}

// Name returns the name of the suite.
func (s *SchnorrCipherSuite) Name() Name {
	return SchnorrCipherSuiteName
}

// GenerateKeyPair picks a random scalar from the reader, or from the suite
// randomness when reader is nil.
func (s *SchnorrCipherSuite) GenerateKeyPair(reader io.Reader) (KeyPair, error) {
	stream := s.suite.RandomStream()
	if reader != nil {
		stream = random.New(reader)
	}

	private := s.suite.Scalar().Pick(stream)
	public := s.suite.Point().Mul(private, nil)
	return &SchnorrKeyPair{private: private, public: public}, nil
}

// Sign returns the Schnorr signature of the digest, the encoding of the
// commitment point followed by the response scalar.
func (s *SchnorrCipherSuite) Sign(kp KeyPair, digest []byte) ([]byte, error) {
	keyPair, err := s.unpackKeyPair(kp)
	if err != nil {
		return nil, xerrors.Errorf("unpacking key pair: %v", err)
	}

	sig, err := schnorr.Sign(s.suite, keyPair.private, digest)
	if err != nil {
		return nil, xerrors.Errorf("schnorr sign: %v", err)
	}
	return sig, nil
}

// Verify returns true when the Schnorr signature is valid.
func (s *SchnorrCipherSuite) Verify(kp KeyPair, digest, sig []byte) bool {
	keyPair, err := s.unpackKeyPair(kp)
	if err != nil {
		return false
	}
	return schnorr.Verify(s.suite, keyPair.public, digest, sig) == nil
}

// MaxSignatureSize returns the size of a point and a scalar.
func (s *SchnorrCipherSuite) MaxSignatureSize(kp KeyPair) int {
	return s.suite.PointLen() + s.suite.ScalarLen()
}

func (s *SchnorrCipherSuite) unpackKeyPair(kp KeyPair) (*SchnorrKeyPair, error) {
	keyPair, ok := kp.(*SchnorrKeyPair)
	if !ok {
		return nil, errWrongKeyPair
	}
	if keyPair.private == nil {
		return nil, errDestroyedKeyPair
	}
	return keyPair, nil
}
