package ciphersuite

import (
	"crypto"
	"io"

	fndsa "github.com/pornin/go-fn-dsa/fndsa"
	"golang.org/x/xerrors"
)

// FalconCipherSuiteName is the name of the FN-DSA (Falcon) suite.
const FalconCipherSuiteName = "fndsa"

// falconLogN selects degree 512, the smaller standard degree.
const falconLogN = 9

// FalconKeyPair holds the encoded signing and verifying keys.
type FalconKeyPair struct {
	signing   []byte
	verifying []byte
	rand      io.Reader
}

// Name returns the cipher suite name.
func (kp *FalconKeyPair) Name() Name {
	return FalconCipherSuiteName
}

// Destroy zeroes the signing key.
func (kp *FalconKeyPair) Destroy() {
	for i := range kp.signing {
		kp.signing[i] = 0
	}
	kp.signing = nil
	kp.verifying = nil
}

// FalconCipherSuite signs with FN-DSA of degree 512. The digest is given to
// the library as pre-hashed data tagged as SHA-256, without domain context.
type FalconCipherSuite struct{}

// NewFalconCipherSuite returns an instance of the cipher suite.
func NewFalconCipherSuite() *FalconCipherSuite {
	return &FalconCipherSuite{}
}

// Name returns the name of the suite.
func (s *FalconCipherSuite) Name() Name {
	return FalconCipherSuiteName
}

// GenerateKeyPair generates a key pair. When reader is nil, the library uses
// the default randomness source.
func (s *FalconCipherSuite) GenerateKeyPair(reader io.Reader) (KeyPair, error) {
	sk, vk, err := fndsa.KeyGen(falconLogN, reader)
	if err != nil {
		return nil, xerrors.Errorf("generate fndsa key: %v", err)
	}
	return &FalconKeyPair{signing: sk, verifying: vk, rand: reader}, nil
}

// Sign returns the signature of the digest.
func (s *FalconCipherSuite) Sign(kp KeyPair, digest []byte) ([]byte, error) {
	keyPair, err := s.unpackKeyPair(kp)
	if err != nil {
		return nil, xerrors.Errorf("unpacking key pair: %v", err)
	}

	sig, err := fndsa.Sign(keyPair.rand, keyPair.signing, fndsa.DOMAIN_NONE, crypto.SHA256, digest)
	if err != nil {
		return nil, xerrors.Errorf("fndsa sign: %v", err)
	}
	return sig, nil
}

// Verify returns true when the signature of the digest is valid.
func (s *FalconCipherSuite) Verify(kp KeyPair, digest, sig []byte) bool {
	keyPair, err := s.unpackKeyPair(kp)
	if err != nil {
		return false
	}
	return fndsa.Verify(keyPair.verifying, fndsa.DOMAIN_NONE, crypto.SHA256, digest, sig)
}

// MaxSignatureSize returns the fixed signature size of degree 512.
func (s *FalconCipherSuite) MaxSignatureSize(kp KeyPair) int {
	return fndsa.SignatureSize(falconLogN)
}

func (s *FalconCipherSuite) unpackKeyPair(kp KeyPair) (*FalconKeyPair, error) {
	keyPair, ok := kp.(*FalconKeyPair)
	if !ok {
		return nil, errWrongKeyPair
	}
	if keyPair.signing == nil {
		return nil, errDestroyedKeyPair
	}
	return keyPair, nil
}
