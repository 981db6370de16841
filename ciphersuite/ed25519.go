package ciphersuite

import (
	"io"

	"golang.org/x/crypto/ed25519"
	"golang.org/x/xerrors"
)

// Ed25519CipherSuiteName is the name of the cipher suite that is using Ed25519 as
// the signature algorithm.
const Ed25519CipherSuiteName = "ed25519"

// Ed25519KeyPair is the key pair implementation for the Ed25519 cipher suite.
type Ed25519KeyPair struct {
	public ed25519.PublicKey
	secret ed25519.PrivateKey
}

// Name returns the cipher suite name.
func (kp *Ed25519KeyPair) Name() Name {
	return Ed25519CipherSuiteName
}

// Destroy zeroes the secret key.
func (kp *Ed25519KeyPair) Destroy() {
	for i := range kp.secret {
		kp.secret[i] = 0
	}
	kp.secret = nil
	kp.public = nil
}

// Ed25519CipherSuite is a cipher suite implementation using the Ed25519 scheme.
type Ed25519CipherSuite struct{}

// NewEd25519CipherSuite returns an instance of the cipher suite.
func NewEd25519CipherSuite() *Ed25519CipherSuite {
	return &Ed25519CipherSuite{}
}

// Name returns the name of the suite.
func (s *Ed25519CipherSuite) Name() Name {
	return Ed25519CipherSuiteName
}

// GenerateKeyPair generates a secret key and its associated public key. When
// reader is nil, it will use the default randomness source.
func (s *Ed25519CipherSuite) GenerateKeyPair(reader io.Reader) (KeyPair, error) {
	pk, sk, err := ed25519.GenerateKey(reader)
	if err != nil {
		return nil, xerrors.Errorf("generate ed25519 key: %v", err)
	}

	return &Ed25519KeyPair{public: pk, secret: sk}, nil
}

// Sign signs the digest with the secret key.
func (s *Ed25519CipherSuite) Sign(kp KeyPair, digest []byte) ([]byte, error) {
	keyPair, err := s.unpackKeyPair(kp)
	if err != nil {
		return nil, xerrors.Errorf("unpacking key pair: %v", err)
	}
	return ed25519.Sign(keyPair.secret, digest), nil
}

// Verify returns true when the signature of the digest can be verified by
// the public key.
func (s *Ed25519CipherSuite) Verify(kp KeyPair, digest, sig []byte) bool {
	keyPair, err := s.unpackKeyPair(kp)
	if err != nil {
		return false
	}
	return ed25519.Verify(keyPair.public, digest, sig)
}

// MaxSignatureSize returns the fixed size of Ed25519 signatures.
func (s *Ed25519CipherSuite) MaxSignatureSize(kp KeyPair) int {
	return ed25519.SignatureSize
}

func (s *Ed25519CipherSuite) unpackKeyPair(kp KeyPair) (*Ed25519KeyPair, error) {
	keyPair, ok := kp.(*Ed25519KeyPair)
	if !ok {
		return nil, errWrongKeyPair
	}
	if keyPair.secret == nil {
		return nil, errDestroyedKeyPair
	}
	return keyPair, nil
}
