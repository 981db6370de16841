package ciphersuite

import (
	"io"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"golang.org/x/xerrors"
)

// Secp256k1CipherSuiteName is the name of the elliptic-curve suite.
const Secp256k1CipherSuiteName = "secp256k1"

// secp256k1ScalarLen is the byte length of the curve order.
const secp256k1ScalarLen = 32

// Secp256k1KeyPair is the key pair of the ECDSA suite.
type Secp256k1KeyPair struct {
	priv *secp256k1.PrivateKey
}

// Name returns the name of the cipher suite.
func (kp *Secp256k1KeyPair) Name() Name {
	return Secp256k1CipherSuiteName
}

// Destroy zeroes the private scalar.
func (kp *Secp256k1KeyPair) Destroy() {
	if kp.priv != nil {
		kp.priv.Zero()
	}
	kp.priv = nil
}

// Secp256k1CipherSuite is ECDSA over secp256k1 with RFC6979 nonces and
// strict DER signatures.
type Secp256k1CipherSuite struct{}

// NewSecp256k1CipherSuite returns an instance of the cipher suite.
func NewSecp256k1CipherSuite() *Secp256k1CipherSuite {
	return &Secp256k1CipherSuite{}
}

// Name returns the name of the suite.
func (s *Secp256k1CipherSuite) Name() Name {
	return Secp256k1CipherSuiteName
}

// GenerateKeyPair draws a private scalar. When the reader is nil, the library
// uses the default randomness source.
func (s *Secp256k1CipherSuite) GenerateKeyPair(reader io.Reader) (KeyPair, error) {
	if reader == nil {
		priv, err := secp256k1.GeneratePrivateKey()
		if err != nil {
			return nil, xerrors.Errorf("generate secp256k1 key: %v", err)
		}
		return &Secp256k1KeyPair{priv: priv}, nil
	}

	buf := make([]byte, secp256k1ScalarLen)
	for {
		if _, err := io.ReadFull(reader, buf); err != nil {
			return nil, xerrors.Errorf("reading randomness: %v", err)
		}

		var k secp256k1.ModNScalar
		overflow := k.SetByteSlice(buf)
		if overflow || k.IsZero() {
			continue
		}
		return &Secp256k1KeyPair{priv: secp256k1.NewPrivateKey(&k)}, nil
	}
}

// Sign returns the DER encoding of the ECDSA signature of the digest.
func (s *Secp256k1CipherSuite) Sign(kp KeyPair, digest []byte) ([]byte, error) {
	keyPair, err := s.unpackKeyPair(kp)
	if err != nil {
		return nil, xerrors.Errorf("unpacking key pair: %v", err)
	}
	return ecdsa.Sign(keyPair.priv, digest).Serialize(), nil
}

// Verify parses the DER signature and verifies it against the public key of
// the pair.
func (s *Secp256k1CipherSuite) Verify(kp KeyPair, digest, sig []byte) bool {
	keyPair, err := s.unpackKeyPair(kp)
	if err != nil {
		return false
	}

	signature, err := ecdsa.ParseDERSignature(sig)
	if err != nil {
		return false
	}
	return signature.Verify(digest, keyPair.priv.PubKey())
}

// MaxSignatureSize returns 72, the DER size of two 33 bytes integers.
func (s *Secp256k1CipherSuite) MaxSignatureSize(kp KeyPair) int {
	return maxDERSignatureSize(secp256k1ScalarLen)
}

func (s *Secp256k1CipherSuite) unpackKeyPair(kp KeyPair) (*Secp256k1KeyPair, error) {
	keyPair, ok := kp.(*Secp256k1KeyPair)
	if !ok {
		return nil, errWrongKeyPair
	}
	if keyPair.priv == nil {
		return nil, errDestroyedKeyPair
	}
	return keyPair, nil
}
