package ciphersuite

import (
	"crypto/dsa"
	"crypto/rand"
	"io"
	"math/big"

	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"
	"golang.org/x/xerrors"
)

// DSACipherSuiteName is the name of the finite-field discrete-log suite.
const DSACipherSuiteName = "dsa"

// DSAKeyPair holds the domain parameters and the key generated for one
// trial.
type DSAKeyPair struct {
	priv *dsa.PrivateKey
	rand io.Reader
}

// Name returns the name of the cipher suite.
func (kp *DSAKeyPair) Name() Name {
	return DSACipherSuiteName
}

// Destroy drops the key and its parameters.
func (kp *DSAKeyPair) Destroy() {
	if kp.priv != nil && kp.priv.X != nil {
		kp.priv.X.SetInt64(0)
	}
	kp.priv = nil
}

// DSACipherSuite is a cipher suite generating fresh DSA domain parameters
// with every key pair, the same work OpenSSL does in
// DSA_generate_parameters_ex followed by DSA_generate_key.
type DSACipherSuite struct {
	sizes dsa.ParameterSizes
}

// NewDSACipherSuite returns a DSA suite using the given parameter sizes.
func NewDSACipherSuite(sizes dsa.ParameterSizes) *DSACipherSuite {
	return &DSACipherSuite{sizes: sizes}
}

// DSAParameterSizes maps the bit lengths of the modulus (l) and of the
// subgroup order (n) to the sizes crypto/dsa knows about.
func DSAParameterSizes(l, n int) (dsa.ParameterSizes, error) {
	switch {
	case l == 1024 && n == 160:
		return dsa.L1024N160, nil
	case l == 2048 && n == 224:
		return dsa.L2048N224, nil
	case l == 2048 && n == 256:
		return dsa.L2048N256, nil
	case l == 3072 && n == 256:
		return dsa.L3072N256, nil
	}
	return 0, xerrors.Errorf("unsupported dsa sizes L=%d N=%d", l, n)
}

// Name returns the name of the suite.
func (s *DSACipherSuite) Name() Name {
	return DSACipherSuiteName
}

// GenerateKeyPair generates the domain parameters and a key pair using
// them.
func (s *DSACipherSuite) GenerateKeyPair(reader io.Reader) (KeyPair, error) {
	if reader == nil {
		reader = rand.Reader
	}

	priv := &dsa.PrivateKey{}
	err := dsa.GenerateParameters(&priv.Parameters, reader, s.sizes)
	if err != nil {
		return nil, xerrors.Errorf("generating dsa parameters: %v", err)
	}

	err = dsa.GenerateKey(priv, reader)
	if err != nil {
		return nil, xerrors.Errorf("generating dsa key: %v", err)
	}

	return &DSAKeyPair{priv: priv, rand: reader}, nil
}

// Sign returns the DER encoded (r, s) signature of the digest.
func (s *DSACipherSuite) Sign(kp KeyPair, digest []byte) ([]byte, error) {
	keyPair, err := s.unpackKeyPair(kp)
	if err != nil {
		return nil, xerrors.Errorf("unpacking key pair: %v", err)
	}

	r, ss, err := dsa.Sign(keyPair.rand, keyPair.priv, digest)
	if err != nil {
		return nil, xerrors.Errorf("dsa sign: %v", err)
	}

	var b cryptobyte.Builder
	b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1BigInt(r)
		b.AddASN1BigInt(ss)
	})
	sig, err := b.Bytes()
	if err != nil {
		return nil, xerrors.Errorf("encoding signature: %v", err)
	}
	return sig, nil
}

// Verify returns true when the DER encoded signature is valid for the
// digest.
func (s *DSACipherSuite) Verify(kp KeyPair, digest, sig []byte) bool {
	keyPair, err := s.unpackKeyPair(kp)
	if err != nil {
		return false
	}

	r, ss := new(big.Int), new(big.Int)
	input := cryptobyte.String(sig)
	var inner cryptobyte.String
	if !input.ReadASN1(&inner, asn1.SEQUENCE) ||
		!input.Empty() ||
		!inner.ReadASN1Integer(r) ||
		!inner.ReadASN1Integer(ss) ||
		!inner.Empty() {
		return false
	}

	return dsa.Verify(&keyPair.priv.PublicKey, digest, r, ss)
}

// MaxSignatureSize returns the size of the DER encoding of two integers as
// long as the subgroup order.
func (s *DSACipherSuite) MaxSignatureSize(kp KeyPair) int {
	keyPair, err := s.unpackKeyPair(kp)
	if err != nil {
		return 0
	}
	return maxDERSignatureSize((keyPair.priv.Q.BitLen() + 7) / 8)
}

func (s *DSACipherSuite) unpackKeyPair(kp KeyPair) (*DSAKeyPair, error) {
	keyPair, ok := kp.(*DSAKeyPair)
	if !ok {
		return nil, errWrongKeyPair
	}
	if keyPair.priv == nil {
		return nil, errDestroyedKeyPair
	}
	return keyPair, nil
}
