// Package ciphersuite wraps the signature schemes sigbench measures behind a
// single CipherSuite interface, so that the trial code is written once and
// runs against any scheme.
//
// A suite only exposes what a benchmark trial needs: generate a key pair,
// sign a digest, verify the signature and announce the largest signature it
// can produce. The key pair is an opaque handle owned by whoever generated
// it; it is destroyed once the trial is over and never reused.
//
// The suites are registered by name in a Registry so that the command line
// can select them.
package ciphersuite

import (
	"io"

	"golang.org/x/xerrors"
)

// Name is the type that can differentiate multiple ciphers.
type Name = string

// Nameable binds a structure to a cipher.
type Nameable interface {
	Name() Name
}

// KeyPair is the handle on a generated key (and its parameters, for schemes
// that have them). Only the suite that created it can use it.
type KeyPair interface {
	Nameable

	// Destroy drops the key material. The key pair must not be used
	// afterwards.
	Destroy()
}

// CipherSuite provides the primitives needed to create and verify
// signatures using an asymmetric key pair.
type CipherSuite interface {
	Nameable

	// GenerateKeyPair must return a fresh key pair, generating the domain
	// parameters as well when the scheme has per-key parameters. A nil
	// reader means the default randomness source.
	GenerateKeyPair(rand io.Reader) (KeyPair, error)

	// Sign must produce a signature of the digest that Verify accepts for
	// the same key pair.
	Sign(kp KeyPair, digest []byte) ([]byte, error)

	// Verify must return true when the signature is valid for the digest
	// and the key pair, false otherwise, including when the signature
	// cannot be decoded.
	Verify(kp KeyPair, digest, sig []byte) bool

	// MaxSignatureSize must return the upper bound of the length of a
	// signature produced with the key pair.
	MaxSignatureSize(kp KeyPair) int
}

var errWrongKeyPair = xerrors.New("wrong type of key pair")

var errDestroyedKeyPair = xerrors.New("key pair has been destroyed")

// maxDERSignatureSize returns the largest DER encoding of the
// SEQUENCE { INTEGER r, INTEGER s } pair used by DSA and ECDSA when both
// scalars are at most scalarLen bytes. An integer may need one more byte
// than the scalar to keep its sign bit clear.
func maxDERSignatureSize(scalarLen int) int {
	integer := derHeaderLen(scalarLen+1) + scalarLen + 1
	content := 2 * integer
	return derHeaderLen(content) + content
}

// derHeaderLen is the size of the tag and length octets for a content of n
// bytes.
func derHeaderLen(n int) int {
	if n < 128 {
		return 2
	}
	l := 2
	for ; n > 0; n >>= 8 {
		l++
	}
	return l
}
