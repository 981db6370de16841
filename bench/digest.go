package bench

import (
	"crypto/sha256"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
	"golang.org/x/xerrors"
)

// DigestSize is the length of the digests that are signed.
const DigestSize = 32

// Hasher derives the digest of a message.
type Hasher func(msg []byte) [DigestSize]byte

// Names of the supported hash functions.
const (
	HashSHA256  = "sha256"
	HashBlake2b = "blake2b"
	HashSHA3    = "sha3"
)

// NewHasher returns the hash function known under name.
func NewHasher(name string) (Hasher, error) {
	switch name {
	case HashSHA256:
		return sha256.Sum256, nil
	case HashBlake2b:
		return blake2b.Sum256, nil
	case HashSHA3:
		return sha3.Sum256, nil
	}
	return nil, xerrors.Errorf("unknown hash %q", name)
}
