package bench

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewHasher(t *testing.T) {
	msg := []byte("deadbeef")
	digests := make(map[[DigestSize]byte]string)

	for _, name := range []string{HashSHA256, HashBlake2b, HashSHA3} {
		h, err := NewHasher(name)
		require.NoError(t, err)

		d := h(msg)
		require.Equal(t, d, h(msg))
		require.NotEqual(t, d, h([]byte("cafebabe")))
		digests[d] = name
	}
	require.Len(t, digests, 3)

	_, err := NewHasher("md5")
	require.Error(t, err)
}
