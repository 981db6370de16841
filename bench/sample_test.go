package bench

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"
)

func TestSampleGenerator(t *testing.T) {
	g := NewSampleGenerator(nil)

	for _, size := range []int{1, 64, 128, 256, 4096} {
		msg, err := g.Generate(size)
		require.NoError(t, err)
		require.Len(t, msg, size)
	}

	m1, err := g.Generate(64)
	require.NoError(t, err)
	m2, err := g.Generate(64)
	require.NoError(t, err)
	require.NotEqual(t, m1, m2)

	_, err = g.Generate(0)
	require.Error(t, err)
	require.False(t, xerrors.Is(err, ErrRandomnessUnavailable))
	_, err = g.Generate(-1)
	require.Error(t, err)
}

func TestSampleGenerator_Failure(t *testing.T) {
	g := NewSampleGenerator(&flakyReader{failures: 1})
	msg, err := g.Generate(64)
	require.Nil(t, msg)
	require.True(t, xerrors.Is(err, ErrRandomnessUnavailable))

	msg, err = g.Generate(64)
	require.NoError(t, err)
	require.Len(t, msg, 64)

	// a short source is a failure as well
	g = NewSampleGenerator(bytes.NewReader(make([]byte, 10)))
	_, err = g.Generate(64)
	require.True(t, xerrors.Is(err, ErrRandomnessUnavailable))
}
