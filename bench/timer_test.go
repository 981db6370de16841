package bench

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"
)

func TestMeasure(t *testing.T) {
	clock := &stepClock{step: 3 * time.Millisecond}

	calls := 0
	v, elapsed, err := Measure(clock, func() (int, error) {
		calls++
		return 42, nil
	})
	require.NoError(t, err)
	require.Equal(t, 42, v)
	require.Equal(t, 3*time.Millisecond, elapsed)
	require.Equal(t, 1, calls)
}

func TestMeasure_ErrorIsUntouched(t *testing.T) {
	opErr := xerrors.New("boom")
	v, elapsed, err := Measure(&stepClock{step: time.Second}, func() ([]byte, error) {
		return []byte{1}, opErr
	})
	require.True(t, err == opErr)
	require.Equal(t, []byte{1}, v)
	require.Equal(t, time.Second, elapsed)
}

func TestMeasure_SystemClock(t *testing.T) {
	_, elapsed, err := Measure(SystemClock{}, func() (struct{}, error) {
		time.Sleep(time.Millisecond)
		return struct{}{}, nil
	})
	require.NoError(t, err)
	require.True(t, elapsed >= time.Millisecond)
}
