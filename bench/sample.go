package bench

import (
	"crypto/rand"
	"io"

	"golang.org/x/xerrors"
)

// SampleGenerator draws the messages that are signed.
type SampleGenerator struct {
	reader io.Reader
}

// NewSampleGenerator returns a generator reading from r, or from
// crypto/rand when r is nil.
func NewSampleGenerator(r io.Reader) *SampleGenerator {
	if r == nil {
		r = rand.Reader
	}
	return &SampleGenerator{reader: r}
}

// Generate returns exactly length random bytes. A failing or short reader
// gives an error wrapping ErrRandomnessUnavailable, never a partially
// filled message.
func (g *SampleGenerator) Generate(length int) ([]byte, error) {
	if length <= 0 {
		return nil, xerrors.Errorf("invalid message length %d", length)
	}

	msg := make([]byte, length)
	if _, err := io.ReadFull(g.reader, msg); err != nil {
		return nil, xerrors.Errorf("reading %d bytes (%v): %w", length, err, ErrRandomnessUnavailable)
	}
	return msg, nil
}
