package bench

import (
	"fmt"

	"golang.org/x/xerrors"
)

var (
	// ErrKeyGeneration is returned when the suite cannot generate a key
	// pair.
	ErrKeyGeneration = xerrors.New("key generation failed")
	// ErrSigning is returned when the suite fails to sign the digest.
	ErrSigning = xerrors.New("signing failed")
	// ErrSignatureRoundTrip is returned when a signature that was just
	// produced does not verify with its own key pair. It always means a
	// broken suite and ends the run.
	ErrSignatureRoundTrip = xerrors.New("signature round trip failed")
	// ErrSignatureTooLarge is returned when a signature is longer than the
	// maximum the suite announced for the key pair.
	ErrSignatureTooLarge = xerrors.New("signature larger than announced maximum")
	// ErrRandomnessUnavailable is returned when the message cannot be drawn
	// from the randomness source.
	ErrRandomnessUnavailable = xerrors.New("randomness unavailable")
	// ErrEmptyTrialSet is returned when aggregating zero trials.
	ErrEmptyTrialSet = xerrors.New("empty trial set")
)

// Stage is the step of a trial lifecycle.
type Stage int

const (
	// StageKeyGeneration is the key and parameter generation.
	StageKeyGeneration Stage = iota
	// StageMessage is the drawing of the random message.
	StageMessage
	// StageSign is the signature of the digest.
	StageSign
	// StageVerify is the verification of the signature.
	StageVerify
)

func (s Stage) String() string {
	switch s {
	case StageKeyGeneration:
		return "key generation"
	case StageMessage:
		return "message generation"
	case StageSign:
		return "signing"
	case StageVerify:
		return "verification"
	}
	return fmt.Sprintf("stage(%d)", int(s))
}

// TrialError carries what is needed to reproduce a failed trial. It matches
// its Kind with xerrors.Is and unwraps to the underlying cause.
type TrialError struct {
	Stage       Stage
	Scheme      string
	MessageSize int
	Trial       int
	Kind        error
	Err         error
}

func (e *TrialError) Error() string {
	msg := fmt.Sprintf("%s stage of trial %d (scheme %s, %d bytes message): %v",
		e.Stage, e.Trial, e.Scheme, e.MessageSize, e.Kind)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is reports whether target is the kind of the failure.
func (e *TrialError) Is(target error) bool {
	return target == e.Kind
}

// Unwrap returns the cause of the failure.
func (e *TrialError) Unwrap() error {
	return e.Err
}

// IsFatal returns true for the failures that must end the run whatever the
// failure policy is.
func IsFatal(err error) bool {
	return xerrors.Is(err, ErrSignatureRoundTrip) ||
		xerrors.Is(err, ErrSignatureTooLarge) ||
		xerrors.Is(err, ErrEmptyTrialSet)
}
