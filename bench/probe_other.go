//go:build !darwin && !dragonfly && !freebsd && !linux && !netbsd && !openbsd
// +build !darwin,!dragonfly,!freebsd,!linux,!netbsd,!openbsd

package bench

import "golang.org/x/xerrors"

func peakRSS() (int64, error) {
	return 0, xerrors.New("getrusage not available")
}
