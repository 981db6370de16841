//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd
// +build darwin dragonfly freebsd linux netbsd openbsd

package bench

import (
	"runtime"

	"golang.org/x/sys/unix"
	"golang.org/x/xerrors"
)

func peakRSS() (int64, error) {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0, xerrors.Errorf("getrusage: %v", err)
	}
	// darwin reports bytes, the others KB
	if runtime.GOOS == "darwin" {
		return int64(ru.Maxrss) / 1024, nil
	}
	return int64(ru.Maxrss), nil
}
