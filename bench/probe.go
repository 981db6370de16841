package bench

import (
	"os"

	"github.com/shirou/gopsutil/process"
)

// Probe samples the memory of the process.
type Probe interface {
	// Sample returns the peak resident memory of the process in KB.
	Sample() int64
}

// ResourceProbe reads the high-water mark of the resident memory that the
// kernel keeps for the process (getrusage ru_maxrss). Where that is not
// available it falls back to the current RSS reported by gopsutil and keeps
// the maximum seen itself.
//
// The peak never decreases during the life of the process, so two samples
// only differ when a trial raised the high-water mark. It tells nothing about
// memory freed between trials and is reported as an indication only.
type ResourceProbe struct {
	proc *process.Process
	peak int64
}

// NewResourceProbe returns a probe for the running process.
func NewResourceProbe() *ResourceProbe {
	// a missing process handle only disables the fallback
	proc, _ := process.NewProcess(int32(os.Getpid()))
	return &ResourceProbe{proc: proc}
}

// Sample implements Probe. It returns 0 when no source of information is
// available on the platform.
func (p *ResourceProbe) Sample() int64 {
	kb, err := peakRSS()
	if err != nil {
		kb = p.CurrentRSS()
	}
	if kb > p.peak {
		p.peak = kb
	}
	return p.peak
}

// CurrentRSS returns the current resident memory in KB, or 0 when it cannot
// be read.
func (p *ResourceProbe) CurrentRSS() int64 {
	if p.proc == nil {
		return 0
	}
	mem, err := p.proc.MemoryInfo()
	if err != nil {
		return 0
	}
	return int64(mem.RSS / 1024)
}
