// Package radix defines sentinel errors and functional options for the
// LSD radix sort driver.
package radix

import (
	"errors"
)

// DefaultRadix is the base used when WithRadix is not supplied.
const DefaultRadix = 10

// MaxRadix is the largest accepted base. The bucket table holds one int per
// digit value, so MaxRadix bounds the per-pass table at 128 MiB.
const MaxRadix = 1 << 24

// minRadix is the smallest base for which digit extraction is meaningful.
const minRadix = 2

// Sentinel errors returned by Sort.
var (
	// ErrInvalidRadix indicates that the configured radix is below 2 or
	// above MaxRadix.
	ErrInvalidRadix = errors.New("radix: radix out of range")

	// ErrHookAborted indicates that the OnPass hook returned an error and
	// the sort was abandoned.
	ErrHookAborted = errors.New("radix: aborted by pass hook")
)

// PassFunc observes the working sequence after a counting-sort pass.
// pass is 1-based, exp is the digit weight that pass sorted on.
// Returning a non-nil error aborts the sort.
type PassFunc func(pass int, exp uint64, seq []int64) error

// Options configures Sort.
//
// Radix        – base of the digit system; must be in [2, MaxRadix]. Default 10.
// OnPass       – optional hook called after every pass.
// ReuseScratch – if true, two output buffers and one bucket table are
//
//	allocated once per sort and reused by every pass.
type Options struct {
	Radix        int      // Number base used for digit extraction
	OnPass       PassFunc // Called after each pass, nil disables
	ReuseScratch bool     // Ping-pong between two buffers instead of allocating per pass
}

// Option represents a functional option for configuring Sort.
type Option func(*Options)

// DefaultOptions returns Options with radix 10, no hook and fresh buffers
// per pass.
func DefaultOptions() Options {
	return Options{
		Radix:        DefaultRadix,
		OnPass:       nil,
		ReuseScratch: false,
	}
}

// WithRadix sets the number base. Values outside [2, MaxRadix] are not
// rejected here; Sort reports them as ErrInvalidRadix so the caller gets an
// error value.
func WithRadix(r int) Option {
	return func(o *Options) {
		o.Radix = r
	}
}

// WithOnPass installs fn as a post-pass hook. Panics on nil.
func WithOnPass(fn PassFunc) Option {
	if fn == nil {
		panic("radix: WithOnPass(nil)")
	}
	return func(o *Options) {
		o.OnPass = fn
	}
}

// WithScratchReuse makes every pass of one sort share two output buffers
// and one bucket table. The slice handed to an OnPass hook is then
// overwritten two passes later; copy it if it must outlive the hook.
func WithScratchReuse() Option {
	return func(o *Options) {
		o.ReuseScratch = true
	}
}

// validRadix reports whether r is an accepted base.
func validRadix(r int) bool {
	return r >= minRadix && r <= MaxRadix
}
