package qoa

import (
	"fmt"

	"github.com/mewkiz/pkg/errutil"
)

// The three fatal error categories this package ever returns. Every
// failure from Encode, DecodeHeader, Decode, EncodeFrame, or
// DecodeFrame is one of these, wrapped with positional context via
// fmt.Errorf's %w so callers can still match with errors.Is. Nothing in
// this package logs, retries, or recovers from any of them.
var (
	// ErrInvalidDescriptor is returned by Encode when the descriptor's
	// Samples, SampleRate, or Channels are zero or out of range.
	ErrInvalidDescriptor = errutil.Newf("qoa: invalid stream descriptor")
	// ErrMalformed is returned by the decode path when the magic is
	// wrong, a frame header disagrees with the stream descriptor, a
	// frame claims more bytes than remain, or declared samples exceed
	// what the slice count can hold.
	ErrMalformed = errutil.Newf("qoa: malformed stream")
	// ErrShortRead is returned when a buffer is smaller than
	// QOAMinFilesize, or smaller than a frame header plus its LMS
	// block.
	ErrShortRead = errutil.Newf("qoa: short read")
)

// wrapf attaches positional context to one of the sentinel errors above
// while keeping it errors.Is-comparable to that sentinel.
func wrapf(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{sentinel}, args...)...)
}
