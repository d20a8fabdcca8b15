package qoa

// QOA constants, taken verbatim from the format's public spec.
const (
	// QOAMagic is the four ASCII bytes 'qoaf' identifying a QOA file,
	// stored as the big-endian uint32 0x716f6166.
	QOAMagic = 0x716f6166
	// QOAMinFilesize is the smallest buffer that could possibly hold a
	// valid QOA file (file header + one frame header).
	QOAMinFilesize = 16
	// QOAMaxChannels is the highest channel count this package will
	// encode or accept on decode.
	QOAMaxChannels = 8
	// QOASliceLen is the number of samples encoded in one slice.
	QOASliceLen = 20
	// QOASlicesPerFrame is the number of slices per channel in a full
	// frame.
	QOASlicesPerFrame = 256
	// QOAFrameLen is the number of samples per channel in a full frame.
	QOAFrameLen = QOASlicesPerFrame * QOASliceLen
	// QOALMSLen is the tap count of the LMS predictor.
	QOALMSLen = 4
)

// frameSize returns the exact byte length of a frame with the given
// channel and slice counts: an 8 byte frame header, 16 bytes of LMS
// state per channel, and 8 bytes per slice per channel.
func frameSize(channels, slices uint32) uint32 {
	return 8 + QOALMSLen*4*channels + 8*slices*channels
}

// StreamDescriptor describes one QOA stream: its shape (channel count,
// sample rate, total samples per channel) and the per-channel LMS
// predictor state that the encoder carries across frames and the
// decoder rebuilds from each frame's header.
//
// A StreamDescriptor is created fresh by the caller before Encode, or
// returned by DecodeHeader/Decode. Its Lms array belongs exclusively to
// the in-progress encode or decode call; nothing in this package
// retains a StreamDescriptor across calls.
type StreamDescriptor struct {
	// Channels is the channel count, in [1, QOAMaxChannels].
	Channels uint32
	// SampleRate is the sample rate in Hz, in [1, 0xffffff].
	SampleRate uint32
	// Samples is the total number of samples per channel.
	Samples uint32
	// Lms holds one predictor state per channel. Only the first
	// Channels entries are meaningful.
	Lms [QOAMaxChannels]LmsState
	// TotalError is an optional diagnostic: the sum of squared
	// per-sample errors accumulated across the most recent Encode
	// call. It is not part of the wire format and is not touched by
	// Decode.
	TotalError uint64
}

// clamp returns v constrained to [lo, hi].
func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clampS16 clamps v to the signed 16 bit range. Kept as a distinct,
// narrower helper from clamp because the reconstructed-sample path is
// by far the hottest call site in both encode and decode.
func clampS16(v int) int16 {
	if v <= -32768 {
		return -32768
	}
	if v >= 32767 {
		return 32767
	}
	return int16(v)
}

// sign returns -1, 0, or 1 according to the sign of v.
func sign(v int) int {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}

// div implements QOA's rounding division by a scalefactor: a biased
// multiply-and-shift against the scalefactor's precomputed .16
// fixed-point reciprocal, followed by a round-away-from-zero
// correction. This avoids a true division per sample in the
// scalefactor search and ensures the smallest nonzero residuals map to
// quantized codes of at least 1 rather than rounding down to 0.
func div(v, scalefactor int) int {
	r := reciprocalTable[scalefactor]
	n := (v*r + (1 << 15)) >> 16
	n = n + sign(v) - sign(n)
	return n
}
