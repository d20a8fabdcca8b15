package qoa

import "encoding/binary"

// Encode turns pcm — channel-interleaved 16 bit PCM, length
// desc.Samples*desc.Channels — into a complete QOA byte stream,
// according to desc.Channels, desc.SampleRate, and desc.Samples.
// desc.Lms is (re)initialized to the canonical starting predictor state
// and left holding the final frame's end-of-stream state on return;
// desc.TotalError accumulates the squared reconstruction error across
// the whole encode.
//
// Returns ErrInvalidDescriptor if Samples, SampleRate, or Channels are
// zero or out of range.
func Encode(pcm []int16, desc *StreamDescriptor) ([]byte, error) {
	if desc.Samples == 0 || desc.SampleRate == 0 || desc.SampleRate > 0xffffff ||
		desc.Channels == 0 || desc.Channels > QOAMaxChannels {
		return nil, wrapf(ErrInvalidDescriptor, "channels=%d samplerate=%d samples=%d", desc.Channels, desc.SampleRate, desc.Samples)
	}

	numFrames := (desc.Samples + QOAFrameLen - 1) / QOAFrameLen
	numSlices := (desc.Samples + QOASliceLen - 1) / QOASliceLen
	size := 8 +
		numFrames*8 +
		numFrames*QOALMSLen*4*desc.Channels +
		numSlices*8*desc.Channels

	out := make([]byte, size)

	for c := uint32(0); c < desc.Channels; c++ {
		desc.Lms[c] = LmsState{
			Weights: [QOALMSLen]int16{0, 0, -(1 << 13), 1 << 14},
			History: [QOALMSLen]int16{0, 0, 0, 0},
		}
	}
	desc.TotalError = 0

	binary.BigEndian.PutUint64(out, uint64(QOAMagic)<<32|uint64(desc.Samples))
	p := uint32(8)

	frameLen := uint32(QOAFrameLen)
	for sampleIndex := uint32(0); sampleIndex < desc.Samples; sampleIndex += frameLen {
		frameLen = uint32(clamp(QOAFrameLen, 0, int(desc.Samples-sampleIndex)))
		frameSamples := pcm[sampleIndex*desc.Channels : (sampleIndex+frameLen)*desc.Channels]
		n := desc.EncodeFrame(frameSamples, frameLen, out[p:])
		p += uint32(n)
	}

	logger.Debug("encoded stream", "frames", numFrames, "samples", desc.Samples, "bytes", len(out))

	return out, nil
}

// DecodeHeader reads only the 8 byte file header from b, plus peeks
// (without consuming) the first frame header to recover Channels and
// SampleRate, and returns a partially populated StreamDescriptor along
// with the number of bytes consumed (always 8 on success — the peeked
// frame header is left for the caller's subsequent DecodeFrame call).
//
// Returns ErrShortRead if b is smaller than QOAMinFilesize,
// ErrMalformed if the magic is wrong, the sample count is zero, or the
// peeked frame declares zero or too many channels or a zero sample
// rate.
func DecodeHeader(b []byte) (*StreamDescriptor, int, error) {
	if len(b) < QOAMinFilesize {
		return nil, 0, wrapf(ErrShortRead, "buffer of %d bytes is smaller than the %d byte minimum", len(b), QOAMinFilesize)
	}

	p := 0
	fileHeader := readU64(b, &p)
	if (fileHeader >> 32) != QOAMagic {
		return nil, 0, wrapf(ErrMalformed, "bad magic %08x", fileHeader>>32)
	}

	samples := uint32(fileHeader & 0xffffffff)
	if samples == 0 {
		return nil, 0, wrapf(ErrMalformed, "file header declares zero samples")
	}

	frameHeader := binary.BigEndian.Uint64(b[p:])
	channels := uint32(frameHeader>>56) & 0xff
	sampleRate := uint32(frameHeader>>32) & 0xffffff

	if channels == 0 || channels > QOAMaxChannels {
		return nil, 0, wrapf(ErrMalformed, "first frame declares %d channels", channels)
	}
	if sampleRate == 0 {
		return nil, 0, wrapf(ErrMalformed, "first frame declares a zero sample rate")
	}

	return &StreamDescriptor{
		Channels:   channels,
		SampleRate: sampleRate,
		Samples:    samples,
	}, p, nil
}

// Decode fully decodes a QOA byte stream, returning the reconstructed
// channel-interleaved PCM and a StreamDescriptor whose Samples field
// holds the number of samples per channel decoded. On success this
// equals the file header's declared count: a stream whose frames end
// before reaching it, or overrun it, fails with an error rather than
// returning a partial result.
func Decode(b []byte) ([]int16, *StreamDescriptor, error) {
	desc, p, err := DecodeHeader(b)
	if err != nil {
		return nil, nil, err
	}

	pcm := make([]int16, uint64(desc.Samples)*uint64(desc.Channels))

	sampleIndex := uint32(0)
	for {
		consumed, frameLen, err := desc.DecodeFrame(b[p:], pcm[sampleIndex*desc.Channels:])
		if err != nil {
			return nil, nil, err
		}
		if consumed == 0 {
			return nil, nil, wrapf(ErrMalformed, "frame at byte %d failed to decode", p)
		}

		p += consumed
		sampleIndex += uint32(frameLen)

		if sampleIndex >= desc.Samples {
			break
		}
	}

	desc.Samples = sampleIndex

	logger.Debug("decoded stream", "samples", desc.Samples, "channels", desc.Channels)

	return pcm, desc, nil
}
