package qoa

// weightBlowupThreshold is the squared-weight-sum ceiling above which a
// channel's LMS weights are reset to zero before encoding the next
// frame. This is a defensive measure against pathological
// high-frequency input that would otherwise let weights grow without
// bound; it trades a burst of noise for preventing pops and clicks. It
// never fires for well-behaved audio.
const weightBlowupThreshold = 0x2fffffff

// EncodeFrame encodes up to QOAFrameLen samples per channel of
// channel-interleaved PCM (sample) into out, using and updating
// desc.Lms. frameLen is the number of samples per channel actually
// present in sample (it may be less than QOAFrameLen only for the
// stream's final frame). It returns the number of bytes written, which
// always equals frameSize(desc.Channels, ceil(frameLen/QOASliceLen)).
func (desc *StreamDescriptor) EncodeFrame(sample []int16, frameLen uint32, out []byte) int {
	channels := desc.Channels
	slices := (frameLen + QOASliceLen - 1) / QOASliceLen
	fsize := frameSize(channels, slices)

	p := 0
	writeU64(
		uint64(channels)<<56|
			uint64(desc.SampleRate)<<32|
			uint64(frameLen)<<16|
			uint64(fsize),
		out, &p,
	)

	for c := uint32(0); c < channels; c++ {
		lms := &desc.Lms[c]

		weightSum := int(lms.Weights[0])*int(lms.Weights[0]) +
			int(lms.Weights[1])*int(lms.Weights[1]) +
			int(lms.Weights[2])*int(lms.Weights[2]) +
			int(lms.Weights[3])*int(lms.Weights[3])
		if weightSum > weightBlowupThreshold {
			lms.Weights = [QOALMSLen]int16{}
		}

		var history, weights uint64
		for i := 0; i < QOALMSLen; i++ {
			history = history<<16 | uint64(uint16(lms.History[i]))
			weights = weights<<16 | uint64(uint16(lms.Weights[i]))
		}
		writeU64(history, out, &p)
		writeU64(weights, out, &p)
	}

	for sampleIndex := uint32(0); sampleIndex < frameLen; sampleIndex += QOASliceLen {
		for c := uint32(0); c < channels; c++ {
			sliceLen := int(clamp(QOASliceLen, 0, int(frameLen-sampleIndex)))
			start := sampleIndex*channels + c
			end := (sampleIndex+uint32(sliceLen))*channels + c

			chanSamples := make([]int16, 0, sliceLen)
			for si := start; si < end; si += channels {
				chanSamples = append(chanSamples, sample[si])
			}

			packed, err, newLms, sf := encodeSlice(chanSamples, desc.Lms[c])
			desc.Lms[c] = newLms
			desc.TotalError += err

			logger.Debug("encoded slice", "channel", c, "sampleIndex", sampleIndex, "scalefactor", sf)

			writeU64(packed, out, &p)
		}
	}

	return p
}

// DecodeFrame decodes one frame from b into out (channel-interleaved,
// out[i*channels+c] holds channel c of sample-frame i), validating the
// frame header against desc and populating desc.Lms from the frame's
// own LMS block. It returns the number of bytes consumed and the
// number of samples per channel decoded; consumed == 0 signals a
// failure, with err describing why.
func (desc *StreamDescriptor) DecodeFrame(b []byte, out []int16) (consumed int, frameLen int, err error) {
	if len(b) < 8+QOALMSLen*4*int(desc.Channels) {
		return 0, 0, wrapf(ErrShortRead, "frame header and LMS block need %d bytes, have %d", 8+QOALMSLen*4*int(desc.Channels), len(b))
	}

	p := 0
	header := readU64(b, &p)
	channels := uint32(header>>56) & 0xff
	sampleRate := uint32(header>>32) & 0xffffff
	samples := uint32(header>>16) & 0xffff
	fsize := int(header & 0xffff)

	dataSize := fsize - 8 - QOALMSLen*4*int(channels)
	if dataSize < 0 {
		return 0, 0, wrapf(ErrMalformed, "frame size %d too small for %d channels", fsize, channels)
	}
	numSlices := dataSize / 8
	neededSlices := (int(samples) + QOASliceLen - 1) / QOASliceLen * int(channels)

	switch {
	case channels != desc.Channels:
		return 0, 0, wrapf(ErrMalformed, "frame channel count %d != stream channel count %d", channels, desc.Channels)
	case sampleRate != desc.SampleRate:
		return 0, 0, wrapf(ErrMalformed, "frame sample rate %d != stream sample rate %d", sampleRate, desc.SampleRate)
	case fsize > len(b):
		return 0, 0, wrapf(ErrMalformed, "frame size %d exceeds remaining %d bytes", fsize, len(b))
	case neededSlices > numSlices:
		return 0, 0, wrapf(ErrMalformed, "frame declares %d samples but only %d slices available", samples, numSlices)
	case int(samples)*int(channels) > len(out):
		return 0, 0, wrapf(ErrMalformed, "frame declares %d samples but output has room for %d values", samples, len(out))
	}

	for c := uint32(0); c < channels; c++ {
		history := readU64(b, &p)
		weights := readU64(b, &p)
		for i := 0; i < QOALMSLen; i++ {
			desc.Lms[c].History[i] = int16(history >> 48)
			history <<= 16
			desc.Lms[c].Weights[i] = int16(weights >> 48)
			weights <<= 16
		}
	}

	for sampleIndex := uint32(0); sampleIndex < samples; sampleIndex += QOASliceLen {
		sliceLen := int(clamp(QOASliceLen, 0, int(samples-sampleIndex)))
		for c := uint32(0); c < channels; c++ {
			word := readU64(b, &p)

			chanSamples := make([]int16, sliceLen)
			decodeSlice(word, &desc.Lms[c], chanSamples)

			start := sampleIndex*channels + c
			for i, v := range chanSamples {
				out[start+uint32(i)*channels] = v
			}
		}
	}

	logger.Debug("decoded frame", "channels", channels, "samples", samples, "bytes", p)

	return p, int(samples), nil
}
