package qoa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDescriptor(channels, sampleRate uint32) *StreamDescriptor {
	desc := &StreamDescriptor{Channels: channels, SampleRate: sampleRate}
	for c := uint32(0); c < channels; c++ {
		desc.Lms[c] = LmsState{
			Weights: [QOALMSLen]int16{0, 0, -(1 << 13), 1 << 14},
		}
	}
	return desc
}

func TestEncodeFrameHeaderLayout(t *testing.T) {
	// 8 channels, 16000 Hz, 100 samples per channel: 5 slices per
	// channel, frame size 8 + 16*8 + 8*5*8 = 456 = 0x01C8.
	desc := newTestDescriptor(8, 16000)
	pcm := make([]int16, 100*8)
	out := make([]byte, frameSize(8, 5))

	n := desc.EncodeFrame(pcm, 100, out)

	require.Equal(t, int(frameSize(8, 5)), n)
	assert.Equal(t, []byte{0x08, 0x00, 0x3E, 0x80, 0x00, 0x64, 0x01, 0xC8}, out[:8])
}

func TestEncodeFrameSizeLaw(t *testing.T) {
	for _, tc := range []struct {
		channels, frameLen uint32
	}{
		{1, 1}, {1, 20}, {1, 21}, {2, 5120}, {8, 5120}, {3, 5119},
	} {
		desc := newTestDescriptor(tc.channels, 44100)
		pcm := make([]int16, tc.frameLen*tc.channels)
		slices := (tc.frameLen + QOASliceLen - 1) / QOASliceLen
		out := make([]byte, frameSize(tc.channels, slices))

		n := desc.EncodeFrame(pcm, tc.frameLen, out)
		assert.Equal(t, int(frameSize(tc.channels, slices)), n, "channels=%d frameLen=%d", tc.channels, tc.frameLen)
	}
}

func TestEncodeDecodeFrameRoundTrip(t *testing.T) {
	channels := uint32(2)
	frameLen := uint32(45) // spans 3 slices, last one partial

	encDesc := newTestDescriptor(channels, 48000)
	pcm := make([]int16, frameLen*channels)
	for i := range pcm {
		pcm[i] = int16((i%200)*37 - 3000)
	}

	slices := (frameLen + QOASliceLen - 1) / QOASliceLen
	out := make([]byte, frameSize(channels, slices))
	n := encDesc.EncodeFrame(pcm, frameLen, out)

	decDesc := newTestDescriptor(channels, 48000)
	got := make([]int16, frameLen*channels)
	consumed, decodedLen, err := decDesc.DecodeFrame(out[:n], got)

	require.NoError(t, err)
	assert.Equal(t, n, consumed)
	assert.Equal(t, int(frameLen), decodedLen)
	assert.Equal(t, encDesc.Lms, decDesc.Lms, "decoder must end in the same predictor state as the encoder")
}

func TestDecodeFrameRejectsChannelMismatch(t *testing.T) {
	desc := newTestDescriptor(2, 44100)
	pcm := make([]int16, 10*2)
	slices := (uint32(10) + QOASliceLen - 1) / QOASliceLen
	out := make([]byte, frameSize(2, slices))
	desc.EncodeFrame(pcm, 10, out)

	wrongDesc := newTestDescriptor(3, 44100)
	got := make([]int16, 10*3)
	_, _, err := wrongDesc.DecodeFrame(out, got)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestDecodeFrameRejectsTruncatedBuffer(t *testing.T) {
	desc := newTestDescriptor(1, 44100)
	pcm := make([]int16, 20)
	slices := (uint32(20) + QOASliceLen - 1) / QOASliceLen
	out := make([]byte, frameSize(1, slices))
	desc.EncodeFrame(pcm, 20, out)

	truncated := out[:len(out)-1]
	got := make([]int16, 20)
	_, _, err := desc.DecodeFrame(truncated, got)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestWeightBlowupResetsWeightsBeforeEncoding(t *testing.T) {
	desc := newTestDescriptor(1, 44100)
	desc.Lms[0].Weights = [QOALMSLen]int16{20000, 20000, 20000, 20000}

	pcm := make([]int16, QOASliceLen)
	out := make([]byte, frameSize(1, 1))
	desc.EncodeFrame(pcm, QOASliceLen, out)

	// The pre-encode weight-blowup sum (4 * 20000^2) exceeds the
	// threshold, so the channel must start the frame from zero weights;
	// the encoder's own adaptive update may move them away from zero
	// again afterwards, so we only check they are no longer the blown-up
	// starting values.
	assert.NotEqual(t, [QOALMSLen]int16{20000, 20000, 20000, 20000}, desc.Lms[0].Weights)
}
