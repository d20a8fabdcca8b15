/*
Package qoa implements the "Quite OK Audio" format: a lossy, fixed
bitrate codec for 16 bit PCM built around a 4-tap sign-sign LMS
predictor and 3 bit quantized residuals packed into 64 bit slices.

# Data Format

A QOA stream consists of an 8 byte file header, followed by one or more
frames. Each frame has an 8 byte frame header, 16 bytes of encoder state
per channel, and up to 256 slices per channel. Each slice is 8 bytes
wide and encodes 20 samples of audio for one channel.

All values, including the slices, are big endian. The file layout is:

	struct {
		struct {
			char     magic[4];    // "qoaf"
			uint32_t samples;     // samples per channel in the file
		} file_header;

		struct {
			struct {
				uint8_t  channels;
				uint24_t samplerate;
				uint16_t fsamples;  // samples per channel in this frame
				uint16_t fsize;     // frame size, including this header
			} frame_header;

			struct {
				int16_t history[4]; // most recent last
				int16_t weights[4]; // most recent last
			} lms[channels];

			slice_t slices[ceil(fsamples/20)][channels];
		} frames[...];
	} file;

Each slice packs a 4 bit scalefactor index and 20 3-bit quantized
residuals into one 64 bit big-endian word:

	.- slice -- 64 bits, 20 samples -----------------------------/  /----------.
	|  sf  |  r00  |  r01  |  r02  |  r03  |  r04  |  r05  | ... /  /  |  r19  |
	| 4bit | 3bit  | 3bit  | 3bit  | 3bit  | 3bit  | 3bit  |     /  /  | 3bit  |
	`--------------------------------------------------------------\  \-------`

Channels are interleaved per slice: for stereo, slice 0 is the left
channel's first 20 samples, slice 1 is the right channel's first 20
samples, slice 2 is left again, and so on.

Every frame but the last must contain exactly 256 slices per channel.
The last frame may contain between 1 and 256 slices per channel, and
its last slice per channel may cover fewer than 20 samples — the slice
is still written as a full 8 byte word, with the unused residuals
zeroed by packing valid residuals into the high bits.

QOA predicts each sample from the four most recently reconstructed
samples of its channel using a sign-sign least-mean-squares filter; the
prediction plus the dequantized residual, clamped to int16, is the
output sample.

This package handles whole-stream encode and decode only: no streaming
or partial-decode API, no file I/O, and no channel-label assignment.
Those are host concerns layered on top.
*/
package qoa
