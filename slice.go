package qoa

// encodeSlice brute-force searches all 16 scalefactors for the one
// that best encodes the up-to-20 samples in sample, starting from
// lmsIn's predictor state. It returns the packed 64 bit slice word
// (already left-shifted so that, if len(sample) < QOASliceLen, valid
// residuals occupy the high bits and the unused low bits are zero),
// the squared error of the winning candidate, and the predictor state
// the winning candidate leaves behind — which becomes the channel's
// new persistent state.
//
// The search tries scalefactors in ascending order 0..15 and keeps a
// candidate only on strict improvement (err < bestErr), so the lowest
// index wins ties. Each candidate's inner loop aborts as soon as its
// running error exceeds the current best — a required optimization,
// but one that must compare with strict '>' to match every other
// implementation's tie-break behavior bit for bit.
func encodeSlice(sample []int16, lmsIn LmsState) (packed uint64, bestErr uint64, bestLms LmsState, bestScalefactor int) {
	sliceLen := len(sample)
	bestErr = ^uint64(0)
	var bestPacked uint64

	for sf := 0; sf < 16; sf++ {
		lms := lmsIn
		slice := uint64(sf)
		var err uint64
		ok := true

		for _, s := range sample {
			predicted := lms.predict()
			sampleVal := int(s)
			residual := sampleVal - predicted
			scaled := div(residual, sf)
			clamped := clamp(scaled, -8, 8)
			q := quantTable[clamped+8]
			dq := dequantTable[sf][q]
			reconstructed := clampS16(predicted + int(dq))

			e := int64(sampleVal) - int64(reconstructed)
			err += uint64(e * e)
			if err > bestErr {
				ok = false
				break
			}

			lms.update(reconstructed, dq)
			slice = (slice << 3) | uint64(q)
		}

		if ok && err < bestErr {
			bestErr = err
			bestPacked = slice
			bestLms = lms
			bestScalefactor = sf
		}
	}
	if sliceLen < QOASliceLen {
		bestPacked <<= uint((QOASliceLen - sliceLen) * 3)
	}
	return bestPacked, bestErr, bestLms, bestScalefactor
}

// decodeSlice reconstructs up to QOASliceLen samples of one channel
// from a packed slice word, advancing lms in place and writing
// reconstructed samples into out (len(out) <= QOASliceLen samples are
// produced; the slice's remaining 3 bit codes, present for
// interoperability when out is shorter, are ignored and not
// validated).
func decodeSlice(word uint64, lms *LmsState, out []int16) {
	scalefactor := (word >> 60) & 0xf

	for i := range out {
		q := int((word >> 57) & 0x7)
		word <<= 3

		predicted := lms.predict()
		dq := dequantTable[scalefactor][q]
		reconstructed := clampS16(predicted + int(dq))

		out[i] = reconstructed
		lms.update(reconstructed, dq)
	}
}
