package qoa

// LmsState is one channel's sign-sign LMS predictor: four taps of
// reconstructed-sample history and four weights, most recent last.
// History and Weights are stored as int16 at runtime as well as on the
// wire. predict sums their products in plain int arithmetic; update
// adjusts the weights in int16 arithmetic, so a weight that leaves the
// int16 range wraps immediately rather than at the frame boundary.
type LmsState struct {
	History [QOALMSLen]int16
	Weights [QOALMSLen]int16
}

// predict returns this channel's next predicted sample, computed as
// the dot product of Weights and History in fixed point, scaled back
// down by the >>13 the format's weight magnitudes assume.
func (lms *LmsState) predict() int {
	prediction := 0
	for i := 0; i < QOALMSLen; i++ {
		prediction += int(lms.Weights[i]) * int(lms.History[i])
	}
	return prediction >> 13
}

// update adjusts the predictor after one sample has been reconstructed:
// each weight nudges by the sign of its history entry times
// residual>>4 (sign-sign LMS), then sample joins the history, oldest
// dropped.
func (lms *LmsState) update(sample, residual int16) {
	delta := residual >> 4
	for i := 0; i < QOALMSLen; i++ {
		if lms.History[i] < 0 {
			lms.Weights[i] -= delta
		} else {
			lms.Weights[i] += delta
		}
	}

	for i := 0; i < QOALMSLen-1; i++ {
		lms.History[i] = lms.History[i+1]
	}
	lms.History[QOALMSLen-1] = sample
}
