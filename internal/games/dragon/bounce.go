package dragon

import "math"

// BounceOffset returns how many pixels a sprite is lifted at the given bounce
// phase. A larger rate is a slower hop, a larger height a higher one.
func BounceOffset(phase, rate, height int) int {
	if rate <= 0 {
		return 0
	}
	return int(math.Round(math.Sin(math.Pi*float64(phase)/float64(rate)) * float64(height)))
}

// advanceBounce moves a bounce phase forward one frame, wrapping to 0 once it
// passes rate.
func advanceBounce(phase, rate int) int {
	phase++
	if phase > rate {
		return 0
	}
	return phase
}
