package transcript

import (
	"fmt"
	"math"
)

// SRTTimestamp renders seconds as HH:MM:SS,mmm (SubRip uses a comma).
func SRTTimestamp(seconds float64) string {
	return clockStamp(seconds, ',')
}

// VTTTimestamp renders seconds as HH:MM:SS.mmm (WebVTT uses a dot).
func VTTTimestamp(seconds float64) string {
	return clockStamp(seconds, '.')
}

func clockStamp(seconds float64, sep byte) string {
	whole := uint64(math.Floor(seconds))
	hours := whole / 3600
	minutes := (whole % 3600) / 60
	secs := whole % 60

	// Round the fractional part; clamp so rounding overflow never spills
	// into a 60th second.
	millis := uint64(math.Round((seconds - math.Floor(seconds)) * 1000))
	if millis > 999 {
		millis = 999
	}

	return fmt.Sprintf("%02d:%02d:%02d%c%03d", hours, minutes, secs, sep, millis)
}
