package tui

import "math/bits"

// sparklineChars maps values 0..7 to Unicode block elements ▁▂▃▄▅▆▇█.
var sparklineChars = [8]rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// RenderSparkline converts values (0..100) into a sparkline string using Unicode blocks.
func RenderSparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	runes := make([]rune, len(values))
	for i, v := range values {
		v = min(max(v, 0), 100)
		runes[i] = sparklineChars[min(int(v/100.0*7.0), 7)]
	}
	return string(runes)
}

// GrowthSamples maps each term to its bit length as a percentage of 64 bits,
// averaging consecutive terms into at most width buckets. Terms that wrapped
// modulo 2^64 show up as a drop.
func GrowthSamples(seq []uint64, width int) []float64 {
	if len(seq) == 0 || width <= 0 {
		return nil
	}
	buckets := min(len(seq), width)
	samples := make([]float64, buckets)
	for b := range buckets {
		lo := b * len(seq) / buckets
		hi := (b + 1) * len(seq) / buckets
		var sum float64
		for _, v := range seq[lo:hi] {
			sum += float64(bits.Len64(v))
		}
		samples[b] = sum / float64(hi-lo) / 64 * 100
	}
	return samples
}
