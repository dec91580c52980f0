// Package numeric provides the small array helpers the demos share: evenly
// spaced grids, trapezoidal integration, histograms and quantiles.
package numeric

import (
	"math"
	"sort"
)

// Linspace returns n evenly spaced values over [start, stop], both included.
func Linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{start}
	}
	out := make([]float64, n)
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = stop
	return out
}

// Trapezoid integrates ys over xs with the trapezoidal rule. Mismatched or
// too short inputs integrate to zero.
func Trapezoid(ys, xs []float64) float64 {
	if len(ys) != len(xs) || len(xs) < 2 {
		return 0
	}
	var sum float64
	for i := 1; i < len(xs); i++ {
		sum += (xs[i] - xs[i-1]) * (ys[i] + ys[i-1]) / 2
	}
	return sum
}

// Norm selects how histogram bins are scaled.
type Norm int

const (
	// NormCount keeps raw counts.
	NormCount Norm = iota
	// NormDensity scales counts to a probability density: count / (N * width).
	NormDensity
)

// Edges returns nbins+1 evenly spaced bin edges over [min, max]. A degenerate
// range is widened by 0.5 on each side.
func Edges(min, max float64, nbins int) []float64 {
	if nbins < 1 {
		nbins = 1
	}
	if max <= min {
		min, max = min-0.5, min+0.5
	}
	return Linspace(min, max, nbins+1)
}

// SturgesBins returns the Sturges bin count for n samples.
func SturgesBins(n int) int {
	if n < 1 {
		return 1
	}
	return int(math.Ceil(math.Log2(float64(n)))) + 1
}

// Histogram bins values into [edges[i], edges[i+1]); the last bin is closed.
// NaN and out-of-range values are ignored.
func Histogram(values, edges []float64, norm Norm) []float64 {
	if len(edges) < 2 {
		return nil
	}
	nbins := len(edges) - 1
	counts := make([]float64, nbins)
	var total int
	for _, v := range values {
		if math.IsNaN(v) || v < edges[0] || v > edges[nbins] {
			continue
		}
		i := sort.Search(len(edges), func(k int) bool { return edges[k] > v }) - 1
		if i >= nbins {
			i = nbins - 1
		}
		counts[i]++
		total++
	}
	if norm == NormDensity && total > 0 {
		for i := range counts {
			width := edges[i+1] - edges[i]
			if width > 0 {
				counts[i] /= float64(total) * width
			}
		}
	}
	return counts
}

// Quantile returns the q-quantile of sorted with linear interpolation between
// closest ranks.
func Quantile(sorted []float64, q float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[n-1]
	}
	pos := q * float64(n-1)
	lo := int(math.Floor(pos))
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

// Finite returns the non-NaN, non-infinite values of xs in a new slice.
func Finite(xs []float64) []float64 {
	out := make([]float64, 0, len(xs))
	for _, x := range xs {
		if !math.IsNaN(x) && !math.IsInf(x, 0) {
			out = append(out, x)
		}
	}
	return out
}

// Bounds returns the minimum and maximum finite values of xs. ok is false
// when xs holds no finite value.
func Bounds(xs []float64) (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			continue
		}
		lo = math.Min(lo, x)
		hi = math.Max(hi, x)
		ok = true
	}
	return lo, hi, ok
}

// Mean returns the mean of the finite values of xs and their count.
func Mean(xs []float64) (float64, int) {
	var sum float64
	var n int
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			continue
		}
		sum += x
		n++
	}
	if n == 0 {
		return math.NaN(), 0
	}
	return sum / float64(n), n
}
