package nba

import (
	"math"
	"slices"
	"strconv"

	"github.com/louisbranch/chartlab/internal/numeric"
)

const labelPrecision = 3

// Bins are right-closed quantile intervals (e_i, e_i+1]; the lowest value is
// included in the first bin.
type Bins struct {
	Edges  []float64
	Labels []string
}

// QCut splits values into q quantile bins. Edges come from linear quantile
// interpolation, duplicate edges are dropped. Labels print the edges rounded
// to the shortest precision (3 decimals minimum) that keeps them distinct,
// with the rounded first left edge lowered by one unit of that precision.
func QCut(values []float64, q int) Bins {
	finite := numeric.Finite(values)
	if len(finite) == 0 || q < 1 {
		return Bins{}
	}
	slices.Sort(finite)

	var edges []float64
	for i := 0; i <= q; i++ {
		e := numeric.Quantile(finite, float64(i)/float64(q))
		if len(edges) == 0 || e != edges[len(edges)-1] {
			edges = append(edges, e)
		}
	}
	if len(edges) == 1 {
		// All values equal: one degenerate bin.
		edges = append(edges, edges[0])
	}

	precision := inferPrecision(labelPrecision, edges)
	rounded := make([]float64, len(edges))
	for i, e := range edges {
		rounded[i] = roundFrac(e, precision)
	}
	rounded[0] = trimNoise(rounded[0] - math.Pow(10, -float64(precision)))

	labels := make([]string, len(edges)-1)
	for i := range labels {
		labels[i] = "(" + pyFloat(rounded[i]) + ", " + pyFloat(rounded[i+1]) + "]"
	}
	return Bins{Edges: edges, Labels: labels}
}

// Assign returns the bin index of v, or -1 for NaN and out-of-range values.
func (b Bins) Assign(v float64) int {
	n := len(b.Edges) - 1
	if n < 1 || math.IsNaN(v) || v < b.Edges[0] || v > b.Edges[n] {
		return -1
	}
	if v == b.Edges[0] {
		return 0
	}
	// First edge >= v closes the bin on the right.
	i, _ := slices.BinarySearch(b.Edges, v)
	return min(max(i-1, 0), n-1)
}

// Len is the number of bins.
func (b Bins) Len() int {
	return len(b.Labels)
}

func roundFrac(x float64, precision int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) || x == 0 {
		return x
	}
	whole, frac := math.Modf(x)
	digits := precision
	if whole == 0 {
		digits = -int(math.Floor(math.Log10(math.Abs(frac)))) - 1 + precision
	}
	scale := math.Pow(10, float64(digits))
	return math.RoundToEven(x*scale) / scale
}

// trimNoise drops the binary float error left by the edge subtraction.
func trimNoise(x float64) float64 {
	v, err := strconv.ParseFloat(strconv.FormatFloat(x, 'g', 12, 64), 64)
	if err != nil {
		return x
	}
	return v
}

func inferPrecision(base int, edges []float64) int {
	for precision := base; precision < 20; precision++ {
		seen := make(map[float64]bool, len(edges))
		for _, e := range edges {
			seen[roundFrac(e, precision)] = true
		}
		if len(seen) == len(edges) {
			return precision
		}
	}
	return base
}

// pyFloat formats like Python's float repr: shortest round-trip digits with
// a trailing ".0" for integral values.
func pyFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if v == math.Trunc(v) && !math.IsInf(v, 0) {
		s += ".0"
	}
	return s
}
