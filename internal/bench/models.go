package bench

import "math"

// GrowthModel is a candidate time complexity class.
type GrowthModel int

const (
	Undetermined GrowthModel = iota
	Constant
	Logarithmic
	Linear
	Linearithmic
	Quadratic
	Cubic
	Polynomial
	Exponential
)

// UndeterminedLabel is reported when no model could be fitted.
const UndeterminedLabel = "Unable to determine"

var modelNames = map[GrowthModel]string{
	Undetermined: UndeterminedLabel,
	Constant:     "constant",
	Logarithmic:  "logarithmic",
	Linear:       "linear",
	Linearithmic: "linearithmic",
	Quadratic:    "quadratic",
	Cubic:        "cubic",
	Polynomial:   "polynomial",
	Exponential:  "exponential",
}

var modelNotations = map[GrowthModel]string{
	Constant:     "O(1)",
	Logarithmic:  "O(log n)",
	Linear:       "O(n)",
	Linearithmic: "O(n log n)",
	Quadratic:    "O(n^2)",
	Cubic:        "O(n^3)",
	Polynomial:   "O(n^k)",
	Exponential:  "O(c^n)",
}

func (m GrowthModel) String() string {
	if name, ok := modelNames[m]; ok {
		return name
	}

	return UndeterminedLabel
}

// Notation returns the big-O form, or an empty string when undetermined.
func (m GrowthModel) Notation() string {
	return modelNotations[m]
}

func (m GrowthModel) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// fitter fits one model to observations and returns predicted timings,
// or false when the model cannot be applied to the data.
type fitter struct {
	model GrowthModel
	fit   func(xs, ys []float64) ([]float64, bool)
}

// catalogue lists growth models in order of preference. Ties go to the
// earlier entry. Constant time is the fallback when none of them explains
// the timings.
var catalogue = []fitter{
	{Logarithmic, linearIn(math.Log)},
	{Linear, linearIn(func(n float64) float64 { return n })},
	{Linearithmic, linearIn(func(n float64) float64 { return n * math.Log(n) })},
	{Quadratic, linearIn(func(n float64) float64 { return n * n })},
	{Cubic, linearIn(func(n float64) float64 { return n * n * n })},
	{Polynomial, fitPowerLaw},
	{Exponential, fitExponential},
}

// linearIn fits t = a + b*g(n) by ordinary least squares.
func linearIn(g func(float64) float64) func(xs, ys []float64) ([]float64, bool) {
	return func(xs, ys []float64) ([]float64, bool) {
		gx := make([]float64, len(xs))
		for i, x := range xs {
			gx[i] = g(x)
		}

		a, b, ok := leastSquares(gx, ys)
		if !ok {
			return nil, false
		}

		pred := make([]float64, len(xs))
		for i := range gx {
			pred[i] = a + b*gx[i]
		}

		return pred, true
	}
}

// fitPowerLaw fits t = a*n^k as log t = log a + k*log n.
func fitPowerLaw(xs, ys []float64) ([]float64, bool) {
	lx := make([]float64, len(xs))
	for i, x := range xs {
		lx[i] = math.Log(x)
	}

	ly, ok := logAll(ys)
	if !ok {
		return nil, false
	}

	la, k, ok := leastSquares(lx, ly)
	if !ok {
		return nil, false
	}

	pred := make([]float64, len(xs))
	for i, x := range xs {
		pred[i] = math.Exp(la) * math.Pow(x, k)
	}

	return pred, finite(pred)
}

// fitExponential fits t = a*e^(k*n) as log t = log a + k*n.
func fitExponential(xs, ys []float64) ([]float64, bool) {
	ly, ok := logAll(ys)
	if !ok {
		return nil, false
	}

	la, k, ok := leastSquares(xs, ly)
	if !ok {
		return nil, false
	}

	pred := make([]float64, len(xs))
	for i, x := range xs {
		pred[i] = math.Exp(la + k*x)
	}

	return pred, finite(pred)
}

// leastSquares returns intercept and slope of the OLS line through
// (xs, ys). It fails when xs has no spread.
func leastSquares(xs, ys []float64) (float64, float64, bool) {
	mx, my := meanOf(xs), meanOf(ys)

	var sxx, sxy float64
	for i := range xs {
		dx := xs[i] - mx
		sxx += dx * dx
		sxy += dx * (ys[i] - my)
	}

	if sxx == 0 || math.IsNaN(sxx) || math.IsInf(sxx, 0) {
		return 0, 0, false
	}

	slope := sxy / sxx

	return my - slope*mx, slope, true
}

func logAll(vs []float64) ([]float64, bool) {
	out := make([]float64, len(vs))
	for i, v := range vs {
		if v <= 0 {
			return nil, false
		}
		out[i] = math.Log(v)
	}

	return out, true
}

func sse(ys, pred []float64) float64 {
	var s float64
	for i := range ys {
		d := ys[i] - pred[i]
		s += d * d
	}

	return s
}

func meanOf(vs []float64) float64 {
	if len(vs) == 0 {
		return 0
	}

	var sum float64
	for _, v := range vs {
		sum += v
	}

	return sum / float64(len(vs))
}

func finite(vs []float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
