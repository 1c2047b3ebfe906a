/*
File    : goeval/builtins/builtins_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package builtins

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/goeval/registry"
)

func findFunc(t *testing.T, fns []registry.FuncDef, name string) registry.FuncDef {
	t.Helper()
	for _, f := range fns {
		if f.Name == name {
			return f
		}
	}
	require.Failf(t, "function not found", "name=%s", name)
	return registry.FuncDef{}
}

func TestFunctions_DegreeModeConvertsTrig(t *testing.T) {
	fns := Functions(DegreeMode{UseDegrees: true})
	sin := findFunc(t, fns, "sin")
	assert.InDelta(t, 1.0, sin.Func([]float64{90}), 1e-9)
}

func TestFunctions_RadianModeLeavesInputAlone(t *testing.T) {
	fns := Functions(DegreeMode{UseDegrees: false})
	sin := findFunc(t, fns, "sin")
	assert.InDelta(t, 0.0, sin.Func([]float64{0}), 1e-9)
	assert.InDelta(t, 1.0, sin.Func([]float64{math.Pi / 2}), 1e-9)
}

func TestFunctions_Atan2UsesBothArguments(t *testing.T) {
	// Deliberately corrected relative to the original source, which
	// aliases atan2 to the one-argument atan and drops its second
	// argument; both arguments must influence the result here.
	fns := Functions(DegreeMode{UseDegrees: false})
	atan2 := findFunc(t, fns, "atan2")
	a := atan2.Func([]float64{1, 1})
	b := atan2.Func([]float64{1, 2})
	assert.NotEqual(t, a, b)
}

func TestFunctions_Dist(t *testing.T) {
	fns := Functions(DegreeMode{})
	dist := findFunc(t, fns, "dist")
	assert.Equal(t, 5.0, dist.Func([]float64{0, 0, 3, 4}))
}

func TestFunctions_Slope(t *testing.T) {
	fns := Functions(DegreeMode{})
	slope := findFunc(t, fns, "slope")
	assert.Equal(t, 2.0, slope.Func([]float64{0, 0, 1, 2}))
}

func TestFunctions_AvgAndVar(t *testing.T) {
	fns := Functions(DegreeMode{})
	avg := findFunc(t, fns, "avg")
	v := findFunc(t, fns, "var")

	assert.Equal(t, 2.0, avg.Func([]float64{1, 2, 3}))
	assert.InDelta(t, 2.0/3.0, v.Func([]float64{1, 2, 3}), 1e-12)
}

func TestFunctions_Sigma_CorrectForUnitStep(t *testing.T) {
	fns := Functions(DegreeMode{})
	sigma := findFunc(t, fns, "sigma")
	// sum 1..5 == 15, step defaults to 1
	assert.InDelta(t, 15.0, sigma.Func([]float64{1, 5}), 1e-9)
}

func TestFunctions_FloorCeilAbs(t *testing.T) {
	fns := Functions(DegreeMode{})
	assert.Equal(t, 3.0, findFunc(t, fns, "abs").Func([]float64{-3}))
	assert.Equal(t, 2.0, findFunc(t, fns, "floor").Func([]float64{2.9}))
	assert.Equal(t, 3.0, findFunc(t, fns, "ceil").Func([]float64{2.1}))
}

func TestConstants_PresentAndExact(t *testing.T) {
	byName := map[string]float64{}
	for _, c := range Constants {
		byName[c.Name] = c.Value
	}
	assert.InDelta(t, math.Pi, byName["PI"], 1e-12)
	assert.InDelta(t, math.E, byName["E"], 1e-12)
	assert.InDelta(t, phi, byName["PHI"], 1e-12)
}

func TestFunctions_DeltaQuadraticRoots(t *testing.T) {
	// x^2 - 5x + 6 = 0 -> roots 2 and 3
	fns := Functions(DegreeMode{})
	d1 := findFunc(t, fns, "delta1")
	d2 := findFunc(t, fns, "delta2")
	assert.InDelta(t, 3.0, d1.Func([]float64{1, -5, 6}), 1e-9)
	assert.InDelta(t, 2.0, d2.Func([]float64{1, -5, 6}), 1e-9)
}
