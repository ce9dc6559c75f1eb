package ease

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Zero and One are constant holds; every other variant must pass
// through (0,0) and (1,1) exactly, overshoot or not.
func TestEndpoints(t *testing.T) {
	for kind := Kind(0); kind < kindCount; kind++ {
		if kind == Zero || kind == One {
			continue
		}
		if got := Apply(kind, 0); math.Abs(got) > 1e-9 {
			t.Log(kind, "at 0 returned", got)
			t.Fail()
		}
		if got := Apply(kind, 1); math.Abs(got-1) > 1e-9 {
			t.Log(kind, "at 1 returned", got)
			t.Fail()
		}
	}
}

func TestConstantKinds(t *testing.T) {
	for _, x := range []float64{0, 0.25, 1} {
		if got := Apply(Zero, x); got != 0 {
			t.Log("zero at", x, "returned", got)
			t.Fail()
		}
		if got := Apply(One, x); got != 1 {
			t.Log("one at", x, "returned", got)
			t.Fail()
		}
	}
}

func TestKnownValues(t *testing.T) {
	tests := []struct {
		kind Kind
		x    float64
		want float64
	}{
		{Linear, 0.5, 0.5},
		{InQuad, 0.5, 0.25},
		{OutQuad, 0.5, 0.75},
		{InOutQuad, 0.25, 0.125},
		{InOutQuad, 0.75, 0.875},
		{InCubic, 0.5, 0.125},
		{InQuart, 0.5, 0.0625},
		{InQuint, 0.5, 0.03125},
		{InOutCubic, 0.5, 0.5},
		{InOutQuint, 0.5, 0.5},
		{OutSine, 0.5, math.Sqrt2 / 2},
		{InSine, 0.5, 1 - math.Sqrt2/2},
		{InOutSine, 0.5, 0.5},
		{InCirc, 0.5, 1 - math.Sqrt(0.75)},
		{InExpo, 0.5, math.Pow(2, -5)},
		{OutExpo, 0.5, 1 - math.Pow(2, -5)},
	}
	for _, test := range tests {
		got := Apply(test.kind, test.x)
		if math.Abs(got-test.want) > 1e-9 {
			t.Log("kind    ", test.kind)
			t.Log("x       ", test.x)
			t.Log("got     ", got)
			t.Log("expected", test.want)
			t.Fail()
		}
	}
}

// Out of range inputs are the caller's problem; Apply clamps.
func TestApplyClamps(t *testing.T) {
	if got := Apply(Linear, -3); got != 0 {
		t.Log("below range returned", got)
		t.Fail()
	}
	if got := Apply(Linear, 2); got != 1 {
		t.Log("above range returned", got)
		t.Fail()
	}
}

func TestFuncUnknownKind(t *testing.T) {
	f := Func(Kind(200))
	if got := f(0.3); got != 0.3 {
		t.Log("unknown kind did not fall back to linear, got", got)
		t.Fail()
	}
}

func TestKindByName(t *testing.T) {
	for name, want := range names {
		got, ok := KindByName(name)
		if !ok || got != want {
			t.Log(name, "->", got, ok)
			t.Fail()
		}
	}
	if _, ok := KindByName("wobble"); ok {
		t.Log("unknown name resolved")
		t.Fail()
	}
	if InOutBounce.String() != "inoutbounce" {
		t.Log("String returned", InOutBounce.String())
		t.Fail()
	}
}

func TestProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("in variants lag and out variants lead linear", prop.ForAll(
		func(x float64) bool {
			for _, in := range []Kind{InQuad, InCubic, InQuart, InQuint, InSine, InCirc} {
				if Apply(in, x) > x+1e-9 {
					return false
				}
			}
			for _, out := range []Kind{OutQuad, OutCubic, OutQuart, OutQuint, OutSine, OutCirc} {
				if Apply(out, x) < x-1e-9 {
					return false
				}
			}
			return true
		},
		gen.Float64Range(0, 1),
	))

	properties.Property("bounded variants stay within [0,1]", prop.ForAll(
		func(x float64) bool {
			for kind := Linear; kind <= InSine; kind++ {
				v := Apply(kind, x)
				if v < -1e-9 || v > 1+1e-9 {
					return false
				}
			}
			return true
		},
		gen.Float64Range(0, 1),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
