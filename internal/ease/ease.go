package ease

import "math"

// Kind selects an easing curve. The values 0-18 are wire-compatible with
// the chart file's easeType byte, so do not reorder them.
type Kind uint8

const (
	Linear Kind = iota
	InQuad
	OutQuad
	InOutQuad
	InCubic
	OutCubic
	InOutCubic
	InQuart
	OutQuart
	InOutQuart
	InQuint
	OutQuint
	InOutQuint
	Zero
	One
	InCirc
	OutCirc
	OutSine
	InSine

	// Everything past here is not part of the chart byte set.
	InOutSine
	InOutCirc
	InExpo
	OutExpo
	InOutExpo
	InBack
	OutBack
	InOutBack
	InElastic
	OutElastic
	InOutElastic
	InBounce
	OutBounce
	InOutBounce

	kindCount
)

const (
	backC1 = 1.70158
	backC2 = backC1 * 1.525
	backC3 = backC1 + 1

	elasticC4 = 2 * math.Pi / 3
	elasticC5 = 2 * math.Pi / 4.5
)

var funcs = [kindCount]func(float64) float64{
	Linear:     func(x float64) float64 { return x },
	InQuad:     func(x float64) float64 { return x * x },
	OutQuad:    func(x float64) float64 { return 1 - (1-x)*(1-x) },
	InOutQuad:  inOut(2, func(x float64) float64 { return 2 * x * x }),
	InCubic:    func(x float64) float64 { return x * x * x },
	OutCubic:   func(x float64) float64 { return 1 - pow(1-x, 3) },
	InOutCubic: inOut(3, func(x float64) float64 { return 4 * x * x * x }),
	InQuart:    func(x float64) float64 { return x * x * x * x },
	OutQuart:   func(x float64) float64 { return 1 - pow(1-x, 4) },
	InOutQuart: inOut(4, func(x float64) float64 { return 8 * x * x * x * x }),
	InQuint:    func(x float64) float64 { return x * x * x * x * x },
	OutQuint:   func(x float64) float64 { return 1 - pow(1-x, 5) },
	InOutQuint: inOut(5, func(x float64) float64 { return 16 * x * x * x * x * x }),
	Zero:       func(float64) float64 { return 0 },
	One:        func(float64) float64 { return 1 },
	InCirc:     func(x float64) float64 { return 1 - math.Sqrt(1-x*x) },
	OutCirc:    func(x float64) float64 { return math.Sqrt(1 - pow(x-1, 2)) },
	OutSine:    func(x float64) float64 { return math.Sin(x * math.Pi / 2) },
	InSine:     func(x float64) float64 { return 1 - math.Cos(x*math.Pi/2) },
	InOutSine:  func(x float64) float64 { return -(math.Cos(math.Pi*x) - 1) / 2 },
	InOutCirc: func(x float64) float64 {
		if x < 0.5 {
			return (1 - math.Sqrt(1-pow(2*x, 2))) / 2
		}
		return (math.Sqrt(1-pow(-2*x+2, 2)) + 1) / 2
	},
	InExpo: func(x float64) float64 {
		if x == 0 {
			return 0
		}
		return math.Pow(2, 10*x-10)
	},
	OutExpo: func(x float64) float64 {
		if x == 1 {
			return 1
		}
		return 1 - math.Pow(2, -10*x)
	},
	InOutExpo: func(x float64) float64 {
		switch {
		case x == 0:
			return 0
		case x == 1:
			return 1
		case x < 0.5:
			return math.Pow(2, 20*x-10) / 2
		}
		return (2 - math.Pow(2, -20*x+10)) / 2
	},
	InBack: func(x float64) float64 {
		return backC3*x*x*x - backC1*x*x
	},
	OutBack: func(x float64) float64 {
		return 1 + backC3*pow(x-1, 3) + backC1*pow(x-1, 2)
	},
	InOutBack: func(x float64) float64 {
		if x < 0.5 {
			return (pow(2*x, 2) * ((backC2+1)*2*x - backC2)) / 2
		}
		return (pow(2*x-2, 2)*((backC2+1)*(x*2-2)+backC2) + 2) / 2
	},
	InElastic: func(x float64) float64 {
		switch x {
		case 0:
			return 0
		case 1:
			return 1
		}
		return -math.Pow(2, 10*x-10) * math.Sin((x*10-10.75)*elasticC4)
	},
	OutElastic: func(x float64) float64 {
		switch x {
		case 0:
			return 0
		case 1:
			return 1
		}
		return math.Pow(2, -10*x)*math.Sin((x*10-0.75)*elasticC4) + 1
	},
	InOutElastic: func(x float64) float64 {
		switch {
		case x == 0:
			return 0
		case x == 1:
			return 1
		case x < 0.5:
			return -math.Pow(2, 20*x-10) * math.Sin((20*x-11.125)*elasticC5) / 2
		}
		return math.Pow(2, -20*x+10)*math.Sin((20*x-11.125)*elasticC5)/2 + 1
	},
	InBounce: func(x float64) float64 {
		return 1 - outBounce(1-x)
	},
	OutBounce: outBounce,
	InOutBounce: func(x float64) float64 {
		if x < 0.5 {
			return (1 - outBounce(1-2*x)) / 2
		}
		return (1 + outBounce(2*x-1)) / 2
	},
}

func pow(x float64, n int) float64 {
	v := x
	for i := 1; i < n; i++ {
		v *= x
	}
	return v
}

// inOut builds the in-out variant from the power and the first half curve.
func inOut(n int, in func(float64) float64) func(float64) float64 {
	return func(x float64) float64 {
		if x < 0.5 {
			return in(x)
		}
		return 1 - pow(-2*x+2, n)/2
	}
}

func outBounce(x float64) float64 {
	const n1, d1 = 7.5625, 2.75
	switch {
	case x < 1/d1:
		return n1 * x * x
	case x < 2/d1:
		x -= 1.5 / d1
		return n1*x*x + 0.75
	case x < 2.5/d1:
		x -= 2.25 / d1
		return n1*x*x + 0.9375
	}
	x -= 2.625 / d1
	return n1*x*x + 0.984375
}

// Func returns the curve for kind, or linear when the kind is unknown.
func Func(kind Kind) func(float64) float64 {
	if kind >= kindCount {
		return funcs[Linear]
	}
	return funcs[kind]
}

// Apply clamps t to [0, 1] and runs it through the curve for kind.
func Apply(kind Kind, t float64) float64 {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return Func(kind)(t)
}

// Lerp interpolates between start and end by t.
func Lerp(start, end, t float64) float64 {
	return start + (end-start)*t
}

var names = map[string]Kind{
	"linear":       Linear,
	"inquad":       InQuad,
	"outquad":      OutQuad,
	"inoutquad":    InOutQuad,
	"incubic":      InCubic,
	"outcubic":     OutCubic,
	"inoutcubic":   InOutCubic,
	"inquart":      InQuart,
	"outquart":     OutQuart,
	"inoutquart":   InOutQuart,
	"inquint":      InQuint,
	"outquint":     OutQuint,
	"inoutquint":   InOutQuint,
	"zero":         Zero,
	"one":          One,
	"incirc":       InCirc,
	"outcirc":      OutCirc,
	"outsine":      OutSine,
	"insine":       InSine,
	"inoutsine":    InOutSine,
	"inoutcirc":    InOutCirc,
	"inexpo":       InExpo,
	"outexpo":      OutExpo,
	"inoutexpo":    InOutExpo,
	"inback":       InBack,
	"outback":      OutBack,
	"inoutback":    InOutBack,
	"inelastic":    InElastic,
	"outelastic":   OutElastic,
	"inoutelastic": InOutElastic,
	"inbounce":     InBounce,
	"outbounce":    OutBounce,
	"inoutbounce":  InOutBounce,
}

// KindByName resolves a flag value like "outcubic" to its Kind.
func KindByName(name string) (Kind, bool) {
	k, ok := names[name]
	return k, ok
}

func (k Kind) String() string {
	for name, kind := range names {
		if kind == k {
			return name
		}
	}
	return "linear"
}
