package animations

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tanema/gween/ease"
)

var ErrUnknownEase = errors.New("unknown ease")

var easings = map[string]ease.TweenFunc{
	"linear": ease.Linear,

	"in-quad":     ease.InQuad,
	"out-quad":    ease.OutQuad,
	"in-out-quad": ease.InOutQuad,

	"in-cubic":     ease.InCubic,
	"out-cubic":    ease.OutCubic,
	"in-out-cubic": ease.InOutCubic,

	"in-sine":     ease.InSine,
	"out-sine":    ease.OutSine,
	"in-out-sine": ease.InOutSine,

	"in-expo":     ease.InExpo,
	"out-expo":    ease.OutExpo,
	"in-out-expo": ease.InOutExpo,

	"in-back":     ease.InBack,
	"out-back":    ease.OutBack,
	"in-out-back": ease.InOutBack,

	"in-bounce":     ease.InBounce,
	"out-bounce":    ease.OutBounce,
	"in-out-bounce": ease.InOutBounce,

	"in-elastic":     ease.InElastic,
	"out-elastic":    ease.OutElastic,
	"in-out-elastic": ease.InOutElastic,

	"smooth-step": SmoothStep,
}

// SmoothStep is the cubic Hermite 3p²-2p³ in gween's signature.
func SmoothStep(t, b, c, d float32) float32 {
	p := t / d
	return b + c*p*p*(3-2*p)
}

// Steps jumps through n even levels, reaching the end value only at t == d.
func Steps(n int) ease.TweenFunc {
	return func(t, b, c, d float32) float32 {
		p := float32(math.Floor(float64(t/d*float32(n)))) / float32(n)
		return b + c*p
	}
}

// LookupEase resolves an authored ease name. The empty name is linear and
// "steps(n)" builds a stepped ease.
func LookupEase(name string) (ease.TweenFunc, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return ease.Linear, nil
	}
	if fn, ok := easings[name]; ok {
		return fn, nil
	}
	if inner, ok := strings.CutPrefix(name, "steps("); ok {
		n, err := strconv.Atoi(strings.TrimSuffix(inner, ")"))
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("%w: %q", ErrUnknownEase, name)
		}
		return Steps(n), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownEase, name)
}

// MustLookupEase is LookupEase for configured names; it panics on an unknown
// name.
func MustLookupEase(name string) ease.TweenFunc {
	fn, err := LookupEase(name)
	if err != nil {
		panic(err.Error())
	}
	return fn
}
