package control

import (
	"math"
	"testing"
)

func TestPDFFCanonical(t *testing.T) {
	// kp=10, kd=1: 10*(1.0-0.8) + 1*(0.0-0.0) + 0.5 = 2.5
	law := NewPDFF(10.0, 1.0)
	out := law.Compute(Inputs{
		RefPos:      1.0,
		RefVel:      0.0,
		FeedForward: 0.5,
		MeasPos:     0.8,
		MeasVel:     0.0,
	}, 0.0)

	if math.Abs(out-2.5) > 1e-12 {
		t.Errorf("expected 2.5, got %f", out)
	}
}

func TestPDFFStateless(t *testing.T) {
	law := NewPDFF(3.0, 0.7)
	in := Inputs{RefPos: 0.4, RefVel: -0.1, FeedForward: 1.0, MeasPos: 0.2, MeasVel: 0.3}

	a := law.Compute(in, 0.0)
	b := law.Compute(in, 0.1)
	if a != b {
		t.Errorf("stateless law diverged: %f vs %f", a, b)
	}
}

func TestPDFFZeroGainsPassThroughFeedForward(t *testing.T) {
	law := NewPDFF(0, 0)
	out := law.Compute(Inputs{RefPos: 5, MeasPos: -5, FeedForward: 0.25}, 0.0)
	if out != 0.25 {
		t.Errorf("unconfigured gains should output only feed-forward, got %f", out)
	}
}

func TestPIDFFIntegralAccumulates(t *testing.T) {
	law := NewPIDFF(0, 1.0, 0, 0)
	in := Inputs{RefPos: 1.0, MeasPos: 0.0}

	law.Compute(in, 0.0)
	out1 := law.Compute(in, 0.1)
	out2 := law.Compute(in, 0.2)

	if out2 <= out1 {
		t.Errorf("integral should accumulate on persistent error: %f then %f", out1, out2)
	}
}

func TestPIDFFReset(t *testing.T) {
	law := NewPIDFF(2.0, 1.0, 0.5, 0.01)
	in := Inputs{RefPos: 1.0, MeasPos: 0.0}

	first := law.Compute(in, 0.0)
	law.Compute(in, 0.1)
	law.Compute(in, 0.2)

	law.Reset()
	again := law.Compute(in, 0.0)
	if again != first {
		t.Errorf("reset should restore first-tick behavior: %f vs %f", again, first)
	}
}

func TestPIDFFFilteredDerivativeBounded(t *testing.T) {
	// step change in error with a filter: the filtered derivative must
	// stay below the raw difference quotient
	law := NewPIDFF(0, 0, 1.0, 0.1)
	law.Compute(Inputs{RefPos: 0, MeasPos: 0}, 0.0)
	out := law.Compute(Inputs{RefPos: 1.0, MeasPos: 0}, 0.01)

	raw := 1.0 / 0.01
	if out >= raw {
		t.Errorf("filtered derivative %f should be below raw %f", out, raw)
	}
}

func TestSpringDamper(t *testing.T) {
	law := NewSpringDamper(100.0, 10.0, 0.5)
	out := law.Compute(Inputs{MeasPos: 0.7, MeasVel: 0.2}, 0.0)

	want := -100.0*(0.7-0.5) - 10.0*0.2
	if math.Abs(out-want) > 1e-12 {
		t.Errorf("expected %f, got %f", want, out)
	}
}

func TestSpringDamperIgnoresReferences(t *testing.T) {
	law := NewSpringDamper(50.0, 5.0, 0)
	a := law.Compute(Inputs{MeasPos: 0.1, MeasVel: 0.0, RefPos: 0}, 0.0)
	b := law.Compute(Inputs{MeasPos: 0.1, MeasVel: 0.0, RefPos: 99}, 0.0)
	if a != b {
		t.Error("spring law must ignore reference inputs")
	}
}

func TestRegistryDefaultsToPDFF(t *testing.T) {
	r := NewRegistry()
	law, err := r.Make(Attrs{"kp": "10", "kd": "1"})
	if err != nil {
		t.Fatalf("make failed: %v", err)
	}
	if _, ok := law.(*PDFF); !ok {
		t.Errorf("expected *PDFF, got %T", law)
	}
}

func TestRegistryUnknownLaw(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Make(Attrs{"law": "bangbang"}); err == nil {
		t.Error("expected error for unknown law")
	}
}

func TestAttrsFloat(t *testing.T) {
	a := Attrs{"kp": "2.5", "bad": "xyz"}

	tests := []struct {
		key  string
		def  float64
		want float64
	}{
		{"kp", 0, 2.5},
		{"missing", 7.0, 7.0},
		{"bad", 1.0, 1.0},
	}
	for _, tt := range tests {
		if got := a.Float(tt.key, tt.def); got != tt.want {
			t.Errorf("Float(%q, %f) = %f, want %f", tt.key, tt.def, got, tt.want)
		}
	}
}
