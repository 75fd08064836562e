package mathutil

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func vecAlmostEqual(a, b Vec3) bool {
	return almostEqual(a[0], b[0]) && almostEqual(a[1], b[1]) && almostEqual(a[2], b[2])
}

func TestVec3_Arithmetic(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, -5, 6}

	tests := []struct {
		name string
		got  Vec3
		want Vec3
	}{
		{"add", a.Add(b), Vec3{5, -3, 9}},
		{"sub", a.Sub(b), Vec3{-3, 7, -3}},
		{"scale", a.Scale(2), Vec3{2, 4, 6}},
		{"div", a.Div(2), Vec3{0.5, 1, 1.5}},
		{"mul", a.Mul(b), Vec3{4, -10, 18}},
		{"neg", a.Neg(), Vec3{-1, -2, -3}},
		{"cross", Vec3{1, 0, 0}.Cross(Vec3{0, 1, 0}), Vec3{0, 0, 1}},
		{"lerp half", Lerp(Vec3{0, 0, 0}, Vec3{2, 4, 6}, 0.5), Vec3{1, 2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !vecAlmostEqual(tt.got, tt.want) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}

	if d := a.Dot(b); !almostEqual(d, 12) {
		t.Errorf("Dot = %f, want 12", d)
	}
	if l := (Vec3{3, 4, 0}).Len(); !almostEqual(l, 5) {
		t.Errorf("Len = %f, want 5", l)
	}
}

func TestVec3_UnitRejectsZeroLength(t *testing.T) {
	if _, err := (Vec3{}).Unit(); !errors.Is(err, ErrZeroLength) {
		t.Fatalf("expected ErrZeroLength, got %v", err)
	}
	if n := (Vec3{}).Normalize(); n != (Vec3{}) {
		t.Errorf("Normalize of zero vector should stay zero, got %v", n)
	}

	u, err := Vec3{0, 3, 4}.Unit()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(u.Len(), 1) || !vecAlmostEqual(u, Vec3{0, 0.6, 0.8}) {
		t.Errorf("Unit = %v", u)
	}
}

func TestParallel(t *testing.T) {
	tests := []struct {
		a, b Vec3
		want bool
	}{
		{Vec3{1, 0, 0}, Vec3{0, 1, 0}, false},
		{Vec3{1e-9, 0, 0}, Vec3{0, 1e-9, 0}, false},
		{Vec3{1, 0, 0}, Vec3{-3, 0, 0}, true},
		{Vec3{1, 0, 0}, Vec3{1, 1e-12, 0}, true},
		{Vec3{}, Vec3{0, 1, 0}, true},
	}
	for _, tt := range tests {
		if got := Parallel(tt.a, tt.b); got != tt.want {
			t.Errorf("Parallel(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestVec3_IsFinite(t *testing.T) {
	if !(Vec3{1, 2, 3}).IsFinite() {
		t.Error("finite vector reported as non-finite")
	}
	if (Vec3{math.NaN(), 0, 0}).IsFinite() {
		t.Error("NaN vector reported as finite")
	}
	if (Vec3{0, math.Inf(1), 0}).IsFinite() {
		t.Error("Inf vector reported as finite")
	}
}

func TestReflectAndRefract(t *testing.T) {
	n := Vec3{0, 1, 0}
	r := Reflect(Vec3{1, -1, 0}, n)
	if !vecAlmostEqual(r, Vec3{1, 1, 0}) {
		t.Errorf("Reflect = %v", r)
	}

	// Index ratio 1 means the ray passes straight through.
	in := Vec3{1, -1, 0}.Normalize()
	out := Refract(in, n, 1.0)
	if !vecAlmostEqual(out, in) {
		t.Errorf("Refract with ratio 1 = %v, want %v", out, in)
	}
}

func TestRay_At(t *testing.T) {
	r := NewRay(Vec3{1, 1, 1}, Vec3{0, 0, -2})
	if p := r.At(1.5); !vecAlmostEqual(p, Vec3{1, 1, -2}) {
		t.Errorf("At(1.5) = %v", p)
	}
	if r.Time != 0 {
		t.Errorf("default time = %f, want 0", r.Time)
	}
	if rt := NewRayWithTime(Vec3{}, Vec3{1, 0, 0}, 0.25); rt.Time != 0.25 {
		t.Errorf("time = %f, want 0.25", rt.Time)
	}
}

func TestInterval(t *testing.T) {
	i := NewInterval(0, 1)

	if !i.Contains(0) || !i.Contains(1) {
		t.Error("closed interval should contain its bounds")
	}
	if i.Surrounds(0) || i.Surrounds(1) || !i.Surrounds(0.5) {
		t.Error("Surrounds should exclude the bounds")
	}
	if c := i.Clamp(2); c != 1 {
		t.Errorf("Clamp(2) = %f", c)
	}
	if c := i.Clamp(-1); c != 0 {
		t.Errorf("Clamp(-1) = %f", c)
	}
	if e := i.Expand(1); e.Min != -0.5 || e.Max != 1.5 {
		t.Errorf("Expand = %+v", e)
	}
	if EmptyInterval.Contains(0) {
		t.Error("empty interval contains 0")
	}
	if !UniverseInterval.Surrounds(1e300) {
		t.Error("universe should surround everything finite")
	}
	if s := Span(NewInterval(0, 1), NewInterval(-2, 0.5)); s.Min != -2 || s.Max != 1 {
		t.Errorf("Span = %+v", s)
	}
}

func TestSampleSquare_Range(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 0))
	for i := 0; i < 10000; i++ {
		s := SampleSquare(rng)
		if s[0] < -0.5 || s[0] >= 0.5 || s[1] < -0.5 || s[1] >= 0.5 || s[2] != 0 {
			t.Fatalf("sample %v out of range", s)
		}
	}
}

func TestRandomOnHemisphere(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 0))
	normal := Vec3{0, 0, 1}
	for i := 0; i < 10000; i++ {
		d := RandomOnHemisphere(rng, normal)
		if d.Dot(normal) < 0 {
			t.Fatalf("direction %v below the surface", d)
		}
		if math.Abs(d.Len()-1) > 1e-9 {
			t.Fatalf("direction %v not unit length", d)
		}
	}
}

func TestRandomInUnitDisk(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 0))
	for i := 0; i < 1000; i++ {
		p := RandomInUnitDisk(rng)
		if p.LenSq() >= 1 || p[2] != 0 {
			t.Fatalf("point %v outside unit disk", p)
		}
	}
}

func TestViewRotation(t *testing.T) {
	if m := ViewRotation(0, 0); m != (Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1}) {
		t.Errorf("zero rotation = %v", m)
	}
	// Yaw 90 degrees turns -Z into -X.
	got := ViewRotation(90, 0).MulVec3(Forward)
	if !vecAlmostEqual(got, Vec3{-1, 0, 0}) {
		t.Errorf("yaw 90 forward = %v", got)
	}
	// Pitch 90 degrees turns -Z into +Y.
	got = ViewRotation(0, 90).MulVec3(Forward)
	if !vecAlmostEqual(got, Vec3{0, 1, 0}) {
		t.Errorf("pitch 90 forward = %v", got)
	}

	m := Mat3FromColumns(Vec3{1, 2, 3}, Vec3{4, 5, 6}, Vec3{7, 8, 9})
	if m.Column(1) != (Vec3{4, 5, 6}) {
		t.Errorf("Column(1) = %v", m.Column(1))
	}
	if got := m.MulVec3(Vec3{0, 1, 0}); got != m.Column(1) {
		t.Errorf("M x e1 = %v, want column 1", got)
	}
}
