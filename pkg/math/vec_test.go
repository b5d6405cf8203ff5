package math

import (
	"math"
	"testing"
)

func TestVec2Add(t *testing.T) {
	got := Vec2{1, 2}.Add(Vec2{3, 4})
	want := Vec2{4, 6}
	if got != want {
		t.Errorf("Vec2.Add() = %v, want %v", got, want)
	}
}

func TestVec2Lerp(t *testing.T) {
	got := Vec2{0, 1}.Lerp(Vec2{1, 0}, 0.5)
	want := Vec2{0.5, 0.5}
	if got != want {
		t.Errorf("Vec2.Lerp() = %v, want %v", got, want)
	}
}

func TestVec2Length(t *testing.T) {
	if got := (Vec2{3, 4}).Length(); got != 5 {
		t.Errorf("Vec2.Length() = %v, want 5", got)
	}
}

func TestVec3Cross(t *testing.T) {
	got := Vec3{1, 0, 0}.Cross(Vec3{0, 1, 0})
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	n := Vec3{3, 4, 12}.Normalize()
	if l := n.Length(); l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}
	if z := (Vec3{}).Normalize(); z != (Vec3{}) {
		t.Errorf("Vec3{}.Normalize() = %v, want zero", z)
	}
}

func TestVec3MustNormalizePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustNormalize of zero vector should panic")
		}
	}()
	Vec3{}.MustNormalize()
}

func TestMidpointProjectsToArcCenter(t *testing.T) {
	a := Vec3{1, 0, 0}
	b := Vec3{0, 1, 0}
	m := Midpoint(a, b).MustNormalize()
	want := float32(math.Sqrt2 / 2)
	if abs(m.X-want) > 1e-6 || abs(m.Y-want) > 1e-6 || m.Z != 0 {
		t.Errorf("normalized midpoint = %v, want (%v, %v, 0)", m, want, want)
	}
}

func TestNormalizeRange(t *testing.T) {
	tests := []struct {
		value, min, max, want float64
	}{
		{5, 0, 10, 0.5},
		{-3, -3, 3, 0},
		{3, -3, 3, 1},
	}
	for _, tt := range tests {
		if got := NormalizeRange(tt.value, tt.min, tt.max); got != tt.want {
			t.Errorf("NormalizeRange(%v, %v, %v) = %v, want %v", tt.value, tt.min, tt.max, got, tt.want)
		}
	}
}

func TestPolar(t *testing.T) {
	if got := Polar(2, 0); got != (Vec3{0, 0, 2}) {
		t.Errorf("Polar(2, 0) = %v, want (0, 0, 2)", got)
	}
	got := Polar(1, math.Pi/2)
	if abs(got.X-1) > 1e-6 || abs(got.Z) > 1e-6 {
		t.Errorf("Polar(1, pi/2) = %v, want (1, 0, 0)", got)
	}
}

func TestWrapPhase(t *testing.T) {
	if got := WrapPhase(1); got != 1 {
		t.Errorf("WrapPhase(1) = %v, want 1", got)
	}
	if got := WrapPhase(Tau + 0.5); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("WrapPhase(tau+0.5) = %v, want 0.5", got)
	}
}
