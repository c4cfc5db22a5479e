package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNormalizeDegrees_Range tests normalization into [0, 360)
func TestNormalizeDegrees_Range(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{"zero", 0, 0},
		{"in range", 123.5, 123.5},
		{"exactly 360", 360, 0},
		{"above 360", 370, 10},
		{"multiple wraps", 725, 5},
		{"negative", -10, 350},
		{"large negative", -730, 350},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, NormalizeDegrees(tt.input), 1e-9)
		})
	}
}

// TestNormalizeDegrees_Idempotent tests that normalizing twice equals
// normalizing once
func TestNormalizeDegrees_Idempotent(t *testing.T) {
	for _, d := range []float64{-400, -1, 0, 45.25, 359.999, 360, 1000} {
		once := NormalizeDegrees(d)
		twice := NormalizeDegrees(once)
		assert.Equal(t, once, twice)
		assert.GreaterOrEqual(t, once, 0.0)
		assert.Less(t, once, 360.0)
	}
}

// TestAngularSeparation_Symmetric tests argument symmetry
func TestAngularSeparation_Symmetric(t *testing.T) {
	pairs := [][2]float64{
		{0, 90},
		{10, 350},
		{179, 181},
		{45.5, 300.25},
	}
	for _, p := range pairs {
		assert.Equal(t, AngularSeparation(p[0], p[1]), AngularSeparation(p[1], p[0]))
	}
}

// TestAngularSeparation_ShortWay tests that separation takes the short
// way around the circle
func TestAngularSeparation_ShortWay(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		want float64
	}{
		{"same point", 100, 100, 0},
		{"quarter", 0, 90, 90},
		{"opposite", 0, 180, 180},
		{"wraps through zero", 10, 350, 20},
		{"just past opposition", 0, 190, 170},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AngularSeparation(tt.a, tt.b)
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 180.0)
		})
	}
}
