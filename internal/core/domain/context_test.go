package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestIntensityForScore_Tiers tests the intensity thresholds
func TestIntensityForScore_Tiers(t *testing.T) {
	tests := []struct {
		name string
		sum  float64
		want DayIntensity
	}{
		{"zero", 0, IntensitySoft},
		{"single medium aspect", 11.25, IntensitySoft},
		{"at medium boundary", 15, IntensitySoft},
		{"just over medium", 15.01, IntensityMedium},
		{"at deep boundary", 30, IntensityMedium},
		{"just over deep", 30.01, IntensityDeep},
		{"well past deep", 50, IntensityDeep},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IntensityForScore(tt.sum))
		})
	}
}

// TestBucketMoonPhase tests canonical names bucketing to coarse
// categories
func TestBucketMoonPhase(t *testing.T) {
	tests := []struct {
		phase string
		want  MoonPhaseBucket
	}{
		{"New Moon", PhaseBucketNew},
		{"Waxing Crescent", PhaseBucketWaxing},
		{"First Quarter", PhaseBucketWaxing},
		{"Waxing Gibbous", PhaseBucketWaxing},
		{"Full Moon", PhaseBucketFull},
		{"Waning Gibbous", PhaseBucketWaning},
		{"Last Quarter", PhaseBucketWaning},
		{"Waning Crescent", PhaseBucketWaning},
		{"full moon", PhaseBucketFull},
		{"Blood Moon", PhaseBucketUnknown},
		{"", PhaseBucketUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.phase, func(t *testing.T) {
			assert.Equal(t, tt.want, BucketMoonPhase(tt.phase))
		})
	}
}

// TestActivationContext_InStelliumHouse tests house membership lookup
func TestActivationContext_InStelliumHouse(t *testing.T) {
	actx := &ActivationContext{StelliumHouses: []int{4, 7}}

	assert.True(t, actx.InStelliumHouse(4))
	assert.True(t, actx.InStelliumHouse(7))
	assert.False(t, actx.InStelliumHouse(10))

	empty := &ActivationContext{}
	assert.False(t, empty.InStelliumHouse(4))
}
