package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edsim/edsim/sim"
)

func TestValidateRate(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"1.0", false},
		{"0.1", false},
		{" 2.5 ", false},
		{"0.05", true},
		{"0", true},
		{"-1", true},
		{"abc", true},
		{"NaN", true},
		{"", true},
	}
	for _, tc := range tests {
		err := validateRate(tc.in)
		if tc.wantErr {
			assert.Error(t, err, "validateRate(%q)", tc.in)
		} else {
			assert.NoError(t, err, "validateRate(%q)", tc.in)
		}
	}
}

func TestValidateDuration(t *testing.T) {
	assert.NoError(t, validateDuration("1"))
	assert.NoError(t, validateDuration("30"))
	assert.Error(t, validateDuration("0"))
	assert.Error(t, validateDuration("1.5"))
	assert.Error(t, validateDuration("ten"))
}

func TestApplyFormValues_WritesParsedValues(t *testing.T) {
	cfg := sim.DefaultConfig()
	seed := cfg.Seed

	require.NoError(t, applyFormValues(&cfg, "0.5", "2", "45"))

	assert.Equal(t, 0.5, cfg.ArrivalRate)
	assert.Equal(t, 2.0, cfg.ServiceRate)
	assert.Equal(t, 45, cfg.Duration)
	assert.Equal(t, seed, cfg.Seed, "form leaves the seed alone")
}

func TestApplyFormValues_InvalidDuration_ReturnsError(t *testing.T) {
	cfg := sim.DefaultConfig()
	err := applyFormValues(&cfg, "1", "1", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duration")
}
