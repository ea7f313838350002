package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrimAndValidate(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		valid    bool
	}{
		{"  Rockville, Maryland ", "Rockville, Maryland", true},
		{"   ", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := TrimAndValidate(tt.input)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.valid, ok)
		})
	}
}

func TestEnumValidators(t *testing.T) {
	assert.True(t, IsValidUnits("imperial"))
	assert.True(t, IsValidUnits("metric"))
	assert.False(t, IsValidUnits("kelvin"))

	assert.True(t, IsValidView("daily"))
	assert.True(t, IsValidView("hourly"))
	assert.False(t, IsValidView("weekly"))

	assert.True(t, IsValidDirection("previous"))
	assert.True(t, IsValidDirection("next"))
	assert.False(t, IsValidDirection("up"))
}

func TestNormalizeKey(t *testing.T) {
	assert.Equal(t, "rockville, maryland", NormalizeKey("  Rockville,   MARYLAND "))
	assert.True(t, IsNotEmpty(" x "))
	assert.False(t, IsNotEmpty(" \t"))
}
