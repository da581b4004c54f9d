package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    int
		wantErr bool
	}{
		{"Valid", "20240315", 20240315, false},
		{"LeapDay", "20240229", 20240229, false},
		{"NotALeapYear", "20230229", 0, true},
		{"Month13", "20241301", 0, true},
		{"TooShort", "2024315", 0, true},
		{"Garbage", "ayer", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidDate(t *testing.T) {
	assert.True(t, ValidDate(20240315))
	assert.False(t, ValidDate(20240230))
	assert.False(t, ValidDate(0))
	assert.False(t, ValidDate(123))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "15-03-2024", FormatDate(20240315))
}
