package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBool(t *testing.T) {
	tests := []struct {
		raw      string
		fallback bool
		want     bool
		wantErr  bool
	}{
		{"", true, true, false},
		{"", false, false, false},
		{"true", false, true, false},
		{"TRUE", false, true, false},
		{" 1 ", false, true, false},
		{"yes", false, true, false},
		{"false", true, false, false},
		{"0", true, false, false},
		{"off", true, false, false},
		{"maybe", true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseBool(tt.raw, tt.fallback)
			assert.Equal(t, tt.want, got)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
