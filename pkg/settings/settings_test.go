package settings

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewCliParams(t *testing.T) {
	got := NewCliParams()
	require.Equal(t, &Run{MinLogLevel: 0, Output: OutputTUI}, got)
}

func TestIsValidOutputMode(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"tui", true},
		{"table", true},
		{"json", true},
		{"yaml", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.want, IsValidOutputMode(tt.in))
		})
	}
}
