package helpers

import (
	"testing"
	"time"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		value string
		want  time.Duration
	}{
		{value: "24h", want: 24 * time.Hour},
		{value: "90s", want: 90 * time.Second},
		{value: "", want: time.Minute},
		{value: "soon", want: time.Minute},
		{value: "0s", want: time.Minute},
		{value: "-5s", want: time.Minute},
	}

	for _, tt := range tests {
		if got := ParseDuration("server.read_timeout", tt.value, time.Minute); got != tt.want {
			t.Fatalf("ParseDuration(%q): expected %s, got %s", tt.value, tt.want, got)
		}
	}
}
