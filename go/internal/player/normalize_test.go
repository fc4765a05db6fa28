package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Târnovanu", "tarnovanu"},
		{"Thomas Müller", "thomas muller"},
		{"Ștefan Tărâță", "stefan tarata"},
		{"JOÃO FÉLIX", "joao felix"},
		{"already plain", "already plain"},
		{"", ""},
		// Ł has no canonical decomposition and is only lowercased
		{"Łukasz", "łukasz"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	for _, s := range []string{"Târnovanu", "Müller", "Ćirković", "Dragoș"} {
		once := Normalize(s)
		assert.Equal(t, once, Normalize(once), s)
	}
}
