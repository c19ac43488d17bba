package discovery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeQuery(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain ascii", "road bike", "road bike"},
		{"operator characters kept", `test-ok_123|*"x"`, `test-ok_123|*"x"`},
		{"non-ascii letters dropped", `café日本 test-ok_123|*"x"`, `caf test-ok_123|*"x"`},
		{"punctuation dropped silently", "what?!; drop--table", "what drop--table"},
		{"whitespace not collapsed", "a  b\tc", "a  b\tc"},
		{"empty", "", ""},
		{"only stripped characters", "日本語！？", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeQuery(tt.in))
		})
	}
}
