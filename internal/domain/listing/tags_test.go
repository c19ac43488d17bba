package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestParseTags(t *testing.T) {
	tests := []struct {
		name string
		raw  *string
		want []string
	}{
		{"nil column", nil, []string{}},
		{"empty string", strPtr(""), []string{}},
		{"only commas", strPtr(",,,"), []string{}},
		{"messy segments", strPtr("a, b,,c ,"), []string{"a", "b", "c"}},
		{"order and duplicates preserved", strPtr("x,y,x"), []string{"x", "y", "x"}},
		{"inner whitespace kept", strPtr("road bike, city bike"), []string{"road bike", "city bike"}},
		{"cjk labels", strPtr("数码, 办公"), []string{"数码", "办公"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTags(tt.raw))
		})
	}
}

func TestSummarizeTags(t *testing.T) {
	assert.Equal(t, "a, b, c", SummarizeTags([]string{"a", "b", "c"}))
	assert.Equal(t, NoTagsPlaceholder, SummarizeTags([]string{}))
	assert.Equal(t, NoTagsPlaceholder, SummarizeTags(nil))
}
