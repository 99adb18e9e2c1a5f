package result

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripTags(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text untouched", "no markup here", "no markup here"},
		{"tags removed", "<p>hello <b>world</b></p>", "hello world"},
		{"sinhala preserved", "<div>මෙය සත්‍යයි</div>", "මෙය සත්‍යයි"},
		{"entities decoded", "a &amp; b", "a & b"},
		{"whitespace collapsed", "<p>line\none</p>\n<p>line two</p>", "line one line two"},
		{"empty", "", ""},
		{"only whitespace", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripTags(tt.in))
		})
	}
}
