package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeHTML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "tags and ampersand", in: "<b>A&B</b>", want: "&lt;b&gt;A&amp;B&lt;/b&gt;"},
		{name: "existing entity escaped once", in: "&lt;", want: "&amp;lt;"},
		{name: "quotes untouched", in: `"it's"`, want: `"it's"`},
		{name: "empty", in: "", want: ""},
		{name: "unicode", in: "안녕 <하세요>", want: "안녕 &lt;하세요&gt;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EscapeHTML(tt.in))
		})
	}
}
