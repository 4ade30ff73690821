package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "lowercase yes", input: "y\n", want: true},
		{name: "uppercase yes", input: "Y\n", want: true},
		{name: "no", input: "n\n", want: false},
		{name: "empty line declines", input: "\n", want: false},
		{name: "closed input declines", input: "", want: false},
		{name: "full word yes declines", input: "yes\n", want: false},
		{name: "whitespace around answer", input: "  y  \n", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := NewPrompter(strings.NewReader(tt.input), &out)

			got := p.Confirm("Proceed?")

			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "Proceed? [y/N]: ")
		})
	}
}

func TestLine(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("  user@example.com  \n"), &out)

	got, err := p.Line("Email")

	require.NoError(t, err)
	assert.Equal(t, "user@example.com", got)
	assert.Contains(t, out.String(), "Email: ")
}

func TestPasswordFromPipe(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("s3cret pass\r\n"), &out)

	got, err := p.Password("Password")

	require.NoError(t, err)
	assert.Equal(t, "s3cret pass", got)
}

func TestPasswordKeepsInnerWhitespace(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("  padded  \n"), &out)

	got, err := p.Password("Password")

	require.NoError(t, err)
	assert.Equal(t, "  padded  ", got)
}
