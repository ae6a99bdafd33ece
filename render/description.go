package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
)

var markdown = goldmark.New()

// Description converts a Markdown route description to HTML.
func Description(source string) (template.HTML, error) {
	if source == "" {
		return "", nil
	}

	var buf bytes.Buffer
	if err := markdown.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("render description: %w", err)
	}

	return template.HTML(buf.String()), nil
}
