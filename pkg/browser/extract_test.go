package browser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTextStripsScriptAndStyle(t *testing.T) {
	out := ExtractText(`<script>evil()</script><p>Hello   World</p>`)
	assert.Equal(t, "Hello World", out)

	out = ExtractText(`<html><head><style>p{color:red}</style></head><body><p>one</p><p>two</p></body></html>`)
	assert.Equal(t, "one two", out)
}

func TestExtractTextSkipsNoscriptAndComments(t *testing.T) {
	out := ExtractText(`<!-- hidden --><noscript>enable js</noscript><div>visible</div>`)
	assert.Equal(t, "visible", out)
}

func TestExtractTextEmptyDocument(t *testing.T) {
	assert.Equal(t, "", ExtractText(""))
	assert.Equal(t, "", ExtractText("<script>only()</script>"))
}

func TestCollapseWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", CollapseWhitespace("  a \t b\n\n c  "))
	assert.Equal(t, "", CollapseWhitespace(" \n\t "))
}

func TestCollapseWhitespaceIdempotent(t *testing.T) {
	once := CollapseWhitespace("Hello \n  World \t again")
	assert.Equal(t, once, CollapseWhitespace(once))

	normalized := ExtractText(`<p>Hello   World</p>`)
	assert.Equal(t, normalized, CollapseWhitespace(normalized))
}
