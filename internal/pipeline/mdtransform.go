package pipeline

import (
	"regexp"
	"strings"
)

// byteOrderMark is stripped from the start of the input; Goldmark would
// otherwise keep it as text in the first block.
const byteOrderMark = "\uFEFF"

// Precompiled regex patterns for performance.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)
)

// MarkdownPreprocessor defines the contract for markdown preprocessing.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(content string) string
}

// GFMPreprocessor applies transformations before GFM parsing.
type GFMPreprocessor struct{}

// PreprocessMarkdown applies all transformations to prepare Markdown for parsing.
// Cell text never spans lines, so none of these transformations change it.
func (p *GFMPreprocessor) PreprocessMarkdown(content string) string {
	content = stripByteOrderMark(content)
	content = normalizeLineEndings(content)
	return content
}

// stripByteOrderMark removes a single leading U+FEFF.
func stripByteOrderMark(content string) string {
	return strings.TrimPrefix(content, byteOrderMark)
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}
