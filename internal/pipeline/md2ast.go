package pipeline

import (
	"errors"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// ErrParse indicates the Markdown parser rejected the input.
var ErrParse = errors.New("markdown parse failed")

// Parsed is the result of parsing a document: the Goldmark AST root and the
// source bytes its segments point into.
type Parsed struct {
	Root   ast.Node
	Source []byte
}

// Parser abstracts Markdown to AST parsing.
type Parser interface {
	Parse(content string) (*Parsed, error)
}

// GoldmarkParser parses Markdown using goldmark (pure Go).
type GoldmarkParser struct {
	md goldmark.Markdown
}

// NewGoldmarkParser creates a GoldmarkParser with GFM extensions.
func NewGoldmarkParser() *GoldmarkParser {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM, // Tables, strikethrough, autolinks, task lists
		),
	)
	return &GoldmarkParser{md: md}
}

// Parse builds the Goldmark AST for content.
// Goldmark accepts any byte sequence as Markdown, so a failure here can only
// come from a panic inside an extension; it is reported as ErrParse.
func (p *GoldmarkParser) Parse(content string) (parsed *Parsed, err error) {
	source := []byte(content)

	defer func() {
		if r := recover(); r != nil {
			parsed = nil
			err = fmt.Errorf("%w: %v", ErrParse, r)
		}
	}()

	root := p.md.Parser().Parse(text.NewReader(source))
	if root == nil {
		return nil, fmt.Errorf("%w: parser returned no document", ErrParse)
	}

	return &Parsed{Root: root, Source: source}, nil
}
