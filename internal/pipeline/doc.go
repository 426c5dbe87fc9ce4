// Package pipeline implements the Markdown front end of the table extractor.
//
// This package handles the stages that run before any table validation:
//   - Markdown preprocessing (byte order mark, line ending normalization)
//   - GFM parsing via Goldmark into a Goldmark AST
//
// Shape validation and cell extraction are handled by the root md2tsv package
// on top of the internal/mdast node model. This separation keeps the pipeline
// focused on producing a faithful syntax tree, while the root package owns the
// one-table-of-rows-of-cells contract.
package pipeline
