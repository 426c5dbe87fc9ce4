package mdast

import (
	"fmt"
	"strings"

	"github.com/alnah/go-md2tsv/internal/yamlutil"
)

// dumpNode is the YAML shape of a Node in diagnostics.
type dumpNode struct {
	Kind     string     `yaml:"kind"`
	Line     int        `yaml:"line,omitempty"`
	Text     string     `yaml:"text,omitempty"`
	Children []dumpNode `yaml:"children,omitempty"`
}

func toDump(n *Node) dumpNode {
	d := dumpNode{Kind: n.Name, Line: n.Line, Text: n.Text}
	for _, c := range n.Children {
		d.Children = append(d.Children, toDump(c))
	}
	return d
}

// Dump renders the subtree rooted at n as YAML for error messages.
func Dump(n *Node) string {
	if n == nil {
		return "<nil>"
	}
	data, err := yamlutil.Marshal(toDump(n))
	if err != nil {
		return fmt.Sprintf("%s (dump failed: %v)", n.Name, err)
	}
	return strings.TrimRight(string(data), "\n")
}
