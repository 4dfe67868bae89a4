// Package mermaid renders flag set domains in Mermaid diagram format.
// Mermaid is a text-based diagramming tool that generates diagrams
// from markdown-like syntax.
//
// Each group is drawn as a node with an edge to each of its members.
package mermaid

import (
	"bytes"
	"fmt"

	"github.com/rogpeppe/flagset/domain"
)

// GroupStyle holds the Mermaid style used for group nodes.
const GroupStyle = "fill:#eef,stroke:#336"

// Marshaler represents a type that can be marshaled into Mermaid diagram format.
type Marshaler interface {
	// MarshalMermaid returns the Mermaid representation of the object.
	MarshalMermaid() ([]byte, error)
}

// NewDomain returns a Marshaler that draws the groups and
// items of d.
func NewDomain(d *domain.Domain) Marshaler {
	return domainGraph{d}
}

// NodeInfo contains metadata about a diagram node.
type NodeInfo struct {
	// ID is the unique identifier for the node in the Mermaid diagram.
	ID string
	// Text is the display text for the node.
	Text string
	// Style contains Mermaid style declarations for the node.
	Style string
}

// ItemInfo returns the node describing item.
// Item names are not used as node identifiers because
// they may clash with Mermaid keywords such as "end".
func ItemInfo(item domain.Item) NodeInfo {
	return NodeInfo{
		ID:   fmt.Sprintf("i%d", item.Index()),
		Text: item.String(),
	}
}

func groupInfo(index int, name string) NodeInfo {
	return NodeInfo{
		ID:    fmt.Sprintf("g%d", index),
		Text:  name,
		Style: GroupStyle,
	}
}

type domainGraph struct {
	d *domain.Domain
}

func (g domainGraph) MarshalMermaid() ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "graph TD\n")
	i := 0
	for name, members := range g.d.Groups() {
		writeNode(&buf, groupInfo(i, name))
		for item := range members.All() {
			fmt.Fprintf(&buf, "  g%d-->%s\n", i, ItemInfo(item).ID)
		}
		i++
	}
	for _, item := range g.d.Items() {
		writeNode(&buf, ItemInfo(item))
	}
	return buf.Bytes(), nil
}

func writeNode(buf *bytes.Buffer, info NodeInfo) {
	fmt.Fprintf(buf, "  %s[%s]\n", info.ID, info.Text)
	if info.Style != "" {
		fmt.Fprintf(buf, "  style %s %s\n", info.ID, info.Style)
	}
}
