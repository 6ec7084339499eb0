package view

import (
	"fmt"

	"github.com/suyashkumar/dicom"
)

// On-screen values longer than this many runes are cut and suffixed with an
// ellipsis so a single row stays readable.
const defaultTruncateLimit = 80

// Node is one row of a GUI tree. Text holds the formatted
// "tag | name | VR | value" line (or an "Item <i>" marker); Children hold
// sequence items and their elements. The tree is toolkit-neutral so GUI
// front-ends can bind it to whatever widget they use and tests can walk it
// directly.
type Node struct {
	Text     string
	Children []*Node
}

// BuildTree converts a dataset into a display tree, applying the same
// visibility rules as Print. Unlike the text variant, rendered values are
// truncated for on-screen display (configurable via WithTruncate). The
// returned root node carries no text of its own, only children.
func BuildTree(ds dicom.Dataset, opts ...Option) *Node {
	c := newConfig(opts...)
	root := &Node{}
	appendElements(root, c, ds.Elements)
	return root
}

func appendElements(parent *Node, c *config, elems []*dicom.Element) {
	for _, e := range elems {
		if e == nil {
			continue
		}
		if IsBinaryValue(e) {
			c.log.Debug().Str("tag", FormatTag(e.Tag)).Msg("skipping binary value")
			continue
		}

		value := truncateValue(displayValue(e), c.truncate)
		node := &Node{Text: formatLine(e, value)}
		parent.Children = append(parent.Children, node)

		if e.RawValueRepresentation != vrSequence {
			continue
		}
		for i, item := range sequenceItems(e.Value) {
			itemNode := &Node{Text: fmt.Sprintf("Item %d", i)}
			node.Children = append(node.Children, itemNode)
			appendElements(itemNode, c, item)
		}
	}
}

// truncateValue caps s at limit runes, replacing the tail with "..." when
// cut. Limits below 1 disable truncation.
func truncateValue(s string, limit int) string {
	if limit < 1 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	if limit <= len("...") {
		return string(runes[:limit])
	}
	return string(runes[:limit-len("...")]) + "..."
}
