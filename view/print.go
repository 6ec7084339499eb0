package view

import (
	"fmt"
	"io"
	"strings"

	"github.com/suyashkumar/dicom"
)

// Two spaces per depth level in the text output.
const indentStep = "  "

// Print writes the dataset's visible elements to w, one line per element in
// dataset order. Binary values are skipped entirely, with no placeholder.
// Sequences recurse with an "Item <i>:" marker per nested dataset, nesting
// shown through indentation. Values are never truncated; the only errors
// returned are write errors from w.
func Print(w io.Writer, ds dicom.Dataset, opts ...Option) error {
	c := newConfig(opts...)
	return printElements(w, c, ds.Elements, 0)
}

func printElements(w io.Writer, c *config, elems []*dicom.Element, depth int) error {
	indent := strings.Repeat(indentStep, depth)

	for _, e := range elems {
		if e == nil {
			continue
		}
		if IsBinaryValue(e) {
			c.log.Debug().Str("tag", FormatTag(e.Tag)).Msg("skipping binary value")
			continue
		}

		if _, err := fmt.Fprintf(w, "%s%s\n", indent, formatLine(e, displayValue(e))); err != nil {
			return err
		}

		if e.RawValueRepresentation != vrSequence {
			continue
		}
		for i, item := range sequenceItems(e.Value) {
			if _, err := fmt.Fprintf(w, "%s%sItem %d:\n", indent, indentStep, i); err != nil {
				return err
			}
			if err := printElements(w, c, item, depth+2); err != nil {
				return err
			}
		}
	}
	return nil
}
