package view

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/suyashkumar/dicom"
	"github.com/suyashkumar/dicom/pkg/tag"

	dcmerrors "github.com/caio-sobreiro/dcmview/errors"
)

// VR denoting a sequence of nested datasets.
const vrSequence = "SQ"

// Option configures a formatter.
type Option func(*config)

type config struct {
	log      zerolog.Logger
	truncate int
}

// WithLogger overrides the logger used for per-element diagnostics.
func WithLogger(log zerolog.Logger) Option {
	return func(c *config) {
		c.log = log
	}
}

// WithTruncate caps rendered values at n runes in the tree variant. Values
// of n less than 1 disable truncation. The text variant never truncates.
func WithTruncate(n int) Option {
	return func(c *config) {
		c.truncate = n
	}
}

func newConfig(opts ...Option) *config {
	c := &config{
		log:      zerolog.Nop(),
		truncate: defaultTruncateLimit,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FormatTag renders a DICOM tag in the conventional (GGGG,EEEE) form with
// uppercase hex digits, e.g. "(0010,0010)".
func FormatTag(t tag.Tag) string {
	return fmt.Sprintf("(%04X,%04X)", t.Group, t.Element)
}

// TagName returns the dictionary name for t. Tags outside the dictionary
// (private tags included) come back as "Unknown".
func TagName(t tag.Tag) string {
	info, err := tag.Find(t)
	if err != nil || info.Name == "" {
		return "Unknown"
	}
	return info.Name
}

// renderValue converts an element value to display text. Multi-valued
// strings join with the DICOM `\` separator; everything else uses the
// library's own stringification. A nil value, or a panic inside the
// library, is reported as an error so callers can fail safe.
func renderValue(v dicom.Value) (s string, err error) {
	defer func() {
		if r := recover(); r != nil {
			s = ""
			err = dcmerrors.NewRenderError(fmt.Errorf("%v", r))
		}
	}()

	if v == nil {
		return "", dcmerrors.ErrNoValue
	}
	if v.ValueType() == dicom.Strings {
		if ss, ok := v.GetValue().([]string); ok {
			return strings.Join(ss, `\`), nil
		}
	}
	return v.String(), nil
}

// formatLine builds the "tag | name | VR | value" text shared by both
// formatter variants.
func formatLine(e *dicom.Element, value string) string {
	return fmt.Sprintf("%s | %s | %s | %s",
		FormatTag(e.Tag), TagName(e.Tag), e.RawValueRepresentation, value)
}

// displayValue renders e's value, substituting an inline placeholder when
// rendering fails. Only reachable for elements the classifier let through,
// so the placeholder is a last-ditch guard rather than a normal path.
func displayValue(e *dicom.Element) string {
	value, err := renderValue(e.Value)
	if err != nil {
		return fmt.Sprintf("<Error reading value: %v>", err)
	}
	return value
}

// sequenceItems extracts the nested datasets of a sequence value, in
// original order. A value of any other shape yields nil.
func sequenceItems(v dicom.Value) [][]*dicom.Element {
	if v == nil || v.ValueType() != dicom.Sequences {
		return nil
	}
	items, ok := v.GetValue().([]*dicom.SequenceItemValue)
	if !ok {
		return nil
	}

	out := make([][]*dicom.Element, 0, len(items))
	for _, item := range items {
		if item == nil {
			out = append(out, nil)
			continue
		}
		elems, _ := item.GetValue().([]*dicom.Element)
		out = append(out, elems)
	}
	return out
}
