// Package view turns DICOM datasets parsed by the suyashkumar/dicom library
// into human-readable output, hiding binary payloads such as pixel or
// waveform data. It provides a text formatter for terminals and a
// toolkit-neutral tree builder for GUI front-ends.
package view

import (
	"unicode"
	"unicode/utf8"

	"github.com/suyashkumar/dicom"
	"github.com/suyashkumar/dicom/pkg/tag"
)

// Printability heuristic thresholds. Strings at most maxPlainLength runes
// long are always considered displayable; longer ones must have at least
// minPrintableRatio printable runes.
const (
	maxPlainLength    = 100
	minPrintableRatio = 0.6
)

// Value Representations that carry binary or otherwise opaque payloads.
var binaryVRs = map[string]bool{
	"OB": true, // Other Byte
	"OD": true, // Other Double
	"OF": true, // Other Float
	"OL": true, // Other Long
	"OV": true, // Other Very Long
	"OW": true, // Other Word
	"UN": true, // Unknown
}

// Tags excluded from textual output regardless of VR.
var excludedTags = map[tag.Tag]bool{
	{Group: 0x7FE0, Element: 0x0010}: true, // Pixel Data
	{Group: 0x5400, Element: 0x1010}: true, // Waveform Data
}

// IsBinaryValue reports whether the element's value is binary or otherwise
// unfit for textual display. An element is opaque when its tag is in the
// exclusion set, its VR is a binary VR, its value is a raw byte payload, or
// its rendered text is a long mostly-non-printable blob. Classification is
// conservative: any failure to render the value resolves to opaque, so the
// function never panics and never lets a broken element abort a traversal.
func IsBinaryValue(e *dicom.Element) bool {
	if e == nil {
		return true
	}
	if excludedTags[e.Tag] {
		return true
	}
	if binaryVRs[e.RawValueRepresentation] {
		return true
	}
	if isByteValue(e.Value) {
		return true
	}

	s, err := renderValue(e.Value)
	if err != nil {
		return true
	}
	return looksBinary(s)
}

// isByteValue reports whether v is backed by a raw byte payload.
func isByteValue(v dicom.Value) bool {
	if v == nil {
		return false
	}
	switch v.ValueType() {
	case dicom.Bytes, dicom.PixelData:
		return true
	}
	_, ok := v.GetValue().([]byte)
	return ok
}

// looksBinary flags long strings with a low fraction of printable runes.
// Short non-printable strings pass: the heuristic deliberately targets long
// blobs only, trading false negatives on short opaque garbage for never
// suppressing short but unusual text fields.
func looksBinary(s string) bool {
	total := utf8.RuneCountInString(s)
	if total <= maxPlainLength {
		return false
	}

	printable := 0
	for _, r := range s {
		if unicode.IsPrint(r) {
			printable++
		}
	}
	return float64(printable)/float64(total) < minPrintableRatio
}
