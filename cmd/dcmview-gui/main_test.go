package main

import (
	"testing"

	"github.com/caio-sobreiro/dcmview/view"
)

func TestNewTreeModel(t *testing.T) {
	root := &view.Node{
		Children: []*view.Node{
			{Text: "(0008,0018) | SOPInstanceUID | UI | 1.2.3"},
			{
				Text: "(0008,1140) | ReferencedImageSequence | SQ | sequence",
				Children: []*view.Node{
					{Text: "Item 0"},
					{Text: "Item 1"},
				},
			},
		},
	}

	m := newTreeModel(root)

	top := m.childUIDs("")
	if len(top) != 2 {
		t.Fatalf("top-level ids = %d, want 2", len(top))
	}
	if m.label("/0") != root.Children[0].Text {
		t.Errorf("label(/0) = %q, want %q", m.label("/0"), root.Children[0].Text)
	}
	if m.isBranch("/0") {
		t.Error("leaf node reported as branch")
	}
	if !m.isBranch("/1") {
		t.Error("sequence node should be a branch")
	}

	items := m.childUIDs("/1")
	if len(items) != 2 {
		t.Fatalf("sequence children = %d, want 2", len(items))
	}
	if m.label("/1/0") != "Item 0" || m.label("/1/1") != "Item 1" {
		t.Errorf("item labels = %q, %q, want Item 0, Item 1", m.label("/1/0"), m.label("/1/1"))
	}
}

func TestNewTreeModel_Nil(t *testing.T) {
	m := newTreeModel(nil)

	if len(m.childUIDs("")) != 0 {
		t.Error("nil tree should have no children")
	}
	if m.isBranch("") {
		t.Error("nil tree root should not be a branch")
	}
}
