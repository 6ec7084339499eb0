// Command dcmview-gui explores DICOM metadata as a hierarchical tree.
//
// Click "Open DICOM File" and pick a .dcm file; each row shows
// "Tag | Name | VR | Value", with sequences expandable into their items.
// Binary payloads such as pixel data are hidden.
package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/caio-sobreiro/dcmview/logger"
	"github.com/caio-sobreiro/dcmview/view"
)

type viewerUI struct {
	window fyne.Window
	tree   *widget.Tree
	model  *treeModel
	log    zerolog.Logger
}

func main() {
	log := logger.New(logger.Config{Level: "info", Pretty: true})

	a := app.New()
	w := a.NewWindow("DICOM Viewer - Hierarchy Explorer")
	w.Resize(fyne.NewSize(1000, 600))

	ui := &viewerUI{window: w, model: newTreeModel(nil), log: log}
	ui.tree = widget.NewTree(
		func(id widget.TreeNodeID) []widget.TreeNodeID { return ui.model.childUIDs(id) },
		func(id widget.TreeNodeID) bool { return ui.model.isBranch(id) },
		func(bool) fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.TreeNodeID, _ bool, o fyne.CanvasObject) {
			o.(*widget.Label).SetText(ui.model.label(id))
		},
	)

	openButton := widget.NewButton("Open DICOM File", ui.browseFile)
	header := widget.NewLabel("Tag | Name | VR | Value")

	top := container.NewVBox(openButton, header)
	w.SetContent(container.NewBorder(top, nil, nil, nil, ui.tree))
	w.ShowAndRun()
}

func (ui *viewerUI) browseFile() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		if reader == nil {
			// Dialog was cancelled.
			return
		}
		defer reader.Close()
		ui.open(reader.URI().Path())
	}, ui.window)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".dcm", ".DCM"}))
	fd.Show()
}

// open parses path and replaces the tree contents. On failure an error
// dialog is shown and the previous tree is left untouched.
func (ui *viewerUI) open(path string) {
	ds, err := view.ReadFile(path)
	if err != nil {
		ui.log.Error().Err(err).Str("file", path).Msg("read failed")
		dialog.ShowError(err, ui.window)
		return
	}
	ui.log.Info().Str("file", path).Int("elements", len(ds.Elements)).Msg("loaded DICOM file")

	ui.model = newTreeModel(view.BuildTree(ds, view.WithLogger(ui.log)))
	ui.tree.Refresh()
	ui.tree.OpenAllBranches()
}

// treeModel adapts a view.Node tree to the id-based callbacks of
// widget.Tree. Ids are slash-joined child indexes below the (empty) root id,
// so the same dataset always yields the same ids.
type treeModel struct {
	labels   map[widget.TreeNodeID]string
	children map[widget.TreeNodeID][]widget.TreeNodeID
}

func newTreeModel(root *view.Node) *treeModel {
	m := &treeModel{
		labels:   make(map[widget.TreeNodeID]string),
		children: make(map[widget.TreeNodeID][]widget.TreeNodeID),
	}
	if root != nil {
		m.index("", root)
	}
	return m
}

func (m *treeModel) index(id widget.TreeNodeID, n *view.Node) {
	ids := make([]widget.TreeNodeID, 0, len(n.Children))
	for i, child := range n.Children {
		childID := fmt.Sprintf("%s/%d", id, i)
		m.labels[childID] = child.Text
		ids = append(ids, childID)
		m.index(childID, child)
	}
	m.children[id] = ids
}

func (m *treeModel) childUIDs(id widget.TreeNodeID) []widget.TreeNodeID {
	return m.children[id]
}

func (m *treeModel) isBranch(id widget.TreeNodeID) bool {
	return len(m.children[id]) > 0
}

func (m *treeModel) label(id widget.TreeNodeID) string {
	return m.labels[id]
}
