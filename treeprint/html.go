package treeprint

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"io"
	"strconv"

	"github.com/npillmayer/aggtree"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTML renders the layout of a flat tree as an HTML table, one row per level
// and one cell per node. Leaves carry class "leaf", nodes with a pending
// update class "pending" and the update as a title attribute.
func HTML(snap aggtree.Snapshot, w io.Writer) error {
	if err := checkSnapshot(snap); err != nil {
		return err
	}
	table := element(atom.Table, html.Attribute{Key: "class", Val: "aggtree"})
	for d, lv := range levels(snap) {
		tr := element(atom.Tr, html.Attribute{Key: "data-level", Val: strconv.Itoa(d)})
		for i := lv[0]; i < lv[1]; i++ {
			attrs := []html.Attribute{{Key: "data-node", Val: strconv.Itoa(i)}}
			if snap.IsLeaf(i) {
				attrs = append(attrs, html.Attribute{Key: "class", Val: "leaf"})
			} else if p := pending(snap, i); p != "" {
				attrs = append(attrs,
					html.Attribute{Key: "class", Val: "pending"},
					html.Attribute{Key: "title", Val: p})
			}
			td := element(atom.Td, attrs...)
			td.AppendChild(&html.Node{Type: html.TextNode, Data: snap.Labels[i]})
			tr.AppendChild(td)
		}
		table.AppendChild(tr)
	}
	if err := html.Render(w, table); err != nil {
		tracer().Errorf("tree HTML: %v", err)
		return err
	}
	return nil
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}
