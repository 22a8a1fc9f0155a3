package treeprint

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/aggtree"
)

// Dot outputs the layout of a flat tree in Graphviz DOT format.
//
// Inner nodes are drawn as circles labelled with their value, leaves as boxes
// labelled with position and value. Nodes carrying a pending update are
// highlighted and show the update below the value.
func Dot(snap aggtree.Snapshot, w io.Writer) error {
	if err := checkSnapshot(snap); err != nil {
		return err
	}
	var nodelist, edgelist strings.Builder
	for i := 1; i < len(snap.Labels); i++ {
		if snap.IsLeaf(i) {
			label := fmt.Sprintf("@%d\\n%s", i-snap.Leaves, escape(snap.Labels[i]))
			fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", i, label, nodeDotStyles(true, false))
			continue
		}
		label := escape(snap.Labels[i])
		p := pending(snap, i)
		if p != "" {
			label += "\\n(" + escape(p) + ")"
		}
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", i, label, nodeDotStyles(false, p != ""))
		fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", i, i<<1)
		fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", i, i<<1|1)
	}
	b := &errWriter{w: w}
	b.WriteString("strict digraph {\n")
	b.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	b.WriteString(nodelist.String())
	b.WriteString(edgelist.String())
	b.WriteString("}\n")
	if b.err != nil {
		tracer().Errorf("tree DOT: %s", b.err.Error())
	}
	return b.err
}

func escape(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, `\`, `\\`), `"`, `\"`)
}

func nodeDotStyles(isleaf bool, highlight bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,shape=circle"
		if highlight {
			s += ",fillcolor=\"#FFAA66\""
		} else {
			s += ",fillcolor=\"#a3d7e4\""
		}
	}
	return s
}

// errWriter remembers the first write error and skips all further writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (b *errWriter) WriteString(s string) {
	if b.err != nil {
		return
	}
	_, b.err = io.WriteString(b.w, s)
}
