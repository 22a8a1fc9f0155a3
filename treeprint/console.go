package treeprint

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"io"
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/npillmayer/aggtree"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config controls console output.
type Config struct {
	LineWidth int            // wrap levels longer than this, in fixed-width ‘en’s
	Context   *uax11.Context // for measuring the width of labels; nil means Latin
	Pending   *color.Color   // color of nodes with a pending update
	Leaf      *color.Color   // color of leaves; nil means no color
}

var setupClasses sync.Once

// Console prints one level of the flat tree per line. Labels are padded to a
// common width, measured in fixed-width positions of the console. Pending
// updates are shown in brackets after the label of their node.
//
// If config is nil, ConfigFromTerminal is used.
func Console(snap aggtree.Snapshot, w io.Writer, config *Config) error {
	if err := checkSnapshot(snap); err != nil {
		return err
	}
	if config == nil {
		config = ConfigFromTerminal()
	}
	ctx := config.Context
	if ctx == nil {
		ctx = uax11.LatinContext
	}
	pendingColor := config.Pending
	if pendingColor == nil {
		pendingColor = color.New(color.FgRed)
	}
	setupClasses.Do(grapheme.SetupGraphemeClasses)
	cells := make([]string, len(snap.Labels))
	colwidth := 0
	for i := 1; i < len(snap.Labels); i++ {
		cells[i] = snap.Labels[i]
		if p := pending(snap, i); p != "" {
			cells[i] += "[" + p + "]"
		}
		colwidth = max(colwidth, width(cells[i], ctx))
	}
	b := &errWriter{w: w}
	for _, lv := range levels(snap) {
		used := 0
		for i := lv[0]; i < lv[1]; i++ {
			if used > 0 && used+colwidth+1 > config.LineWidth {
				b.WriteString("\n")
				used = 0
			}
			if used > 0 {
				b.WriteString(" ")
				used++
			}
			cell := cells[i] + strings.Repeat(" ", colwidth-width(cells[i], ctx))
			switch {
			case pending(snap, i) != "":
				b.WriteString(pendingColor.Sprint(cell))
			case snap.IsLeaf(i) && config.Leaf != nil:
				b.WriteString(config.Leaf.Sprint(cell))
			default:
				b.WriteString(cell)
			}
			used += colwidth
		}
		b.WriteString("\n")
	}
	return b.err
}

// width measures s in console columns. A cluster of a single ASCII rune is
// one column wide; uax11 would measure digits as emoji keycap bases.
func width(s string, ctx *uax11.Context) int {
	gstr := grapheme.StringFromString(s)
	w := 0
	for i := 0; i < gstr.Len(); i++ {
		cluster := gstr.Nth(i)
		if len(cluster) == 1 && cluster[0] < utf8.RuneSelf {
			w++
			continue
		}
		w += uax11.StringWidth(grapheme.StringFromString(cluster), ctx)
	}
	return w
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal returns a Config for printing to os.Stdout. If stdout is
// a terminal, lines are as wide as the terminal (at least 10 columns),
// otherwise 65. Label widths follow the environment's locale.
func ConfigFromTerminal() *Config {
	config := &Config{LineWidth: 65}
	if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil {
			config.LineWidth = max(w, 10)
		}
	}
	config.Context = uax11.ContextFromEnvironment()
	tracer().Infof("treeprint: line width %d", config.LineWidth)
	return config
}
