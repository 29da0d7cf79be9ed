package grid

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// eachCluster calls fn with every grapheme cluster of s and its cell width
// until fn returns false. East Asian ambiguous characters, which include the
// box-drawing set, are one cell wide regardless of locale.
func eachCluster(s string, fn func(cluster string, width int) bool) {
	state := -1
	for s != "" {
		var (
			cluster string
			width   int
		)
		cluster, s, width, state = uniseg.FirstGraphemeClusterInString(s, state)
		if !fn(cluster, width) {
			return
		}
	}
}

// splitCluster returns the base rune of a grapheme cluster and the runes
// combined with it.
func splitCluster(cluster string) (rune, []rune) {
	runes := []rune(cluster)
	if len(runes) == 1 {
		return runes[0], nil
	}
	return runes[0], runes[1:]
}

// clusterWidth returns the cell width of a base rune with its combining runes.
func clusterWidth(mainc rune, combc []rune) int {
	if len(combc) == 0 {
		return uniseg.StringWidth(string(mainc))
	}
	return uniseg.StringWidth(string(mainc) + string(combc))
}

// DrawString writes s onto g one grapheme cluster at a time, starting at x, y,
// and returns the number of columns advanced. Zero-width clusters are
// skipped. Clipping is left to g.
func DrawString(g Grid, x, y int, s string, style tcell.Style) int {
	col := x
	eachCluster(s, func(cluster string, w int) bool {
		if w == 0 {
			return true
		}
		mainc, combc := splitCluster(cluster)
		g.SetContent(col, y, mainc, combc, style)
		col += w
		return true
	})
	return col - x
}
