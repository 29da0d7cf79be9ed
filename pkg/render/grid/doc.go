// Package grid provides the character-cell surface that node views paint into.
//
// A [Grid] is anything that accepts a character (a base rune plus combining
// runes, as [tcell.Screen.SetContent] takes them) and a [tcell.Style] at a
// cell position. Two implementations are provided:
//
//   - [Buffer]: an in-memory grid used for measuring, testing and printing
//   - [ScreenGrid]: an adapter over a live [tcell.Screen]
//
// Writes outside a grid's bounds are silently dropped. Callers that need a
// stricter contract validate their [Rect] before painting.
//
// # Text Width
//
// Text is laid out by grapheme cluster, not by byte or rune. [StringWidth]
// measures and [DrawString] paints with the same cluster widths from
// rivo/uniseg, so "e\u0301", "👍🏽" and "🇯🇵" each take one character cell
// (two for wide clusters) and keep their extra runes in [Cell.Combining]. The
// trailing cell of a wide character is marked as a continuation so that
// [Buffer.Line] reproduces the original text.
//
// # Export
//
// [Buffer.String] returns plain text. [ANSI] renders the same text with cell
// styles converted to lipgloss styles, for printing to a terminal.
package grid
