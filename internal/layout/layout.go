// Package layout is the greedy word-wrap engine. It turns quote text
// into positioned glyph runs for a fixed-width area, bolding the
// highlighted time phrase by double-striking it one unit to the right.
package layout

import (
	"strings"

	"github.com/akerr/inkclock/internal/markup"
)

// DefaultLinePad is the vertical gap between lines in layout units.
const DefaultLinePad = 2

// GlyphRun is one positioned piece of text, ready for a display to draw.
// Highlighted runs come in pairs: the same text at x and x+1.
type GlyphRun struct {
	Text        string
	X, Y        int
	Highlighted bool
}

// Token is a word (or the whole highlight span) awaiting placement.
type Token struct {
	Text        string
	Highlighted bool
}

// Measurer reports rendered text dimensions. Displays satisfy this
// directly; tests inject a synthetic fixed-width measurer.
type Measurer interface {
	Measure(text string) (width, height int)
}

// Engine lays text out into a column of lines. LineWidth is the full
// drawable width; Margin is applied on both sides. A zero LinePad means
// DefaultLinePad.
type Engine struct {
	Measure   Measurer
	LineWidth int
	Margin    int
	LinePad   int
}

// Tokenize splits quote text into placeable tokens. The pre and post
// segments break on whitespace; the highlight span stays one atomic
// token so the bolded phrase is never wrapped mid-phrase.
func Tokenize(text string) []Token {
	pre, mid, post, found := markup.Split(text)

	var tokens []Token
	for _, w := range strings.Fields(markup.Sanitize(pre)) {
		tokens = append(tokens, Token{Text: w})
	}
	if found {
		if mid = markup.Sanitize(mid); mid != "" {
			tokens = append(tokens, Token{Text: mid, Highlighted: true})
		}
	}
	for _, w := range strings.Fields(markup.Sanitize(post)) {
		tokens = append(tokens, Token{Text: w})
	}
	return tokens
}

// Layout wraps text into lines starting at yStart. Lines that would
// cross yMax are discarded along with every remaining token: the quote
// field clips silently rather than overrunning the footer. An atomic
// highlight span wider than the line is placed anyway and overflows the
// right margin; it is never split.
func (e Engine) Layout(text string, yStart, yMax int) []GlyphRun {
	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return nil
	}

	pad := e.LinePad
	if pad == 0 {
		pad = DefaultLinePad
	}
	spaceW, lineH := e.Measure.Measure(" ")

	var runs []GlyphRun
	y := yStart

	flush := func(line []Token) bool {
		if y+lineH > yMax {
			return false
		}
		x := e.Margin
		for _, tok := range line {
			w, _ := e.Measure.Measure(tok.Text)
			runs = append(runs, GlyphRun{Text: tok.Text, X: x, Y: y, Highlighted: tok.Highlighted})
			if tok.Highlighted {
				// Faux bold: strike the span again one unit right.
				runs = append(runs, GlyphRun{Text: tok.Text, X: x + 1, Y: y, Highlighted: true})
			}
			x += w + spaceW
		}
		return true
	}

	var line []Token
	lineW := 0
	for _, tok := range tokens {
		w, _ := e.Measure.Measure(tok.Text)
		nextW := w
		if len(line) > 0 {
			nextW = lineW + spaceW + w
		}
		if len(line) > 0 && e.Margin+nextW+e.Margin > e.LineWidth {
			if !flush(line) {
				return runs
			}
			y += lineH + pad
			line = []Token{tok}
			lineW = w
		} else {
			line = append(line, tok)
			lineW = nextW
		}
	}
	if len(line) > 0 {
		flush(line)
	}
	return runs
}
