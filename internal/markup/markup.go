// Package markup handles the caret highlight notation used in quote
// datasets and maps quote text onto the safe alphabet the display font
// can actually draw.
package markup

import "strings"

// Sentinel is the character that delimits a highlighted span.
const Sentinel = "^"

// Split extracts the single ^highlighted^ span from text.
// It returns the text before the span, the span itself, the text after,
// and whether a span was present. A lone caret carries no meaning and is
// stripped. Only the first caret pair is significant; stray carets inside
// any segment are stripped as well, which makes Split idempotent on its
// own outputs.
func Split(text string) (pre, mid, post string, found bool) {
	a := strings.Index(text, Sentinel)
	if a == -1 {
		return text, "", "", false
	}
	b := strings.Index(text[a+1:], Sentinel)
	if b == -1 {
		return strings.ReplaceAll(text, Sentinel, ""), "", "", false
	}
	b += a + 1

	pre = strings.ReplaceAll(text[:a], Sentinel, "")
	mid = strings.ReplaceAll(text[a+1:b], Sentinel, "")
	post = strings.ReplaceAll(text[b+1:], Sentinel, "")
	return pre, mid, post, true
}

// replacements maps typographic characters that bitmap fonts commonly
// lack onto plain-ASCII stand-ins.
var replacements = map[rune]string{
	'—': "-",   // em dash
	'–': "-",   // en dash
	'…': "...", // ellipsis
	'“': `"`,   // left double quote
	'”': `"`,   // right double quote
	'‘': "'",   // left single quote
	'’': "'",   // right single quote
	'•': "*",   // bullet
	'·': "*",   // middle dot
	' ': " ",   // non-breaking space
}

// Sanitize maps s onto printable ASCII. Known typographic characters get
// readable stand-ins; anything else at or above code point 128 becomes '?'.
// The result is always safe to hand to a glyph-limited bitmap font.
func Sanitize(s string) string {
	if s == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if repl, ok := replacements[r]; ok {
			b.WriteString(repl)
			continue
		}
		if r < 128 {
			b.WriteRune(r)
		} else {
			b.WriteByte('?')
		}
	}
	return b.String()
}
