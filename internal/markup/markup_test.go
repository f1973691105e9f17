package markup

import "testing"

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		pre   string
		mid   string
		post  string
		found bool
	}{
		{"no markup", "no markup here", "no markup here", "", "", false},
		{"simple span", "before ^highlight^ after", "before ", "highlight", " after", true},
		{"lone caret stripped", "only ^one caret", "only one caret", "", "", false},
		{"span at start", "^ten past^ nine", "", "ten past", " nine", true},
		{"span at end", "it was ^midnight^", "it was ", "midnight", "", true},
		{"whole text is span", "^noon^", "", "noon", "", true},
		{"extra carets stripped", "a ^b^ c ^d^ e", "a ", "b", " c d e", true},
		{"empty text", "", "", "", "", false},
		{"empty span", "a ^^ b", "a ", "", " b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pre, mid, post, found := Split(tt.in)
			if pre != tt.pre || mid != tt.mid || post != tt.post || found != tt.found {
				t.Errorf("Split(%q) = (%q, %q, %q, %v), want (%q, %q, %q, %v)",
					tt.in, pre, mid, post, found, tt.pre, tt.mid, tt.post, tt.found)
			}
		})
	}
}

// Split's outputs contain no carets, so running it again must be a no-op.
func TestSplitIdempotent(t *testing.T) {
	inputs := []string{
		"before ^highlight^ after",
		"only ^one caret",
		"a ^b^ c ^d^ e",
		"plain text",
	}

	for _, in := range inputs {
		pre, mid, post, _ := Split(in)
		for _, seg := range []string{pre, mid, post} {
			p2, m2, _, found := Split(seg)
			if found || p2 != seg || m2 != "" {
				t.Errorf("Split(%q) not idempotent: got (%q, %q, found=%v)", seg, p2, m2, found)
			}
		}
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain ascii untouched", "Hello, world.", "Hello, world."},
		{"em dash", "time—flies", "time-flies"},
		{"en dash", "9–5", "9-5"},
		{"ellipsis expands", "wait…", "wait..."},
		{"curly quotes", "“quoted” and ‘single’", `"quoted" and 'single'`},
		{"bullet and middle dot", "a • b · c", "a * b * c"},
		{"non-breaking space", "a b", "a b"},
		{"unknown unicode", "caffè", "caff?"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.in); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSanitizePureASCII(t *testing.T) {
	inputs := []string{
		"mixed — “text” … with • exotic ☃ runes 日本語",
		"already clean",
	}
	for _, in := range inputs {
		for i, r := range Sanitize(in) {
			if r >= 128 {
				t.Errorf("Sanitize(%q) contains non-ASCII rune %q at %d", in, r, i)
			}
		}
	}
}
