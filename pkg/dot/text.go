package dot

import "strings"

// textKind discriminates the three label variants.
type textKind uint8

const (
	textNone textKind = iota // zero value: no text supplied
	textLabel
	textEsc
	textHTML
)

// Text is the content of a graphviz label on a graph, node, edge or
// subgraph. The zero value means "absent": the renderer substitutes the
// documented default (the node id for node labels, the empty string for edge
// and subgraph labels) or omits the attribute (colors, shapes).
type Text struct {
	kind textKind
	text string
}

// Label returns plain-text content. Backslash, double quote and newline are
// escaped when rendered, so the text appears exactly as given.
func Label(s string) Text {
	return Text{kind: textLabel, text: s}
}

// Esc returns content in the graphviz escString form
// (https://www.graphviz.org/docs/attr-types/escString/). Backslashes are not
// escaped; sequences such as \n, \l and \r are interpreted by Graphviz as
// line breaks with centering, left and right justification.
func Esc(s string) Text {
	return Text{kind: textEsc, text: s}
}

// HTML returns content rendered as a graphviz HTML-like label: the string is
// emitted exactly as given between < and >, with no escaping. The caller is
// responsible for well-formed content.
func HTML(s string) Text {
	return Text{kind: textHTML, text: s}
}

// IsZero reports whether no text was supplied.
func (t Text) IsZero() bool {
	return t.kind == textNone
}

// Raw returns the content without any DOT delimiters or escaping.
func (t Text) Raw() string {
	return t.text
}

// String renders the text as it appears in a .dot file, including quotes or
// angle-bracket delimiters. The zero value renders as the empty string "".
func (t Text) String() string {
	switch t.kind {
	case textHTML:
		return "<" + t.text + ">"
	case textEsc:
		return `"` + escapeEsc(t.text) + `"`
	default:
		return `"` + escapeString(t.text) + `"`
	}
}

// SuffixLine puts suffix on a line below t with a blank line separator.
// The result is an escString preserving the rendered content of both parts.
func (t Text) SuffixLine(suffix Text) Text {
	return Esc(t.preEscaped() + `\n\n` + suffix.preEscaped())
}

// preEscaped decomposes the content into a string s such that Esc(s) renders
// the same as t.
func (t Text) preEscaped() string {
	if t.kind == textLabel && strings.ContainsAny(t.text, "\\\"\n\r\t") {
		return escapeString(t.text)
	}
	return t.text
}

// escapeEsc escapes for the escString context: quotes and literal control
// characters are escaped, backslashes pass through untouched so Graphviz can
// interpret escString sequences.
func escapeEsc(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// EscapeHTML escapes s for inclusion in a Graphviz HTML-like label.
func EscapeHTML(s string) string {
	r := strings.NewReplacer("&", "&amp;", `"`, "&quot;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}
