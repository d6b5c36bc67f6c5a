package dot

// Style is one of the graphviz style keywords for a node, edge or subgraph.
// See https://www.graphviz.org/doc/info/attrs.html#k:style for descriptions.
// Note that some of these are not valid for edges. StyleNone means no style
// attribute is emitted.
type Style int

const (
	StyleNone Style = iota
	StyleSolid
	StyleDashed
	StyleDotted
	StyleBold
	StyleRounded
	StyleDiagonals
	StyleFilled
	StyleStriped
	StyleWedged
)

var styleNames = [...]string{
	StyleNone:      "",
	StyleSolid:     "solid",
	StyleDashed:    "dashed",
	StyleDotted:    "dotted",
	StyleBold:      "bold",
	StyleRounded:   "rounded",
	StyleDiagonals: "diagonals",
	StyleFilled:    "filled",
	StyleStriped:   "striped",
	StyleWedged:    "wedged",
}

// String returns the style keyword, or the empty string for StyleNone.
func (s Style) String() string {
	if s < 0 || int(s) >= len(styleNames) {
		return ""
	}
	return styleNames[s]
}

// ParseStyle maps a style keyword to its Style value.
// The empty string maps to StyleNone. Unknown keywords return false.
func ParseStyle(name string) (Style, bool) {
	for st, n := range styleNames {
		if n == name {
			return Style(st), true
		}
	}
	return StyleNone, false
}
