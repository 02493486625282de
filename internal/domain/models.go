package domain

import (
	"strconv"
	"unicode/utf8"
)

// Style is one of the Font Awesome style variants an icon can ship in
type Style string

const (
	StyleSolid   Style = "solid"
	StyleRegular Style = "regular"
	StyleLight   Style = "light"
	StyleThin    Style = "thin"
	StyleDuotone Style = "duotone"
	StyleBrands  Style = "brands"
)

// Styles lists every supported style in display order
var Styles = []Style{StyleSolid, StyleRegular, StyleLight, StyleThin, StyleDuotone, StyleBrands}

var stylePrefixes = map[Style]string{
	StyleSolid:   "fas",
	StyleRegular: "far",
	StyleLight:   "fal",
	StyleThin:    "fat",
	StyleDuotone: "fad",
	StyleBrands:  "fab",
}

// Prefix returns the CSS class prefix for the style, or "" when the style is unknown
func (s Style) Prefix() string {
	return stylePrefixes[s]
}

// Label returns the text shown next to an icon key in suggestion labels
func (s Style) Label() string {
	if !s.Valid() {
		return ""
	}
	return string(s)
}

// Valid reports whether the style is one the picker knows how to compose
func (s Style) Valid() bool {
	_, ok := stylePrefixes[s]
	return ok
}

// StyleForPrefix maps a class prefix such as "fab" back to its style
func StyleForPrefix(prefix string) (Style, bool) {
	for style, p := range stylePrefixes {
		if p == prefix {
			return style, true
		}
	}
	return "", false
}

// Icon is one entry of the vendor icon metadata
type Icon struct {
	Key       string
	Label     string
	Styles    []Style
	Terms     []string
	Unicode   string
	Changes   []string
	Voted     bool
	Private   bool
	Ligatures []string
}

// Suggestion is one (icon, style) pairing shown in the pick list
type Suggestion struct {
	Name        string // "<key> (<style>)"
	Value       string // "<prefix> fa-<key>", the string written to the field
	SearchTerms []string
	Style       Style
	Key         string
	Unicode     string
}

// Glyph returns the icon's code point as a printable string, or "" if the unicode value is unusable
func (s Suggestion) Glyph() string {
	cp, err := strconv.ParseUint(s.Unicode, 16, 32)
	if err != nil || cp == 0 || !utf8.ValidRune(rune(cp)) {
		return ""
	}
	return string(rune(cp))
}
