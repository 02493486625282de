package config

import (
	"slices"

	"fapicker/internal/domain"
)

// Parameters is the installation configuration with every option resolved
type Parameters struct {
	AllowedStyles     []domain.Style
	DefaultStyle      domain.Style
	MaxSuggestions    Number
	MinSearchChars    Number
	SearchInTerms     bool
	SearchInNames     bool
	SearchInValues    bool
	IconSize          Number
	PlaceholderText   string
	PreviewBackground string
	PreviewBorder     string
}

// StoredParameters is the persisted shape of the installation configuration.
// A nil field was never saved and takes its default.
type StoredParameters struct {
	AllowedStyles     *[]domain.Style `toml:"allowedStyles,omitempty" json:"allowedStyles,omitempty"`
	DefaultStyle      *domain.Style   `toml:"defaultStyle,omitempty" json:"defaultStyle,omitempty"`
	MaxSuggestions    *Number         `toml:"maxSuggestions,omitempty" json:"maxSuggestions,omitempty"`
	MinSearchChars    *Number         `toml:"minSearchChars,omitempty" json:"minSearchChars,omitempty"`
	SearchInTerms     *bool           `toml:"searchInTerms,omitempty" json:"searchInTerms,omitempty"`
	SearchInNames     *bool           `toml:"searchInNames,omitempty" json:"searchInNames,omitempty"`
	SearchInValues    *bool           `toml:"searchInValues,omitempty" json:"searchInValues,omitempty"`
	IconSize          *Number         `toml:"iconSize,omitempty" json:"iconSize,omitempty"`
	PlaceholderText   *string         `toml:"placeholderText,omitempty" json:"placeholderText,omitempty"`
	PreviewBackground *string         `toml:"previewBackground,omitempty" json:"previewBackground,omitempty"`
	PreviewBorder     *string         `toml:"previewBorder,omitempty" json:"previewBorder,omitempty"`
}

// Defaults returns the configuration a fresh installation starts with
func Defaults() Parameters {
	return Parameters{
		AllowedStyles:     slices.Clone(domain.Styles),
		DefaultStyle:      domain.StyleSolid,
		MaxSuggestions:    5,
		MinSearchChars:    2,
		SearchInTerms:     true,
		SearchInNames:     true,
		SearchInValues:    true,
		IconSize:          36,
		PlaceholderText:   "Search icons... (type at least 2 characters)",
		PreviewBackground: "#eee",
		PreviewBorder:     "#E5E5E5",
	}
}

// ApplyDefaults overlays every persisted option onto the defaults.
// A nil stored value yields the defaults unchanged.
func ApplyDefaults(stored *StoredParameters) Parameters {
	p := Defaults()
	if stored == nil {
		return p
	}
	if stored.AllowedStyles != nil {
		p.AllowedStyles = slices.Clone(*stored.AllowedStyles)
		if p.AllowedStyles == nil {
			p.AllowedStyles = []domain.Style{}
		}
	}
	if stored.DefaultStyle != nil {
		p.DefaultStyle = *stored.DefaultStyle
	}
	if stored.MaxSuggestions != nil {
		p.MaxSuggestions = *stored.MaxSuggestions
	}
	if stored.MinSearchChars != nil {
		p.MinSearchChars = *stored.MinSearchChars
	}
	if stored.SearchInTerms != nil {
		p.SearchInTerms = *stored.SearchInTerms
	}
	if stored.SearchInNames != nil {
		p.SearchInNames = *stored.SearchInNames
	}
	if stored.SearchInValues != nil {
		p.SearchInValues = *stored.SearchInValues
	}
	if stored.IconSize != nil {
		p.IconSize = *stored.IconSize
	}
	if stored.PlaceholderText != nil {
		p.PlaceholderText = *stored.PlaceholderText
	}
	if stored.PreviewBackground != nil {
		p.PreviewBackground = *stored.PreviewBackground
	}
	if stored.PreviewBorder != nil {
		p.PreviewBorder = *stored.PreviewBorder
	}
	return p
}

// Stored returns the full configuration in its persisted shape
func (p Parameters) Stored() *StoredParameters {
	styles := slices.Clone(p.AllowedStyles)
	if styles == nil {
		styles = []domain.Style{}
	}
	return &StoredParameters{
		AllowedStyles:     &styles,
		DefaultStyle:      ptr(p.DefaultStyle),
		MaxSuggestions:    ptr(p.MaxSuggestions),
		MinSearchChars:    ptr(p.MinSearchChars),
		SearchInTerms:     ptr(p.SearchInTerms),
		SearchInNames:     ptr(p.SearchInNames),
		SearchInValues:    ptr(p.SearchInValues),
		IconSize:          ptr(p.IconSize),
		PlaceholderText:   ptr(p.PlaceholderText),
		PreviewBackground: ptr(p.PreviewBackground),
		PreviewBorder:     ptr(p.PreviewBorder),
	}
}

// Allows reports whether suggestions of the given style may be offered
func (p Parameters) Allows(style domain.Style) bool {
	return slices.Contains(p.AllowedStyles, style)
}

// ToggleStyle enables or disables a single style, leaving the others untouched
func (p *Parameters) ToggleStyle(style domain.Style, enabled bool) {
	if enabled {
		if !p.Allows(style) {
			p.AllowedStyles = append(p.AllowedStyles, style)
		}
		return
	}
	p.AllowedStyles = slices.DeleteFunc(slices.Clone(p.AllowedStyles), func(s domain.Style) bool {
		return s == style
	})
}

func ptr[T any](v T) *T {
	return &v
}

// EffectiveStyles returns the styles searches are restricted to. With every
// style switched off only the default style is offered.
func (p Parameters) EffectiveStyles() []domain.Style {
	if len(p.AllowedStyles) > 0 || !p.DefaultStyle.Valid() {
		return p.AllowedStyles
	}
	return []domain.Style{p.DefaultStyle}
}

// Clone returns a deep copy; nil stays nil
func (s *StoredParameters) Clone() *StoredParameters {
	if s == nil {
		return nil
	}
	c := &StoredParameters{
		DefaultStyle:      clonePtr(s.DefaultStyle),
		MaxSuggestions:    clonePtr(s.MaxSuggestions),
		MinSearchChars:    clonePtr(s.MinSearchChars),
		SearchInTerms:     clonePtr(s.SearchInTerms),
		SearchInNames:     clonePtr(s.SearchInNames),
		SearchInValues:    clonePtr(s.SearchInValues),
		IconSize:          clonePtr(s.IconSize),
		PlaceholderText:   clonePtr(s.PlaceholderText),
		PreviewBackground: clonePtr(s.PreviewBackground),
		PreviewBorder:     clonePtr(s.PreviewBorder),
	}
	if s.AllowedStyles != nil {
		styles := slices.Clone(*s.AllowedStyles)
		if styles == nil {
			styles = []domain.Style{}
		}
		c.AllowedStyles = &styles
	}
	return c
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	return ptr(*p)
}
