package codegen

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"fapicker/internal/domain"
)

// ErrEmptyMetadata is returned when the metadata document has no content
var ErrEmptyMetadata = errors.New("icon metadata is empty")

// rawIcon mirrors one record of the vendor icons.yml
type rawIcon struct {
	Changes []string `yaml:"changes"`
	Label   string   `yaml:"label"`
	Search  struct {
		Terms []string `yaml:"terms"`
	} `yaml:"search"`
	Styles    []string `yaml:"styles"`
	Unicode   string   `yaml:"unicode"`
	Voted     bool     `yaml:"voted"`
	Private   bool     `yaml:"private"`
	Ligatures []string `yaml:"ligatures"`
}

// Parse decodes vendor icon metadata, a mapping of icon key to record.
// Icons are returned in document order.
func Parse(r io.Reader) ([]domain.Icon, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyMetadata
		}
		return nil, fmt.Errorf("decode metadata: %w", err)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil, ErrEmptyMetadata
		}
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("decode metadata: line %d: top level must be a mapping of icon keys", root.Line)
	}

	icons := make([]domain.Icon, 0, len(root.Content)/2)
	seen := make(map[string]int, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valueNode := root.Content[i], root.Content[i+1]
		key := keyNode.Value
		if line, dup := seen[key]; dup {
			return nil, fmt.Errorf("decode metadata: line %d: duplicate icon %q (first defined on line %d)", keyNode.Line, key, line)
		}
		seen[key] = keyNode.Line

		var raw rawIcon
		if err := valueNode.Decode(&raw); err != nil {
			return nil, fmt.Errorf("decode icon %q: %w", key, err)
		}
		icons = append(icons, toIcon(key, raw))
	}
	return icons, nil
}

func toIcon(key string, raw rawIcon) domain.Icon {
	styles := make([]domain.Style, 0, len(raw.Styles))
	for _, s := range raw.Styles {
		styles = append(styles, domain.Style(s))
	}
	return domain.Icon{
		Key:       key,
		Label:     raw.Label,
		Styles:    styles,
		Terms:     raw.Search.Terms,
		Unicode:   raw.Unicode,
		Changes:   raw.Changes,
		Voted:     raw.Voted,
		Private:   raw.Private,
		Ligatures: raw.Ligatures,
	}
}
