// Package icons holds the Font Awesome metadata the picker searches.
//
// FontAwesome is generated from data/icons.yml; refresh it after vendoring a
// new metadata file with `go generate ./internal/icons`.
package icons

//go:generate go run ../../cmd/fagen -in data/icons.yml -out internal/icons/fontawesome_gen.go

import (
	"fmt"
	"os"

	"fapicker/internal/codegen"
	"fapicker/internal/domain"
)

// Load reads icon metadata from a YAML file at runtime, for installations
// that ship a newer metadata file than the one compiled in
func Load(path string) ([]domain.Icon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open icon metadata: %w", err)
	}
	defer f.Close()

	icons, err := codegen.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return icons, nil
}

// Resolve returns the icons from path, or the compiled-in table when path is empty
func Resolve(path string) ([]domain.Icon, error) {
	if path == "" {
		return FontAwesome, nil
	}
	return Load(path)
}
