package codegen

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"

	"fapicker/internal/domain"
)

// Options controls the generated file
type Options struct {
	Package      string // package clause of the generated file
	Var          string // name of the generated slice
	Source       string // shown in the generated header
	DomainImport string // import path of the domain package
}

// DefaultOptions matches the layout of internal/icons
func DefaultOptions() Options {
	return Options{
		Package:      "icons",
		Var:          "FontAwesome",
		Source:       "icons.yml",
		DomainImport: "fapicker/internal/domain",
	}
}

var fileTemplate = template.Must(template.New("icons").Funcs(template.FuncMap{
	"quote":   strconv.Quote,
	"strings": quoteList,
	"styles":  styleList,
}).Parse(`// Code generated by fagen from {{ .Source }}; DO NOT EDIT.

package {{ .Package }}

import "{{ .DomainImport }}"

// {{ .Var }} lists every icon of the vendored metadata in file order.
var {{ .Var }} = []domain.Icon{
{{- range .Icons }}
	{
		Key:     {{ quote .Key }},
		Label:   {{ quote .Label }},
		Styles:  {{ styles .Styles }},
		Terms:   {{ strings .Terms }},
		Unicode: {{ quote .Unicode }},
		Changes: {{ strings .Changes }},
		{{- if .Voted }}
		Voted: true,
		{{- end }}
		{{- if .Private }}
		Private: true,
		{{- end }}
		{{- if .Ligatures }}
		Ligatures: {{ strings .Ligatures }},
		{{- end }}
	},
{{- end }}
}
`))

// Render produces a gofmt'd Go source file declaring icons as a typed slice
func Render(icons []domain.Icon, opts Options) ([]byte, error) {
	if opts.Package == "" || opts.Var == "" || opts.DomainImport == "" {
		return nil, fmt.Errorf("render icons: package, var and domain import are required")
	}

	var buf bytes.Buffer
	err := fileTemplate.Execute(&buf, struct {
		Options
		Icons []domain.Icon
	}{opts, icons})
	if err != nil {
		return nil, fmt.Errorf("render icons: %w", err)
	}

	src, err := imports.Process(opts.Package+".go", buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return src, nil
}

func quoteList(items []string) string {
	if items == nil {
		return "nil"
	}
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = strconv.Quote(s)
	}
	return "[]string{" + strings.Join(quoted, ", ") + "}"
}

func styleList(styles []domain.Style) string {
	quoted := make([]string, len(styles))
	for i, s := range styles {
		quoted[i] = strconv.Quote(string(s))
	}
	return "[]domain.Style{" + strings.Join(quoted, ", ") + "}"
}
