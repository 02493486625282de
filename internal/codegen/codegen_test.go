package codegen

import (
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"fapicker/internal/domain"
)

const sampleMetadata = `
zebra:
  changes: ['6.0.0']
  label: Zebra
  search:
    terms: [stripes, animal]
  styles: [solid, light]
  unicode: e000
apple:
  changes: ['5.0.0']
  label: Apple
  search:
    terms: []
  styles: [brands]
  unicode: f179
  voted: true
  private: true
  ligatures: [apple]
"100":
  label: Hundred
  search:
    terms: [100, percent]
  styles: [solid]
  unicode: e41c
`

func TestParsePreservesDocumentOrder(t *testing.T) {
	icons, err := Parse(strings.NewReader(sampleMetadata))
	require.NoError(t, err)
	require.Len(t, icons, 3)

	require.Equal(t, "zebra", icons[0].Key)
	require.Equal(t, "apple", icons[1].Key)
	require.Equal(t, "100", icons[2].Key)
}

func TestParseMapsAllFields(t *testing.T) {
	icons, err := Parse(strings.NewReader(sampleMetadata))
	require.NoError(t, err)

	zebra := icons[0]
	require.Equal(t, "Zebra", zebra.Label)
	require.Equal(t, []domain.Style{domain.StyleSolid, domain.StyleLight}, zebra.Styles)
	require.Equal(t, []string{"stripes", "animal"}, zebra.Terms)
	require.Equal(t, "e000", zebra.Unicode)
	require.Equal(t, []string{"6.0.0"}, zebra.Changes)
	require.False(t, zebra.Voted)

	apple := icons[1]
	require.True(t, apple.Voted)
	require.True(t, apple.Private)
	require.Equal(t, []string{"apple"}, apple.Ligatures)
	require.Empty(t, apple.Terms)

	require.Equal(t, []string{"100", "percent"}, icons[2].Terms, "numeric terms are kept as text")
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ErrEmptyMetadata.Error()},
		{name: "not a mapping", in: "- a\n- b\n", want: "top level must be a mapping"},
		{name: "duplicate", in: "a:\n  label: A\na:\n  label: B\n", want: `duplicate icon "a"`},
		{name: "bad record", in: "a:\n  styles: solid-not-a-list\n  search: {terms: [x]}\n", want: `decode icon "a"`},
		{name: "syntax", in: "a: [unclosed\n", want: "decode metadata"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.in))
			require.ErrorContains(t, err, tt.want)
		})
	}
}

func TestParseEmptyIsSentinel(t *testing.T) {
	_, err := Parse(strings.NewReader(""))
	require.ErrorIs(t, err, ErrEmptyMetadata)
}

func TestRenderProducesValidGo(t *testing.T) {
	icons, err := Parse(strings.NewReader(sampleMetadata))
	require.NoError(t, err)

	src, err := Render(icons, DefaultOptions())
	require.NoError(t, err)

	out := string(src)
	require.True(t, strings.HasPrefix(out, "// Code generated by fagen from icons.yml; DO NOT EDIT.\n"))
	require.Contains(t, out, "package icons")
	require.Contains(t, out, "var FontAwesome = []domain.Icon{")
	require.Contains(t, out, `[]domain.Style{"solid", "light"}`)
	require.Contains(t, out, `Ligatures: []string{"apple"}`)
	require.Less(t, strings.Index(out, `"zebra"`), strings.Index(out, `"apple"`))

	_, err = parser.ParseFile(token.NewFileSet(), "icons.go", src, parser.AllErrors)
	require.NoError(t, err)
}

func TestRenderQuotesSpecialCharacters(t *testing.T) {
	src, err := Render([]domain.Icon{{
		Key:    "quote",
		Label:  `Say "hi"\n`,
		Styles: []domain.Style{domain.StyleSolid},
	}}, DefaultOptions())
	require.NoError(t, err)
	require.Contains(t, string(src), `"Say \"hi\"\\n"`)
	require.Contains(t, string(src), "Terms:   nil")
}

func TestRenderRequiresNames(t *testing.T) {
	opts := DefaultOptions()
	opts.Var = ""
	_, err := Render(nil, opts)
	require.Error(t, err)
}
