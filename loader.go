package nativeview

import (
	"io/fs"

	"github.com/goliatone/go-nativeview/pkg/markup"
)

// LoadDocument reads a YAML, JSON or bare markup document from fsys.
func LoadDocument(fsys fs.FS, name string) (Document, error) {
	return markup.LoadDocumentFS(fsys, name)
}

// ParseMarkup parses a markup fragment into its element roots.
func ParseMarkup(src string) ([]*markup.Element, error) {
	return markup.ParseString(src)
}
