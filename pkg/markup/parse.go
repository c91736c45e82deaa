package markup

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Parse reads markup and returns its root elements. Tag and attribute names
// are lower-cased; whitespace-only text is dropped and other text trimmed.
// Unclosed or mismatched tags are errors.
func Parse(r io.Reader) ([]*Element, error) {
	z := html.NewTokenizer(r)
	root := &Element{}
	stack := []*Element{root}

	top := func() *Element { return stack[len(stack)-1] }

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("markup: %w", err)
			}
			if len(stack) > 1 {
				return nil, fmt.Errorf("markup: unclosed <%s>", top().Tag)
			}
			return root.Children, nil

		case html.TextToken:
			text := strings.TrimSpace(string(z.Text()))
			if text != "" {
				parent := top()
				parent.Children = append(parent.Children, &Element{Text: text})
			}

		case html.StartTagToken, html.SelfClosingTagToken:
			el := newElement(z)
			parent := top()
			parent.Children = append(parent.Children, el)
			if tt == html.StartTagToken {
				stack = append(stack, el)
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if len(stack) == 1 {
				return nil, fmt.Errorf("markup: unexpected </%s>", tag)
			}
			if open := top().Tag; open != tag {
				return nil, fmt.Errorf("markup: </%s> closes <%s>", tag, open)
			}
			stack = stack[:len(stack)-1]
		}
	}
}

// ParseString is Parse over a string.
func ParseString(s string) ([]*Element, error) {
	return Parse(strings.NewReader(s))
}

// ParseBytes is Parse over a byte slice.
func ParseBytes(b []byte) ([]*Element, error) {
	return Parse(bytes.NewReader(b))
}

func newElement(z *html.Tokenizer) *Element {
	name, hasAttr := z.TagName()
	el := &Element{Tag: string(name)}
	for hasAttr {
		var key, val []byte
		key, val, hasAttr = z.TagAttr()
		if el.Attrs == nil {
			el.Attrs = make(map[string]string)
		}
		el.Attrs[string(key)] = string(val)
	}
	return el
}
