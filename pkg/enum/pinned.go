package enum

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-nativeview/pkg/attr"
)

// PinnedViews is the set of lazy-stack section views pinned while scrolling.
type PinnedViews uint8

const (
	PinnedSectionHeaders PinnedViews = 1 << iota
	PinnedSectionFooters
)

var pinnedTable = NewTable("PinnedScrollableViews",
	Entry[PinnedViews]{Token: "section-headers", Value: PinnedSectionHeaders},
	Entry[PinnedViews]{Token: "section-footers", Value: PinnedSectionFooters},
)

// ParsePinnedViews accepts a space or comma separated token list (markup
// attributes) or a list of tokens (structured values). An empty input is
// the empty set.
func ParsePinnedViews(raw any) (PinnedViews, error) {
	var tokens []string
	switch v := raw.(type) {
	case string:
		tokens = strings.FieldsFunc(v, func(r rune) bool { return r == ' ' || r == ',' })
	case []string:
		tokens = v
	case []any:
		for _, item := range v {
			token, err := attr.ToString(item)
			if err != nil {
				return 0, err
			}
			tokens = append(tokens, token)
		}
	default:
		return 0, fmt.Errorf("expected a token list, got %T", raw)
	}

	var set PinnedViews
	for _, token := range tokens {
		flag, err := pinnedTable.Parse(token)
		if err != nil {
			return 0, err
		}
		set |= flag
	}
	return set, nil
}

// PinnedViewsField declares an optional set field defaulting to empty.
func PinnedViewsField(key string) attr.Field {
	return attr.Field{
		Key:     key,
		Kind:    attr.KindSet,
		Default: PinnedViews(0),
		Parse: func(raw any) (any, error) {
			return ParsePinnedViews(raw)
		},
	}
}

// Has reports whether every flag in other is set.
func (p PinnedViews) Has(other PinnedViews) bool {
	return p&other == other
}

// Tokens lists the set members in declaration order.
func (p PinnedViews) Tokens() []string {
	out := []string{}
	for _, token := range pinnedTable.Tokens() {
		flag, _ := pinnedTable.Lookup(token)
		if p.Has(flag) {
			out = append(out, token)
		}
	}
	return out
}

func (p PinnedViews) String() string {
	return strings.Join(p.Tokens(), " ")
}
