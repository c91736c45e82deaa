package enum

import (
	"fmt"

	"github.com/goliatone/go-nativeview/pkg/attr"
)

// VerticalAlignment positions children of a horizontal stack.
type VerticalAlignment int

const (
	VerticalCenter VerticalAlignment = iota
	VerticalTop
	VerticalBottom
	VerticalFirstTextBaseline
	VerticalLastTextBaseline
)

var verticalTable = NewTable("VerticalAlignment",
	Entry[VerticalAlignment]{Token: "center", Value: VerticalCenter},
	Entry[VerticalAlignment]{Token: "top", Value: VerticalTop},
	Entry[VerticalAlignment]{Token: "bottom", Value: VerticalBottom},
	Entry[VerticalAlignment]{Token: "firstTextBaseline", Value: VerticalFirstTextBaseline},
	Entry[VerticalAlignment]{Token: "lastTextBaseline", Value: VerticalLastTextBaseline},
)

// ParseVerticalAlignment maps a token onto a VerticalAlignment.
func ParseVerticalAlignment(token string) (VerticalAlignment, error) {
	return decodeToken(verticalTable, token)
}

// VerticalAlignmentField declares an optional field defaulting to center.
func VerticalAlignmentField(key string) attr.Field {
	return Field(key, verticalTable, false, VerticalCenter)
}

func (a VerticalAlignment) String() string {
	if token, ok := verticalTable.Token(a); ok {
		return token
	}
	return fmt.Sprintf("VerticalAlignment(%d)", int(a))
}

// MarshalText implements encoding.TextMarshaler.
func (a VerticalAlignment) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *VerticalAlignment) UnmarshalText(text []byte) error {
	parsed, err := ParseVerticalAlignment(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// HorizontalAlignment positions children of a vertical stack.
type HorizontalAlignment int

const (
	HorizontalCenter HorizontalAlignment = iota
	HorizontalLeading
	HorizontalTrailing
)

var horizontalTable = NewTable("HorizontalAlignment",
	Entry[HorizontalAlignment]{Token: "center", Value: HorizontalCenter},
	Entry[HorizontalAlignment]{Token: "leading", Value: HorizontalLeading},
	Entry[HorizontalAlignment]{Token: "trailing", Value: HorizontalTrailing},
)

// ParseHorizontalAlignment maps a token onto a HorizontalAlignment.
func ParseHorizontalAlignment(token string) (HorizontalAlignment, error) {
	return decodeToken(horizontalTable, token)
}

// HorizontalAlignmentField declares an optional field defaulting to center.
func HorizontalAlignmentField(key string) attr.Field {
	return Field(key, horizontalTable, false, HorizontalCenter)
}

func (a HorizontalAlignment) String() string {
	if token, ok := horizontalTable.Token(a); ok {
		return token
	}
	return fmt.Sprintf("HorizontalAlignment(%d)", int(a))
}

// MarshalText implements encoding.TextMarshaler.
func (a HorizontalAlignment) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *HorizontalAlignment) UnmarshalText(text []byte) error {
	parsed, err := ParseHorizontalAlignment(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
