package names

import (
	"cmp"
	"fmt"
	"strings"
)

// importPrefixes are artifacts left on names of import thunks.  They are
// removed on construction, first match only.
var importPrefixes = []string{
	"__imp_",
	"_imp__",
	"_imp_",
}

// Name is a candidate name for an address together with the origin that
// proposed it.  Names are values and never change once constructed.
//
// The zero Name is the empty name: it has no text, OriginInvalid, and is
// not valid.
type Name struct {
	text   string
	origin Origin
}

// EmptyName is returned where no name is known.
var EmptyName = Name{}

// NewName constructs a Name, normalizing text.
func NewName(text string, origin Origin) Name {
	return Name{
		text:   normalizeText(text),
		origin: origin,
	}
}

func normalizeText(text string) string {
	for _, prefix := range importPrefixes {
		if strings.HasPrefix(text, prefix) {
			text = text[len(prefix):]
			break
		}
	}
	if text == "_main" {
		text = "main"
	}
	return text
}

// Text returns the normalized name.
func (n Name) Text() string {
	return n.text
}

// Origin returns the kind of source the name came from.
func (n Name) Origin() Origin {
	return n.origin
}

// IsValid reports whether n is a real name rather than the empty name.
func (n Name) IsValid() bool {
	return n.origin.Valid() && n.text != ""
}

// Less reports whether n is preferred over o.
func (n Name) Less(o Name) bool {
	return Compare(n, o) < 0
}

// String implements fmt.Stringer
func (n Name) String() string {
	return fmt.Sprintf("%s<%v>", n.text, n.origin)
}

// Compare orders names by origin rank, then by text.  It returns a negative
// number when a is preferred over b, zero when they are equal and a
// positive number otherwise.
func Compare(a, b Name) int {
	if c := cmp.Compare(a.origin.Rank(), b.origin.Rank()); c != 0 {
		return c
	}
	if c := strings.Compare(a.text, b.text); c != 0 {
		return c
	}
	// distinct out-of-range origins share a rank
	return cmp.Compare(a.origin, b.origin)
}
