package collections

import (
	"slices"
	"strings"

	"github.com/stackb/addrnames/pkg/names"
)

// AddressSlice is a repeatable address flag.  Values accept the same
// prefixes as names.ParseAddress.
type AddressSlice []names.Address

func (s *AddressSlice) String() string {
	parts := make([]string, len(*s))
	for i, a := range *s {
		parts[i] = a.String()
	}
	return strings.Join(parts, ",")
}

// Set implements the flag.Value interface.
func (s *AddressSlice) Set(value string) error {
	a, err := names.ParseAddress(value)
	if err != nil {
		return err
	}
	*s = append(*s, a)
	return nil
}

// Filter returns the members of addrs that are in s, in the order of addrs.
// An empty s keeps everything.
func (s AddressSlice) Filter(addrs []names.Address) []names.Address {
	if len(s) == 0 {
		return addrs
	}
	return slices.DeleteFunc(slices.Clone(addrs), func(a names.Address) bool {
		return !slices.Contains(s, a)
	})
}
