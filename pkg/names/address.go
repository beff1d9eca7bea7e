package names

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Address is an offset in the address space of the analysed target.
type Address uint64

// UndefinedAddress is the distinguished value of an unknown address.  Names
// are never recorded for it.
const UndefinedAddress Address = math.MaxUint64

// IsDefined reports whether a is not UndefinedAddress.
func (a Address) IsDefined() bool {
	return a != UndefinedAddress
}

// String implements fmt.Stringer
func (a Address) String() string {
	if !a.IsDefined() {
		return "undefined"
	}
	return fmt.Sprintf("0x%x", uint64(a))
}

// Hex returns the lower case hexadecimal form of a without a prefix.
func (a Address) Hex() string {
	return strconv.FormatUint(uint64(a), 16)
}

// ParseAddress parses s as a hexadecimal number with a "0x" prefix or as a
// decimal number.  Leading zeros of a decimal number do not select octal.
func ParseAddress(s string) (Address, error) {
	var v uint64
	var err error
	if hex, ok := strings.CutPrefix(strings.ToLower(s), "0x"); ok {
		v, err = strconv.ParseUint(hex, 16, 64)
	} else {
		v, err = strconv.ParseUint(s, 10, 64)
	}
	if err != nil {
		return UndefinedAddress, fmt.Errorf("bad address %q: %w", s, err)
	}
	return Address(v), nil
}
