// Package demangler provides the demangler collaborator of a names.Registry.
package demangler

import (
	"fmt"

	"github.com/ianlancetaylor/demangle"
)

// Mode selects how much of a demangled name is kept.
type Mode string

const (
	// None returns names unchanged.
	None Mode = "none"
	// Simplified drops parameters and template arguments.
	Simplified Mode = "simplified"
	// Templates drops parameters but keeps template arguments.
	Templates Mode = "templates"
	// Full keeps everything except clone suffixes.
	Full Mode = "full"
)

// ParseMode validates s as a Mode.  The empty string selects Full.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case None, Simplified, Templates, Full:
		return m, nil
	case "":
		return Full, nil
	default:
		return "", fmt.Errorf("unknown demangle mode %q (want none, simplified, templates or full)", s)
	}
}

func (m Mode) options() []demangle.Option {
	switch m {
	case Simplified:
		return []demangle.Option{demangle.NoParams, demangle.NoEnclosingParams, demangle.NoTemplateParams}
	case Templates:
		return []demangle.Option{demangle.NoParams, demangle.NoEnclosingParams}
	default:
		return []demangle.Option{demangle.NoClones}
	}
}

// Demangler demangles C++ (Itanium) and Rust symbol names.  Names that are
// not mangled are returned as they are.
type Demangler struct {
	mode Mode
	opts []demangle.Option
}

// New constructs a Demangler.
func New(mode Mode) *Demangler {
	return &Demangler{mode: mode, opts: mode.options()}
}

// Mode returns the mode of d.
func (d *Demangler) Mode() Mode {
	return d.mode
}

// Demangle implements the names.Demangler interface.
func (d *Demangler) Demangle(name string) string {
	if d.mode == None {
		return name
	}
	return demangle.Filter(name, d.opts...)
}
