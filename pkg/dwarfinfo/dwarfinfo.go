// Package dwarfinfo reads function and global variable names from DWARF
// debug information.
package dwarfinfo

import (
	"debug/dwarf"
	"encoding/binary"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/stackb/addrnames/pkg/names"
)

// DW_OP_addr, followed by a target address.
const opAddr = 0x03

// Info implements names.DebugInfo.
type Info struct {
	functions []names.DebugFunction
	globals   []names.DebugGlobal
}

// Option configures New.
type Option func(*options)

type options struct {
	logger zerolog.Logger
}

// WithLogger sets the logger that reports skipped entries.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// New collects the named subprograms and variables of d.  order is the byte
// order of the binary d was read from and is used to decode location
// expressions.
func New(d *dwarf.Data, order binary.ByteOrder, opts ...Option) (*Info, error) {
	o := options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	info := &Info{}
	r := d.Reader()
	for {
		e, err := r.Next()
		if err != nil {
			return nil, fmt.Errorf("reading debug info: %w", err)
		}
		if e == nil {
			break
		}

		switch e.Tag {
		case dwarf.TagSubprogram:
			// locals and nested scopes are not of interest
			if e.Children {
				r.SkipChildren()
			}
			name, _ := e.Val(dwarf.AttrName).(string)
			if name == "" {
				continue
			}
			low, ok := lowPC(d, e)
			if !ok {
				o.logger.Trace().Str("function", name).Msg("no low pc")
				continue
			}
			info.functions = append(info.functions, names.DebugFunction{
				Address: names.Address(low),
				Name:    name,
			})
		case dwarf.TagVariable:
			name, _ := e.Val(dwarf.AttrName).(string)
			if name == "" {
				continue
			}
			info.globals = append(info.globals, names.DebugGlobal{
				Name:     name,
				Location: location(e, order),
			})
		}
	}

	o.logger.Debug().
		Int("functions", len(info.functions)).
		Int("globals", len(info.globals)).
		Msg("debug info loaded")

	return info, nil
}

// Functions implements part of the names.DebugInfo interface.
func (i *Info) Functions() []names.DebugFunction {
	if i == nil {
		return nil
	}
	return i.functions
}

// Globals implements part of the names.DebugInfo interface.
func (i *Info) Globals() []names.DebugGlobal {
	if i == nil {
		return nil
	}
	return i.globals
}

func lowPC(d *dwarf.Data, e *dwarf.Entry) (uint64, bool) {
	if low, ok := e.Val(dwarf.AttrLowpc).(uint64); ok {
		return low, true
	}
	ranges, err := d.Ranges(e)
	if err != nil || len(ranges) == 0 {
		return 0, false
	}
	return ranges[0][0], true
}

// location decodes a single DW_OP_addr expression.  Anything else, including
// location lists, is a register or stack location.
func location(e *dwarf.Entry, order binary.ByteOrder) names.Location {
	expr, ok := e.Val(dwarf.AttrLocation).([]byte)
	if !ok || len(expr) == 0 || expr[0] != opAddr {
		return names.Location{}
	}
	switch operand := expr[1:]; len(operand) {
	case 4:
		return names.Location{IsMemory: true, Address: names.Address(order.Uint32(operand))}
	case 8:
		return names.Location{IsMemory: true, Address: names.Address(order.Uint64(operand))}
	default:
		return names.Location{}
	}
}
