// Package nameconfig loads the configuration collaborator of a
// names.Registry from HCL files.
//
// A configuration file looks like:
//
//	entry_point       = "0x401000"
//	ordinal_directory = "ordinals"
//
//	function "init" {
//	  start = "0x401000"
//	}
//
//	global "counter" {
//	  address = "0x403000"
//	}
//
//	segment ".text" {
//	  start = "0x401000"
//	}
//
// Addresses are strings so that they can be written in hexadecimal with a
// "0x" prefix.  Anything else is decimal, leading zeros included.  A global
// without an address is not stored in memory.
package nameconfig

import (
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/spf13/afero"

	"github.com/stackb/addrnames/pkg/names"
)

// hclConfigFile is the decoding target of a configuration file.
type hclConfigFile struct {
	EntryPoint       *string      `hcl:"entry_point,optional"`
	OrdinalDirectory string       `hcl:"ordinal_directory,optional"`
	Functions        []*hclSymbol `hcl:"function,block"`
	Globals          []*hclGlobal `hcl:"global,block"`
	Segments         []*hclSymbol `hcl:"segment,block"`
}

type hclSymbol struct {
	Name  string `hcl:"name,label"`
	Start string `hcl:"start"`
}

type hclGlobal struct {
	Name    string  `hcl:"name,label"`
	Address *string `hcl:"address,optional"`
}

// Config implements names.Config.
type Config struct {
	entryPoint names.Address
	functions  []names.ConfigFunction
	globals    []names.ConfigGlobal
	segments   []names.ConfigSegment
	ordinalDir string
}

// New returns a configuration that declares nothing.
func New() *Config {
	return &Config{entryPoint: names.UndefinedAddress}
}

// LoadFile reads and decodes the configuration file filename from fs.
func LoadFile(fs afero.Fs, filename string) (*Config, error) {
	src, err := afero.ReadFile(fs, filename)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", filename, err)
	}
	return Parse(filename, src)
}

// Parse decodes src.  filename selects the syntax (".hcl" or ".json") and
// anchors a relative ordinal_directory.
func Parse(filename string, src []byte) (*Config, error) {
	var file hclConfigFile
	if err := hclsimple.Decode(filename, src, nil, &file); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", filename, err)
	}

	c := New()

	if file.EntryPoint != nil {
		ep, err := names.ParseAddress(*file.EntryPoint)
		if err != nil {
			return nil, fmt.Errorf("%s: entry_point: %w", filename, err)
		}
		c.entryPoint = ep
	}

	for _, fn := range file.Functions {
		start, err := names.ParseAddress(fn.Start)
		if err != nil {
			return nil, fmt.Errorf("%s: function %q: %w", filename, fn.Name, err)
		}
		c.functions = append(c.functions, names.ConfigFunction{Start: start, Name: fn.Name})
	}

	for _, g := range file.Globals {
		addr := names.UndefinedAddress
		if g.Address != nil {
			a, err := names.ParseAddress(*g.Address)
			if err != nil {
				return nil, fmt.Errorf("%s: global %q: %w", filename, g.Name, err)
			}
			addr = a
		}
		c.globals = append(c.globals, names.ConfigGlobal{Address: addr, Name: g.Name})
	}

	for _, seg := range file.Segments {
		start, err := names.ParseAddress(seg.Start)
		if err != nil {
			return nil, fmt.Errorf("%s: segment %q: %w", filename, seg.Name, err)
		}
		c.segments = append(c.segments, names.ConfigSegment{Start: start, Name: seg.Name})
	}

	c.ordinalDir = file.OrdinalDirectory
	if c.ordinalDir != "" && !filepath.IsAbs(c.ordinalDir) {
		c.ordinalDir = filepath.Join(filepath.Dir(filename), c.ordinalDir)
	}

	return c, nil
}

// SetOrdinalNumbersDirectory overrides the directory of ordinal tables.
func (c *Config) SetOrdinalNumbersDirectory(dir string) {
	c.ordinalDir = dir
}

// EntryPoint implements part of the names.Config interface.
func (c *Config) EntryPoint() names.Address {
	return c.entryPoint
}

// Functions implements part of the names.Config interface.
func (c *Config) Functions() []names.ConfigFunction {
	return c.functions
}

// Globals implements part of the names.Config interface.
func (c *Config) Globals() []names.ConfigGlobal {
	return c.globals
}

// Segments implements part of the names.Config interface.
func (c *Config) Segments() []names.ConfigSegment {
	return c.segments
}

// OrdinalNumbersDirectory implements part of the names.Config interface.
func (c *Config) OrdinalNumbersDirectory() string {
	return c.ordinalDir
}
