// Package image extracts the name-bearing metadata of PE and ELF binaries
// in the shape consumed by names.Registry.
package image

import (
	"bytes"
	"debug/dwarf"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/spf13/afero"

	"github.com/stackb/addrnames/pkg/names"
)

// Format is the container format of a binary.
type Format string

const (
	FormatPE  Format = "pe"
	FormatELF Format = "elf"
)

// ErrUnknownFormat is returned for files that are neither PE nor ELF.
var ErrUnknownFormat = errors.New("image: unknown binary format")

// File implements names.Image over metadata read from a binary.
type File struct {
	format   Format
	order    binary.ByteOrder
	imports  *names.ImportTable
	exports  []names.Export
	symbols  [][]names.Symbol
	entry    names.Address
	segments []names.Segment
	dwarf    func() (*dwarf.Data, error)
}

// Open reads the binary at filename from fs and extracts its metadata.
func Open(fs afero.Fs, filename string) (*File, error) {
	data, err := afero.ReadFile(fs, filename)
	if err != nil {
		return nil, fmt.Errorf("reading image %s: %w", filename, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return f, nil
}

// Parse extracts the metadata of the binary held in data.
func Parse(data []byte) (*File, error) {
	switch {
	case bytes.HasPrefix(data, []byte("\x7fELF")):
		return parseELF(bytes.NewReader(data))
	case bytes.HasPrefix(data, []byte("MZ")):
		return parsePE(bytes.NewReader(data))
	default:
		return nil, ErrUnknownFormat
	}
}

// Format returns the container format of f.
func (f *File) Format() Format {
	return f.format
}

// ByteOrder returns the byte order of the binary.
func (f *File) ByteOrder() binary.ByteOrder {
	return f.order
}

// DWARF returns the debug information embedded in the binary.
func (f *File) DWARF() (*dwarf.Data, error) {
	if f.dwarf == nil {
		return nil, fmt.Errorf("image: no debug information")
	}
	return f.dwarf()
}

// ImportTable implements part of the names.Image interface.
func (f *File) ImportTable() *names.ImportTable {
	return f.imports
}

// ExportTable implements part of the names.Image interface.
func (f *File) ExportTable() []names.Export {
	return f.exports
}

// SymbolTables implements part of the names.Image interface.
func (f *File) SymbolTables() [][]names.Symbol {
	return f.symbols
}

// EntryPoint implements part of the names.Image interface.
func (f *File) EntryPoint() (names.Address, bool) {
	return f.entry, f.entry.IsDefined()
}

// Segments implements part of the names.Image interface.
func (f *File) Segments() []names.Segment {
	return f.segments
}
