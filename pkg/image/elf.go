package image

import (
	"debug/elf"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/stackb/addrnames/pkg/names"
)

func parseELF(r io.ReaderAt) (*File, error) {
	f, err := elf.NewFile(r)
	if err != nil {
		return nil, fmt.Errorf("parsing ELF: %w", err)
	}

	img := &File{
		format: FormatELF,
		order:  f.ByteOrder,
		entry:  names.UndefinedAddress,
		dwarf:  f.DWARF,
	}
	if f.Entry != 0 {
		img.entry = names.Address(f.Entry)
	}

	static, err := f.Symbols()
	if err != nil && !errors.Is(err, elf.ErrNoSymbols) {
		return nil, fmt.Errorf("reading symbols: %w", err)
	}
	dynamic, err := f.DynamicSymbols()
	if err != nil && !errors.Is(err, elf.ErrNoSymbols) {
		return nil, fmt.Errorf("reading dynamic symbols: %w", err)
	}

	for _, syms := range [][]elf.Symbol{static, dynamic} {
		if len(syms) == 0 {
			continue
		}
		table := make([]names.Symbol, 0, len(syms))
		for _, sym := range syms {
			table = append(table, elfSymbol(sym))
		}
		img.symbols = append(img.symbols, table)
	}

	img.exports = elfExports(dynamic)

	if len(dynamic) > 0 {
		libs, err := f.ImportedLibraries()
		if err != nil {
			return nil, fmt.Errorf("reading imported libraries: %w", err)
		}
		imports, err := elfImports(f, dynamic, libs)
		if err != nil {
			return nil, err
		}
		img.imports = imports
	}

	for _, sec := range f.Sections {
		if sec.Flags&elf.SHF_ALLOC == 0 || sec.Addr == 0 {
			continue
		}
		img.segments = append(img.segments, names.Segment{
			Address: names.Address(sec.Addr),
			Name:    sec.Name,
		})
	}

	return img, nil
}

func elfUsage(info byte) names.SymbolUsage {
	switch elf.ST_TYPE(info) {
	case elf.STT_FUNC, elf.STT_GNU_IFUNC:
		return names.SymbolUsageFunction
	case elf.STT_OBJECT, elf.STT_TLS:
		return names.SymbolUsageObject
	case elf.STT_FILE:
		return names.SymbolUsageFile
	default:
		return names.SymbolUsageOther
	}
}

func elfSymbol(sym elf.Symbol) names.Symbol {
	s := names.Symbol{
		Name:    sym.Name,
		Address: names.UndefinedAddress,
		Usage:   elfUsage(sym.Info),
	}
	if sym.Section != elf.SHN_UNDEF && s.Usage != names.SymbolUsageFile {
		s.Address = names.Address(sym.Value)
	}
	return s
}

// elfExports lists the defined global functions and objects of the dynamic
// symbol table.
func elfExports(dynamic []elf.Symbol) []names.Export {
	var exports []names.Export
	for _, sym := range dynamic {
		if sym.Section == elf.SHN_UNDEF || sym.Name == "" {
			continue
		}
		switch elf.ST_BIND(sym.Info) {
		case elf.STB_GLOBAL, elf.STB_WEAK:
		default:
			continue
		}
		switch elfUsage(sym.Info) {
		case names.SymbolUsageFunction, names.SymbolUsageObject:
			exports = append(exports, names.Export{
				Address: names.Address(sym.Value),
				Name:    sym.Name,
			})
		}
	}
	return exports
}

// elfImports names the relocation targets that refer to undefined dynamic
// symbols.  The address of an import is the address of the relocated slot.
func elfImports(f *elf.File, dynamic []elf.Symbol, libs []string) (*names.ImportTable, error) {
	table := &names.ImportTable{Libraries: libs}
	seen := make(map[names.Address]bool)

	for _, sec := range f.Sections {
		if sec.Type != elf.SHT_REL && sec.Type != elf.SHT_RELA {
			continue
		}
		if int(sec.Link) >= len(f.Sections) || f.Sections[sec.Link].Type != elf.SHT_DYNSYM {
			continue
		}
		data, err := sec.Data()
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", sec.Name, err)
		}
		for _, rel := range decodeRelocations(f, data, sec.Type == elf.SHT_RELA) {
			if rel.sym == 0 || int(rel.sym) > len(dynamic) {
				continue
			}
			// the symbol slice omits the null symbol at index 0
			sym := dynamic[rel.sym-1]
			if sym.Section != elf.SHN_UNDEF || sym.Name == "" {
				continue
			}
			addr := names.Address(rel.off)
			if seen[addr] {
				continue
			}
			seen[addr] = true
			table.Imports = append(table.Imports, names.Import{
				Address:      addr,
				Name:         sym.Name,
				LibraryIndex: slices.Index(libs, sym.Library),
			})
		}
	}
	return table, nil
}

type relocation struct {
	off uint64
	sym uint32
}

func decodeRelocations(f *elf.File, data []byte, addend bool) []relocation {
	order := f.ByteOrder
	var rels []relocation
	if f.Class == elf.ELFCLASS64 {
		size := 16
		if addend {
			size = 24
		}
		for ; len(data) >= size; data = data[size:] {
			rels = append(rels, relocation{
				off: order.Uint64(data[0:]),
				sym: elf.R_SYM64(order.Uint64(data[8:])),
			})
		}
		return rels
	}
	size := 8
	if addend {
		size = 12
	}
	for ; len(data) >= size; data = data[size:] {
		rels = append(rels, relocation{
			off: uint64(order.Uint32(data[0:])),
			sym: elf.R_SYM32(order.Uint32(data[4:])),
		})
	}
	return rels
}
