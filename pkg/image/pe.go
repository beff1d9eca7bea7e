package image

import (
	"debug/pe"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/stackb/addrnames/pkg/names"
)

const (
	peDirExport = 0
	peDirImport = 1

	peImportDescriptorSize = 20
	peExportDirectorySize  = 40

	// IMAGE_SYM_DTYPE_FUNCTION in the derived type bits of a COFF symbol.
	peSymTypeFunction = 0x20
	peSymClassFile    = 103
	peSectionCode     = 0x00000020

	maxNameLen = 4096
	maxEntries = 1 << 16
)

var le = binary.LittleEndian

// rvaSpace reads the mapped view of a PE image by relative virtual
// address.  read returns nil when [rva, rva+n) is not backed by file data.
type rvaSpace interface {
	read(rva uint32, n int) []byte
}

type sectionSpace struct {
	sections []*pe.Section
	data     map[*pe.Section][]byte
}

func newSectionSpace(sections []*pe.Section) *sectionSpace {
	return &sectionSpace{
		sections: sections,
		data:     make(map[*pe.Section][]byte),
	}
}

func (s *sectionSpace) read(rva uint32, n int) []byte {
	for _, sec := range s.sections {
		size := max(sec.VirtualSize, sec.Size)
		if rva < sec.VirtualAddress || rva-sec.VirtualAddress >= size {
			continue
		}
		data, ok := s.data[sec]
		if !ok {
			data, _ = sec.Data()
			s.data[sec] = data
		}
		off := int(rva - sec.VirtualAddress)
		if off+n > len(data) {
			return nil
		}
		return data[off : off+n]
	}
	return nil
}

func readU16(s rvaSpace, rva uint32) (uint16, bool) {
	b := s.read(rva, 2)
	if b == nil {
		return 0, false
	}
	return le.Uint16(b), true
}

func readU32(s rvaSpace, rva uint32) (uint32, bool) {
	b := s.read(rva, 4)
	if b == nil {
		return 0, false
	}
	return le.Uint32(b), true
}

func readThunk(s rvaSpace, rva uint32, is64 bool) (uint64, bool) {
	if !is64 {
		v, ok := readU32(s, rva)
		return uint64(v), ok
	}
	b := s.read(rva, 8)
	if b == nil {
		return 0, false
	}
	return le.Uint64(b), true
}

func readCString(s rvaSpace, rva uint32) string {
	var name []byte
	for i := uint32(0); i < maxNameLen; i++ {
		c := s.read(rva+i, 1)
		if c == nil || c[0] == 0 {
			break
		}
		name = append(name, c[0])
	}
	return string(name)
}

func parsePE(r io.ReaderAt) (*File, error) {
	f, err := pe.NewFile(r)
	if err != nil {
		return nil, fmt.Errorf("parsing PE: %w", err)
	}

	var (
		base  uint64
		entry uint32
		dirs  []pe.DataDirectory
		is64  bool
	)
	switch oh := f.OptionalHeader.(type) {
	case *pe.OptionalHeader32:
		base = uint64(oh.ImageBase)
		entry = oh.AddressOfEntryPoint
		dirs = oh.DataDirectory[:min(int(oh.NumberOfRvaAndSizes), len(oh.DataDirectory))]
	case *pe.OptionalHeader64:
		base = oh.ImageBase
		entry = oh.AddressOfEntryPoint
		dirs = oh.DataDirectory[:min(int(oh.NumberOfRvaAndSizes), len(oh.DataDirectory))]
		is64 = true
	}

	img := &File{
		format: FormatPE,
		order:  binary.LittleEndian,
		entry:  names.UndefinedAddress,
		dwarf:  f.DWARF,
	}
	if entry != 0 {
		img.entry = names.Address(base + uint64(entry))
	}

	space := newSectionSpace(f.Sections)
	if len(dirs) > peDirImport {
		img.imports = parsePEImports(space, base, dirs[peDirImport].VirtualAddress, is64)
	}
	if len(dirs) > peDirExport {
		dir := dirs[peDirExport]
		img.exports = parsePEExports(space, base, dir.VirtualAddress, dir.Size)
	}

	if len(f.Symbols) > 0 {
		symbols := make([]names.Symbol, 0, len(f.Symbols))
		for _, sym := range f.Symbols {
			symbols = append(symbols, peSymbol(f.Sections, base, sym))
		}
		img.symbols = [][]names.Symbol{symbols}
	}

	for _, sec := range f.Sections {
		img.segments = append(img.segments, names.Segment{
			Address: names.Address(base + uint64(sec.VirtualAddress)),
			Name:    sec.Name,
		})
	}

	return img, nil
}

// parsePEImports walks the import descriptors at dirRVA.  The address of an
// import is the address of its slot in the import address table.
func parsePEImports(s rvaSpace, base uint64, dirRVA uint32, is64 bool) *names.ImportTable {
	if dirRVA == 0 {
		return nil
	}

	thunkSize := uint32(4)
	ordinalFlag := uint64(1) << 31
	if is64 {
		thunkSize = 8
		ordinalFlag = uint64(1) << 63
	}

	table := &names.ImportTable{}
	for desc := dirRVA; ; desc += peImportDescriptorSize {
		raw := s.read(desc, peImportDescriptorSize)
		if raw == nil {
			break
		}
		lookup := le.Uint32(raw[0:])
		nameRVA := le.Uint32(raw[12:])
		iat := le.Uint32(raw[16:])
		if lookup == 0 && nameRVA == 0 && iat == 0 {
			break
		}
		if lookup == 0 {
			lookup = iat
		}

		lib := len(table.Libraries)
		table.Libraries = append(table.Libraries, readCString(s, nameRVA))

		for i := uint32(0); i < maxEntries; i++ {
			thunk, ok := readThunk(s, lookup+i*thunkSize, is64)
			if !ok || thunk == 0 {
				break
			}
			imp := names.Import{
				Address:      names.Address(base + uint64(iat) + uint64(i*thunkSize)),
				LibraryIndex: lib,
			}
			if thunk&ordinalFlag != 0 {
				imp.Ordinal = thunk & 0xffff
				imp.HasOrdinal = true
			} else {
				// skip the two byte hint
				imp.Name = readCString(s, uint32(thunk&0x7fffffff)+2)
			}
			table.Imports = append(table.Imports, imp)
		}
	}
	return table
}

// parsePEExports lists named exports.  Forwarded exports have no address
// in this image and are left out.
func parsePEExports(s rvaSpace, base uint64, dirRVA, dirSize uint32) []names.Export {
	if dirRVA == 0 {
		return nil
	}
	raw := s.read(dirRVA, peExportDirectorySize)
	if raw == nil {
		return nil
	}
	numFunctions := le.Uint32(raw[20:])
	numNames := le.Uint32(raw[24:])
	functions := le.Uint32(raw[28:])
	nameTable := le.Uint32(raw[32:])
	ordinalTable := le.Uint32(raw[36:])

	var exports []names.Export
	for i := uint32(0); i < numNames && i < maxEntries; i++ {
		nameRVA, ok := readU32(s, nameTable+4*i)
		if !ok {
			break
		}
		index, ok := readU16(s, ordinalTable+2*i)
		if !ok {
			break
		}
		if uint32(index) >= numFunctions {
			continue
		}
		fn, ok := readU32(s, functions+4*uint32(index))
		if !ok || fn == 0 {
			continue
		}
		if fn >= dirRVA && fn < dirRVA+dirSize {
			continue
		}
		exports = append(exports, names.Export{
			Address: names.Address(base + uint64(fn)),
			Name:    readCString(s, nameRVA),
		})
	}
	return exports
}

func peSymbol(sections []*pe.Section, base uint64, sym *pe.Symbol) names.Symbol {
	s := names.Symbol{
		Name:    sym.Name,
		Address: names.UndefinedAddress,
	}
	switch {
	case sym.StorageClass == peSymClassFile:
		s.Usage = names.SymbolUsageFile
	case sym.Type&0x30 == peSymTypeFunction:
		s.Usage = names.SymbolUsageFunction
	}
	if sym.SectionNumber > 0 && int(sym.SectionNumber) <= len(sections) {
		sec := sections[sym.SectionNumber-1]
		s.Address = names.Address(base + uint64(sec.VirtualAddress) + uint64(sym.Value))
		if s.Usage == names.SymbolUsageOther && sec.Characteristics&peSectionCode == 0 {
			s.Usage = names.SymbolUsageObject
		}
	}
	return s
}
