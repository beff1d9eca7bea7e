package names

// Config is the user or tool configuration of the analysed module.
type Config interface {
	// EntryPoint returns the configured entry point, or UndefinedAddress.
	EntryPoint() Address
	// Functions returns the declared functions.
	Functions() []ConfigFunction
	// Globals returns the declared global variables.
	Globals() []ConfigGlobal
	// Segments returns the declared segments.
	Segments() []ConfigSegment
	// OrdinalNumbersDirectory is the directory holding per-library ordinal
	// tables.
	OrdinalNumbersDirectory() string
}

// ConfigFunction is a function declared in the configuration.
type ConfigFunction struct {
	Start Address
	Name  string
}

// ConfigGlobal is a global variable declared in the configuration.  Address
// is UndefinedAddress when the storage of the global is not in memory.
type ConfigGlobal struct {
	Address Address
	Name    string
}

// ConfigSegment is a segment declared in the configuration.
type ConfigSegment struct {
	Start Address
	Name  string
}

// DebugInfo is the debug information of the analysed module.  It is
// optional.
type DebugInfo interface {
	Functions() []DebugFunction
	Globals() []DebugGlobal
}

// DebugFunction is a function described by debug information.
type DebugFunction struct {
	Address Address
	Name    string
}

// Location is where debug information says a variable is stored.
type Location struct {
	// IsMemory is true when the variable lives at Address.  Register and
	// stack locations leave it false.
	IsMemory bool
	Address  Address
}

// DebugGlobal is a global variable described by debug information.
type DebugGlobal struct {
	Name     string
	Location Location
}

// Image is the metadata of the analysed binary.
type Image interface {
	// ImportTable returns nil if the binary has no import table.
	ImportTable() *ImportTable
	// ExportTable returns nil if the binary has no export table.
	ExportTable() []Export
	SymbolTables() [][]Symbol
	// EntryPoint reports the entry point if the format has one.
	EntryPoint() (Address, bool)
	Segments() []Segment
}

// ImportTable lists imported functions and the libraries they come from.
type ImportTable struct {
	Libraries []string
	Imports   []Import
}

// Library returns the name of the i-th library or "" if i is out of range.
func (t *ImportTable) Library(i int) string {
	if i < 0 || i >= len(t.Libraries) {
		return ""
	}
	return t.Libraries[i]
}

// Import is one imported function.  Name is empty for imports by ordinal.
type Import struct {
	Address      Address
	Name         string
	LibraryIndex int
	Ordinal      uint64
	HasOrdinal   bool
}

// Export is one exported function or object.
type Export struct {
	Address Address
	Name    string
}

// SymbolUsage is what a symbol table entry describes.
type SymbolUsage int

const (
	SymbolUsageOther SymbolUsage = iota
	SymbolUsageFunction
	SymbolUsageObject
	SymbolUsageFile
)

func (u SymbolUsage) String() string {
	switch u {
	case SymbolUsageFunction:
		return "function"
	case SymbolUsageObject:
		return "object"
	case SymbolUsageFile:
		return "file"
	default:
		return "other"
	}
}

// Origin returns the origin used for names of symbols with usage u.
func (u SymbolUsage) Origin() Origin {
	switch u {
	case SymbolUsageFunction:
		return OriginSymbolFunction
	case SymbolUsageObject:
		return OriginSymbolObject
	case SymbolUsageFile:
		return OriginSymbolFile
	default:
		return OriginSymbolOther
	}
}

// Symbol is a symbol table entry.  Address is UndefinedAddress when the
// symbol does not resolve to a concrete address.
type Symbol struct {
	Name    string
	Address Address
	Usage   SymbolUsage
}

// Segment is a loaded segment (or section) of the binary.
type Segment struct {
	Address Address
	Name    string
}

// Demangler turns mangled names into readable ones.  The registry only
// carries it for later pipeline stages.
type Demangler interface {
	Demangle(name string) string
}
