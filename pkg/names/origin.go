package names

import "fmt"

// Origin classifies the source that proposed a name.  Origins are ranked;
// a name from a higher ranked origin is preferred over all names from lower
// ranked ones, regardless of the order in which they were recorded.
type Origin int

// The declaration order below, after OriginInvalid, is the priority order
// from highest to lowest.
const (
	// OriginInvalid marks the empty name.  It ranks below everything else.
	OriginInvalid Origin = iota
	OriginConfigEntryPoint
	OriginConfigFunction
	OriginConfigGlobal
	OriginConfigSegment
	OriginDebugFunction
	OriginDebugGlobal
	// OriginEntryPoint is used for the image entry point and for image
	// segments.
	OriginEntryPoint
	OriginImport
	// OriginImportGenerated tags names synthesized for imports known only
	// by ordinal.
	OriginImportGenerated
	OriginExport
	OriginSymbolFunction
	OriginSymbolObject
	OriginSymbolFile
	OriginSymbolOther

	originCount
)

var originNames = [...]string{
	OriginInvalid:          "invalid",
	OriginConfigEntryPoint: "config_entry_point",
	OriginConfigFunction:   "config_function",
	OriginConfigGlobal:     "config_global",
	OriginConfigSegment:    "config_segment",
	OriginDebugFunction:    "debug_function",
	OriginDebugGlobal:      "debug_global",
	OriginEntryPoint:       "entry_point",
	OriginImport:           "import",
	OriginImportGenerated:  "import_generated",
	OriginExport:           "export",
	OriginSymbolFunction:   "symbol_function",
	OriginSymbolObject:     "symbol_object",
	OriginSymbolFile:       "symbol_file",
	OriginSymbolOther:      "symbol_other",
}

// Rank returns the priority of o.  Lower ranks are preferred.
func (o Origin) Rank() int {
	if o <= OriginInvalid || o >= originCount {
		return int(originCount)
	}
	return int(o) - 1
}

// Valid reports whether o is one of the declared origins other than
// OriginInvalid.
func (o Origin) Valid() bool {
	return o > OriginInvalid && o < originCount
}

// String implements fmt.Stringer
func (o Origin) String() string {
	if o < OriginInvalid || o >= originCount {
		return fmt.Sprintf("origin(%d)", int(o))
	}
	return originNames[o]
}

// ParseOrigin is the inverse of Origin.String.
func ParseOrigin(s string) (Origin, error) {
	for o, name := range originNames {
		if name == s {
			return Origin(o), nil
		}
	}
	return OriginInvalid, fmt.Errorf("unknown name origin %q", s)
}

// Origins returns every valid origin in priority order.
func Origins() []Origin {
	origins := make([]Origin, 0, originCount-1)
	for o := OriginInvalid + 1; o < originCount; o++ {
		origins = append(origins, o)
	}
	return origins
}
