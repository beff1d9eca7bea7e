package names

import (
	"github.com/stackb/addrnames/pkg/ordinal"
)

// tally counts the outcome of the insertions of one ingestion pass.
type tally struct {
	r        *Registry
	added    int
	rejected int
}

func (t *tally) add(a Address, text string, origin Origin) {
	if t.r.AddNameForAddress(a, text, origin) {
		t.added++
	} else {
		t.rejected++
	}
}

func (t *tally) log(pass string) {
	t.r.logger.Debug().
		Str("pass", pass).
		Int("added", t.added).
		Int("rejected", t.rejected).
		Msg("ingested names")
}

func (r *Registry) initFromConfig() {
	t := &tally{r: r}

	t.add(r.config.EntryPoint(), EntryPointName, OriginConfigEntryPoint)

	for _, fn := range r.config.Functions() {
		t.add(fn.Start, fn.Name, OriginConfigFunction)
	}
	for _, g := range r.config.Globals() {
		t.add(g.Address, g.Name, OriginConfigGlobal)
	}
	for _, seg := range r.config.Segments() {
		t.add(seg.Start, seg.Name, OriginConfigSegment)
	}

	t.log("config")
}

func (r *Registry) initFromDebug() {
	if r.debug == nil {
		r.logger.Debug().Msg("no debug information, skipping debug names")
		return
	}
	t := &tally{r: r}

	for _, fn := range r.debug.Functions() {
		t.add(fn.Address, fn.Name, OriginDebugFunction)
	}
	for _, g := range r.debug.Globals() {
		if g.Location.IsMemory {
			t.add(g.Location.Address, g.Name, OriginDebugGlobal)
		}
	}

	t.log("debug")
}

func (r *Registry) initFromImage() {
	t := &tally{r: r}

	if imports := r.image.ImportTable(); imports != nil {
		for _, imp := range imports.Imports {
			name, origin := r.importName(imports, imp)
			t.add(imp.Address, name, origin)
		}
	}

	for _, exp := range r.image.ExportTable() {
		t.add(exp.Address, exp.Name, OriginExport)
	}

	for _, symbols := range r.image.SymbolTables() {
		for _, sym := range symbols {
			if sym.Address.IsDefined() {
				t.add(sym.Address, sym.Name, sym.Usage.Origin())
			}
		}
	}

	if ep, ok := r.image.EntryPoint(); ok {
		t.add(ep, EntryPointName, OriginEntryPoint)
	}

	// Segments share the entry point origin.
	for _, seg := range r.image.Segments() {
		t.add(seg.Address, seg.Name, OriginEntryPoint)
	}

	t.log("image")
}

// importName picks the name of an import: its own name, else the name
// listed for its ordinal in the library ordinal table, else a name
// generated from the ordinal.
func (r *Registry) importName(imports *ImportTable, imp Import) (string, Origin) {
	if imp.Name != "" || !imp.HasOrdinal {
		return imp.Name, OriginImport
	}
	lib := ordinal.NormalizeLibrary(imports.Library(imp.LibraryIndex))
	if lib != "" {
		if name, ok := r.ordinals.Resolve(lib, imp.Ordinal); ok {
			return name, OriginImport
		}
	}
	return GenerateImportName(imp.Ordinal), OriginImportGenerated
}
