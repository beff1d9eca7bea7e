package mocks

import (
	"testing"

	names "github.com/stackb/addrnames/pkg/names"
	mock "github.com/stretchr/testify/mock"
)

// ConfigData is what a stubbed Config reports.
type ConfigData struct {
	EntryPoint       names.Address
	Functions        []names.ConfigFunction
	Globals          []names.ConfigGlobal
	Segments         []names.ConfigSegment
	OrdinalDirectory string
}

// NewConfigStub returns a Config mock answering from data.  The zero
// EntryPoint is reported as undefined.
func NewConfigStub(t *testing.T, data ConfigData) *Config {
	ep := data.EntryPoint
	if ep == 0 {
		ep = names.UndefinedAddress
	}
	c := NewConfig(t)
	c.On("EntryPoint").Maybe().Return(ep)
	c.On("Functions").Maybe().Return(data.Functions)
	c.On("Globals").Maybe().Return(data.Globals)
	c.On("Segments").Maybe().Return(data.Segments)
	c.On("OrdinalNumbersDirectory").Maybe().Return(data.OrdinalDirectory)
	return c
}

// DebugData is what a stubbed DebugInfo reports.
type DebugData struct {
	Functions []names.DebugFunction
	Globals   []names.DebugGlobal
}

// NewDebugInfoStub returns a DebugInfo mock answering from data.
func NewDebugInfoStub(t *testing.T, data DebugData) *DebugInfo {
	d := NewDebugInfo(t)
	d.On("Functions").Maybe().Return(data.Functions)
	d.On("Globals").Maybe().Return(data.Globals)
	return d
}

// ImageData is what a stubbed Image reports.
type ImageData struct {
	Imports      *names.ImportTable
	Exports      []names.Export
	SymbolTables [][]names.Symbol
	EntryPoint   names.Address
	HasEntry     bool
	Segments     []names.Segment
}

// NewImageStub returns an Image mock answering from data.
func NewImageStub(t *testing.T, data ImageData) *Image {
	img := NewImage(t)
	img.On("ImportTable").Maybe().Return(data.Imports)
	img.On("ExportTable").Maybe().Return(data.Exports)
	img.On("SymbolTables").Maybe().Return(data.SymbolTables)
	img.On("EntryPoint").Maybe().Return(data.EntryPoint, data.HasEntry)
	img.On("Segments").Maybe().Return(data.Segments)
	return img
}

// NewIdentityDemangler returns a Demangler mock that returns names as
// they are.
func NewIdentityDemangler(t *testing.T) *Demangler {
	dm := NewDemangler(t)
	dm.On("Demangle", mock.AnythingOfType("string")).
		Maybe().
		Return(func(name string) string { return name })
	return dm
}
