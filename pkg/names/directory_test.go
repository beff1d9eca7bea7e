package names_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackb/addrnames/pkg/names"
	"github.com/stackb/addrnames/pkg/names/mocks"
)

type module struct {
	name string
}

func TestDirectoryBuildOrFetch(t *testing.T) {
	dir := names.NewDirectory[*module](names.WithFs(afero.NewMemMapFs()))
	m := &module{name: "a.exe"}

	cfg := mocks.NewConfigStub(t, mocks.ConfigData{
		Functions: []names.ConfigFunction{{Start: 0x1000, Name: "init"}},
	})
	img := mocks.NewImageStub(t, mocks.ImageData{})
	dm := mocks.NewIdentityDemangler(t)

	first, err := dir.BuildOrFetch(m, cfg, img, dm)
	require.NoError(t, err)
	require.NotNil(t, first)
	first.AddNameForAddress(0x2000, "later", names.OriginSymbolFunction)

	other := mocks.NewConfigStub(t, mocks.ConfigData{
		Functions: []names.ConfigFunction{{Start: 0x1000, Name: "ignored"}},
	})
	second, err := dir.BuildOrFetch(m, other, img, dm)
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, "init", second.PreferredNameFor(0x1000).Text())
	assert.Equal(t, "later", second.PreferredNameFor(0x2000).Text())

	fetched, ok := dir.Fetch(m)
	assert.True(t, ok)
	assert.Same(t, first, fetched)

	_, ok = dir.Fetch(&module{name: "a.exe"})
	assert.False(t, ok, "modules are identified by handle, not by value")

	assert.Equal(t, 1, dir.Len())
	dir.Reset()
	assert.Equal(t, 0, dir.Len())
	fetched, ok = dir.Fetch(m)
	assert.False(t, ok)
	assert.Nil(t, fetched)

	rebuilt, err := dir.BuildOrFetch(m, cfg, img, dm)
	require.NoError(t, err)
	assert.NotSame(t, first, rebuilt)
	assert.True(t, rebuilt.NamesFor(0x2000).Empty())
}

func TestDirectoryBuildOrFetchFailures(t *testing.T) {
	cfg := mocks.NewConfigStub(t, mocks.ConfigData{})
	img := mocks.NewImageStub(t, mocks.ImageData{})
	dm := mocks.NewIdentityDemangler(t)

	for name, tc := range map[string]struct {
		module string
		cfg    names.Config
		img    names.Image
		dm     names.Demangler
		want   error
	}{
		"no module":    {cfg: cfg, img: img, dm: dm, want: names.ErrMissingModule},
		"no config":    {module: "m", img: img, dm: dm, want: names.ErrMissingConfig},
		"no image":     {module: "m", cfg: cfg, dm: dm, want: names.ErrMissingImage},
		"no demangler": {module: "m", cfg: cfg, img: img, want: names.ErrMissingDemangler},
	} {
		t.Run(name, func(t *testing.T) {
			dir := names.NewDirectory[string]()
			r, err := dir.BuildOrFetch(tc.module, tc.cfg, tc.img, tc.dm)
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, r)
			assert.Equal(t, 0, dir.Len())
			_, ok := dir.Fetch(tc.module)
			assert.False(t, ok)
		})
	}
}

func TestDirectoryOptionalDebugInfo(t *testing.T) {
	dir := names.NewDirectory[string](names.WithFs(afero.NewMemMapFs()))
	cfg := mocks.NewConfigStub(t, mocks.ConfigData{})
	img := mocks.NewImageStub(t, mocks.ImageData{})
	dm := mocks.NewIdentityDemangler(t)
	debug := mocks.NewDebugInfoStub(t, mocks.DebugData{
		Functions: []names.DebugFunction{{Address: 0x10, Name: "dbg"}},
	})

	withDebug, err := dir.BuildOrFetch("with", cfg, img, dm, names.WithDebugInfo(debug))
	require.NoError(t, err)
	withoutDebug, err := dir.BuildOrFetch("without", cfg, img, dm)
	require.NoError(t, err)

	assert.Equal(t, "dbg", withDebug.PreferredNameFor(0x10).Text())
	assert.True(t, withoutDebug.NamesFor(0x10).Empty())
	assert.Equal(t, 2, dir.Len())
}
