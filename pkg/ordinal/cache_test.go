package ordinal

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"

	"github.com/stackb/addrnames/pkg/testutil"
)

// countingFs counts Open calls so tests can assert that storage is read at
// most once per library.
type countingFs struct {
	afero.Fs
	opens map[string]int
}

func (fs *countingFs) Open(name string) (afero.File, error) {
	fs.opens[name]++
	return fs.Fs.Open(name)
}

func newTestFs(t *testing.T, files map[string]string) *countingFs {
	t.Helper()
	mem := afero.NewMemMapFs()
	var specs []testutil.FileSpec
	for name, content := range files {
		specs = append(specs, testutil.FileSpec{Path: name, Content: content})
	}
	testutil.MustWriteTestFiles(t, mem, "", specs)
	return &countingFs{Fs: mem, opens: make(map[string]int)}
}

func TestCacheResolve(t *testing.T) {
	fs := newTestFs(t, map[string]string{
		"ords/ws2_32.ord": "1 accept\n2 bind\n3\n",
		"ords/empty.ord":  "",
	})
	c := NewCache(fs, "ords")

	for name, tc := range map[string]struct {
		lib    string
		ord    uint64
		want   string
		wantOk bool
	}{
		"hit":                {lib: "ws2_32", ord: 2, want: "bind", wantOk: true},
		"absent ordinal":     {lib: "ws2_32", ord: 7},
		"ordinal no name":    {lib: "ws2_32", ord: 3},
		"missing library":    {lib: "nope", ord: 1},
		"empty table":        {lib: "empty", ord: 1},
		"hit after a miss":   {lib: "ws2_32", ord: 1, want: "accept", wantOk: true},
		"missing still miss": {lib: "nope", ord: 2},
	} {
		t.Run(name, func(t *testing.T) {
			got, ok := c.Resolve(tc.lib, tc.ord)
			assert.Equal(t, tc.wantOk, ok)
			assert.Equal(t, tc.want, got)
		})
	}

	assert.Equal(t, 1, fs.opens["ords/ws2_32.ord"])
	assert.Equal(t, 1, fs.opens["ords/nope.ord"])
	assert.Equal(t, 1, fs.opens["ords/empty.ord"])
	assert.Equal(t, 3, c.Loads())
}

func TestCacheStates(t *testing.T) {
	fs := newTestFs(t, map[string]string{
		"ords/user32.ord": "",
	})
	c := NewCache(fs, "ords")

	assert.Equal(t, NotLoaded, c.State("user32"))
	assert.True(t, c.Load("user32"), "empty but readable table loads")
	assert.Equal(t, Loaded, c.State("user32"))

	assert.False(t, c.Load("gdi32"))
	assert.Equal(t, Missing, c.State("gdi32"))

	// repeated attempts are answered from memory
	assert.False(t, c.Load("gdi32"))
	assert.True(t, c.Load("user32"))
	assert.Equal(t, 2, c.Loads())
	assert.Equal(t, 1, fs.opens["ords/gdi32.ord"])
}

func TestCacheRejectsPathLibraries(t *testing.T) {
	fs := newTestFs(t, map[string]string{
		"secret.ord":      "1 leaked\n",
		"ords/sub/x.ord":  "1 nested\n",
		"ords/kernel.ord": "1 Beep\n",
	})
	c := NewCache(fs, "ords")

	for name, lib := range map[string]string{
		"parent":     "../secret",
		"nested":     "sub/x",
		"backslash":  `sub\x`,
		"dot dot":    "..",
		"empty name": "",
	} {
		t.Run(name, func(t *testing.T) {
			got, ok := c.Resolve(lib, 1)
			assert.False(t, ok)
			assert.Empty(t, got)
			assert.Equal(t, Missing, c.State(lib))
		})
	}

	assert.Equal(t, 0, c.Loads())
	got, ok := c.Resolve("kernel", 1)
	assert.True(t, ok)
	assert.Equal(t, "Beep", got)
}

func TestCacheMetrics(t *testing.T) {
	fs := newTestFs(t, map[string]string{
		"ords/oleaut32.ord": "2 SysAllocString\n",
	})
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)
	c := NewCache(fs, "ords", WithMetrics(metrics))

	for i := 0; i < 3; i++ {
		c.Resolve("oleaut32", 2)
		c.Resolve("oleaut32", 9)
		c.Resolve("missing", 1)
	}

	assert.Equal(t, 1.0, promtestutil.ToFloat64(metrics.TableLoads.WithLabelValues(resultLoaded)))
	assert.Equal(t, 1.0, promtestutil.ToFloat64(metrics.TableLoads.WithLabelValues(resultMissing)))
	assert.Equal(t, 3.0, promtestutil.ToFloat64(metrics.Lookups.WithLabelValues(resultResolved)))
	assert.Equal(t, 6.0, promtestutil.ToFloat64(metrics.Lookups.WithLabelValues(resultUnresolved)))
}

func TestCacheExtension(t *testing.T) {
	fs := newTestFs(t, map[string]string{
		"ords/mfc42.txt": "100 CString\n",
	})
	c := NewCache(fs, "ords", WithExtension(".txt"))

	assert.Equal(t, "ords/mfc42.txt", c.Filename("mfc42"))
	got, ok := c.Resolve("mfc42", 100)
	assert.True(t, ok)
	assert.Equal(t, "CString", got)
}
