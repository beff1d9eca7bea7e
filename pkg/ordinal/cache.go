package ordinal

import (
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// DefaultExtension is the file extension of ordinal tables.
const DefaultExtension = ".ord"

// LoadState tells whether the table of a library has been read.
type LoadState int

const (
	// NotLoaded means no attempt was made to read the table yet.
	NotLoaded LoadState = iota
	// Loaded means the table was read, possibly empty.
	Loaded
	// Missing means the table could not be read.  It will not be retried.
	Missing
)

func (s LoadState) String() string {
	switch s {
	case NotLoaded:
		return "not_loaded"
	case Loaded:
		return "loaded"
	case Missing:
		return "missing"
	default:
		return "unknown"
	}
}

type entry struct {
	state LoadState
	table Table
}

// Cache resolves (library, ordinal) pairs to function names.  The table of
// each library is read from storage at most once, whether or not the read
// succeeds.
//
// Cache is not safe for concurrent use.
type Cache struct {
	fs      afero.Fs
	dir     string
	ext     string
	logger  zerolog.Logger
	metrics *Metrics

	libs  map[string]*entry
	loads int
}

// Option configures a Cache.
type Option func(*Cache)

// WithLogger sets the logger used to report table loads.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Cache) {
		c.logger = logger
	}
}

// WithMetrics sets the counters updated by the cache.
func WithMetrics(metrics *Metrics) Option {
	return func(c *Cache) {
		c.metrics = metrics
	}
}

// WithExtension overrides DefaultExtension.
func WithExtension(ext string) Option {
	return func(c *Cache) {
		c.ext = ext
	}
}

// NewCache constructs a Cache reading tables named "<library><ext>" from dir
// on fs.
func NewCache(fs afero.Fs, dir string, options ...Option) *Cache {
	c := &Cache{
		fs:     fs,
		dir:    dir,
		ext:    DefaultExtension,
		logger: zerolog.Nop(),
		libs:   make(map[string]*entry),
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

// Resolve returns the name of the function exported by lib under ord.  lib
// is expected to be normalized with NormalizeLibrary.
func (c *Cache) Resolve(lib string, ord uint64) (string, bool) {
	e, ok := c.libs[lib]
	if !ok {
		c.Load(lib)
		e = c.libs[lib]
	}
	if e.state != Loaded {
		c.countLookup(resultUnresolved)
		return "", false
	}
	name, ok := e.table.Lookup(ord)
	if ok {
		c.countLookup(resultResolved)
	} else {
		c.countLookup(resultUnresolved)
	}
	return name, ok
}

// Load reads the table of lib unless it was already attempted, and reports
// whether the library has a usable table.  An empty but readable table
// counts as loaded.
func (c *Cache) Load(lib string) bool {
	if e, ok := c.libs[lib]; ok {
		return e.state == Loaded
	}

	// library names come from the binary and must not leave dir
	if lib == "" || lib == "." || lib == ".." || strings.ContainsAny(lib, `/\`) {
		c.logger.Debug().Str("library", lib).Msg("invalid library name")
		c.libs[lib] = &entry{state: Missing}
		c.countLoad(resultMissing)
		return false
	}

	filename := c.Filename(lib)
	c.loads++

	f, err := c.fs.Open(filename)
	if err != nil {
		c.logger.Debug().Err(err).Str("library", lib).Msg("no ordinal table")
		c.libs[lib] = &entry{state: Missing}
		c.countLoad(resultMissing)
		return false
	}
	defer f.Close()

	table, err := Parse(f)
	if err != nil {
		c.logger.Warn().Err(err).Str("file", filename).Msg("unreadable ordinal table")
		c.libs[lib] = &entry{state: Missing}
		c.countLoad(resultError)
		return false
	}

	c.logger.Debug().Str("file", filename).Int("ordinals", len(table)).Msg("loaded ordinal table")
	c.libs[lib] = &entry{state: Loaded, table: table}
	c.countLoad(resultLoaded)
	return true
}

// State returns the load state of lib.
func (c *Cache) State(lib string) LoadState {
	if e, ok := c.libs[lib]; ok {
		return e.state
	}
	return NotLoaded
}

// Loads returns how many times a table was opened from storage.
func (c *Cache) Loads() int {
	return c.loads
}

// Filename returns the storage path of the table of lib.
func (c *Cache) Filename(lib string) string {
	return filepath.Join(c.dir, lib+c.ext)
}

func (c *Cache) countLoad(result string) {
	if c.metrics != nil {
		c.metrics.TableLoads.WithLabelValues(result).Inc()
	}
}

func (c *Cache) countLookup(result string) {
	if c.metrics != nil {
		c.metrics.Lookups.WithLabelValues(result).Inc()
	}
}
