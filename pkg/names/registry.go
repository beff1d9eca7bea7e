package names

import (
	"errors"
	"maps"
	"slices"

	"github.com/dghubble/trie"
	"github.com/rs/zerolog"

	"github.com/stackb/addrnames/pkg/ordinal"
)

var (
	// ErrMissingModule is returned when no module is given.
	ErrMissingModule = errors.New("names: missing module")
	// ErrMissingConfig is returned when no configuration is given.
	ErrMissingConfig = errors.New("names: missing config")
	// ErrMissingImage is returned when no binary image is given.
	ErrMissingImage = errors.New("names: missing image")
	// ErrMissingDemangler is returned when no demangler is given.
	ErrMissingDemangler = errors.New("names: missing demangler")
)

// Registry holds the candidate names of every address of a module.  It is
// populated from the configuration, the debug information and the binary
// image when constructed, and may be extended by later stages through
// AddNameForAddress.
//
// Registry is not safe for concurrent use.
type Registry struct {
	config    Config
	debug     DebugInfo
	image     Image
	demangler Demangler
	logger    zerolog.Logger
	ordinals  *ordinal.Cache

	data map[Address]*Names
	// byName maps a name text to the sorted addresses it was proposed for.
	byName *trie.RuneTrie
}

// NewRegistry constructs a Registry and ingests all names from the given
// collaborators.  Debug information is optional and passed by WithDebugInfo.
func NewRegistry(cfg Config, img Image, dm Demangler, opts ...Option) (*Registry, error) {
	if cfg == nil {
		return nil, ErrMissingConfig
	}
	if img == nil {
		return nil, ErrMissingImage
	}
	if dm == nil {
		return nil, ErrMissingDemangler
	}

	o := newOptions(opts)

	var cacheOpts []ordinal.Option
	cacheOpts = append(cacheOpts, ordinal.WithLogger(o.logger))
	if o.ordinalMetrics != nil {
		cacheOpts = append(cacheOpts, ordinal.WithMetrics(o.ordinalMetrics))
	}
	if o.ordinalExt != "" {
		cacheOpts = append(cacheOpts, ordinal.WithExtension(o.ordinalExt))
	}

	r := &Registry{
		config:    cfg,
		debug:     o.debug,
		image:     img,
		demangler: dm,
		logger:    o.logger,
		ordinals:  ordinal.NewCache(o.fs, cfg.OrdinalNumbersDirectory(), cacheOpts...),
		data:      make(map[Address]*Names),
		byName:    trie.NewRuneTrie(),
	}

	r.initFromConfig()
	r.initFromDebug()
	r.initFromImage()

	return r, nil
}

// AddNameForAddress records text as a candidate name of a.  It returns
// false when a is undefined or text is empty, in which case nothing
// changes.
func (r *Registry) AddNameForAddress(a Address, text string, origin Origin) bool {
	if !a.IsDefined() || text == "" {
		return false
	}
	ok, inserted := r.NamesFor(a).insert(text, origin)
	if inserted {
		r.index(a, normalizeText(text))
	}
	return ok
}

// NamesFor returns the names of a.  An address without names yields an
// empty set, which is kept.
func (r *Registry) NamesFor(a Address) *Names {
	ns, ok := r.data[a]
	if !ok {
		ns = &Names{}
		r.data[a] = ns
	}
	return ns
}

// PreferredNameFor returns the most preferred name of a, or EmptyName.
func (r *Registry) PreferredNameFor(a Address) Name {
	return r.NamesFor(a).Preferred()
}

// Addresses returns the addresses that have at least one name, in
// ascending order.
func (r *Registry) Addresses() []Address {
	addrs := make([]Address, 0, len(r.data))
	for _, a := range slices.Sorted(maps.Keys(r.data)) {
		if !r.data[a].Empty() {
			addrs = append(addrs, a)
		}
	}
	return addrs
}

// AddressesForName returns, in ascending order, the addresses for which
// text was proposed by any origin.
func (r *Registry) AddressesForName(text string) []Address {
	addrs, _ := r.byName.Get(normalizeText(text)).([]Address)
	return slices.Clone(addrs)
}

// Len returns the number of addresses that have at least one name.
func (r *Registry) Len() int {
	n := 0
	for _, ns := range r.data {
		if !ns.Empty() {
			n++
		}
	}
	return n
}

// Demangler returns the demangler the registry was built with.
func (r *Registry) Demangler() Demangler {
	return r.demangler
}

// Ordinals returns the ordinal table cache of the registry.
func (r *Registry) Ordinals() *ordinal.Cache {
	return r.ordinals
}

func (r *Registry) index(a Address, text string) {
	addrs, _ := r.byName.Get(text).([]Address)
	i, found := slices.BinarySearch(addrs, a)
	if found {
		return
	}
	r.byName.Put(text, slices.Insert(addrs, i, a))
}
