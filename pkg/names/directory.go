package names

// Directory owns the registries of a processing run, at most one per
// module.  It replaces process wide state: pipeline stages that need names
// receive the Directory explicitly.
//
// Directory is not safe for concurrent use.  Callers working on distinct
// modules from several goroutines should shard directories.
type Directory[M comparable] struct {
	opts       []Option
	registries map[M]*Registry
}

// NewDirectory constructs an empty Directory.  opts are applied to every
// registry it builds.
func NewDirectory[M comparable](opts ...Option) *Directory[M] {
	return &Directory[M]{
		opts:       opts,
		registries: make(map[M]*Registry),
	}
}

// BuildOrFetch returns the registry of m, building it from the given
// collaborators on first use.  Later calls for the same module return the
// existing registry unchanged and ignore the collaborators.  When m is the
// zero value or a required collaborator is nil, no registry is built and an
// error is returned.
func (d *Directory[M]) BuildOrFetch(m M, cfg Config, img Image, dm Demangler, opts ...Option) (*Registry, error) {
	var zero M
	if m == zero {
		return nil, ErrMissingModule
	}
	if cfg == nil {
		return nil, ErrMissingConfig
	}
	if img == nil {
		return nil, ErrMissingImage
	}
	if dm == nil {
		return nil, ErrMissingDemangler
	}

	if r, ok := d.registries[m]; ok {
		return r, nil
	}

	all := make([]Option, 0, len(d.opts)+len(opts))
	all = append(all, d.opts...)
	all = append(all, opts...)

	r, err := NewRegistry(cfg, img, dm, all...)
	if err != nil {
		return nil, err
	}
	d.registries[m] = r
	return r, nil
}

// Fetch returns the registry of m if one was built.
func (d *Directory[M]) Fetch(m M) (*Registry, bool) {
	r, ok := d.registries[m]
	return r, ok
}

// Len returns the number of registries.
func (d *Directory[M]) Len() int {
	return len(d.registries)
}

// Reset drops all registries.
func (d *Directory[M]) Reset() {
	clear(d.registries)
}
