package names

import (
	"reflect"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/stackb/addrnames/pkg/ordinal"
)

type options struct {
	debug          DebugInfo
	logger         zerolog.Logger
	fs             afero.Fs
	ordinalMetrics *ordinal.Metrics
	ordinalExt     string
}

func newOptions(opts []Option) *options {
	o := &options{
		logger: zerolog.Nop(),
		fs:     afero.NewOsFs(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Option configures a Registry.
type Option func(*options)

// WithDebugInfo supplies the optional debug information collaborator.  A
// nil d, including a nil pointer of a concrete type, is the same as not
// passing the option.
func WithDebugInfo(d DebugInfo) Option {
	if isNil(d) {
		d = nil
	}
	return func(o *options) {
		o.debug = d
	}
}

func isNil(d DebugInfo) bool {
	if d == nil {
		return true
	}
	v := reflect.ValueOf(d)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// WithLogger sets the logger.  The default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithFs sets the filesystem ordinal tables are read from.  The default is
// the operating system filesystem.
func WithFs(fs afero.Fs) Option {
	return func(o *options) {
		o.fs = fs
	}
}

// WithOrdinalMetrics sets the counters of the ordinal table cache.
func WithOrdinalMetrics(m *ordinal.Metrics) Option {
	return func(o *options) {
		o.ordinalMetrics = m
	}
}

// WithOrdinalExtension sets the file extension of ordinal tables.  The
// default is ordinal.DefaultExtension.
func WithOrdinalExtension(ext string) Option {
	return func(o *options) {
		o.ordinalExt = ext
	}
}
