// Package confload is the ambient, file/env-backed loader that sits on
// top of the core value/parse/coerce packages: CAF's config_value is
// deliberately core-only (spec §1's "no integration with any actor
// runtime" non-goal), but a real Go repo shipping this type needs a
// way to actually load one from disk. It layers environment variables
// over a config file (it sets no defaults of its own), grounded on
// lwmacct-251207-go-pkg-cfgm/pkg/cfgm.Load's precedence order, using
// spf13/viper for format-agnostic file parsing and fsnotify (through
// viper.WatchConfig) for reload-on-change, following
// z5labs-bedrock's viper wiring.
package confload

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/tonylang/confval/value"
)

// Option configures a Loader.
type Option func(*options)

type options struct {
	paths     []string
	envPrefix string
	logger    *zap.SugaredLogger
}

// WithPaths sets the candidate config file paths to search, in order;
// the first one that exists and parses wins, mirroring
// cfgm.DefaultPaths' "first hit wins" search order.
func WithPaths(paths ...string) Option {
	return func(o *options) { o.paths = paths }
}

// WithEnvPrefix enables environment-variable overrides of the form
// PREFIX_KEY, layered on top of the file (spec-adjacent: the core
// itself has no concept of environment variables per §6, but the
// loader built on top of it does).
func WithEnvPrefix(prefix string) Option {
	return func(o *options) { o.envPrefix = prefix }
}

// WithLogger injects a zap.SugaredLogger for loader diagnostics
// (file found/not found, env override applied). Defaults to a no-op
// logger — the pure core stays side-effect free per spec §5, but this
// ambient loader is allowed to log.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(o *options) { o.logger = l }
}

// Loader loads a value.Value dictionary from a layered file/env
// configuration source.
type Loader struct {
	v    *viper.Viper
	opts *options
}

// New builds a Loader over the given options.
func New(opts ...Option) *Loader {
	o := &options{logger: zap.NewNop().Sugar()}
	for _, opt := range opts {
		opt(o)
	}
	v := viper.New()
	if o.envPrefix != "" {
		v.SetEnvPrefix(o.envPrefix)
		v.AutomaticEnv()
	}
	return &Loader{v: v, opts: o}
}

// Load searches opts.paths in order, reads the first file that
// exists and parses, and returns its contents (with any environment
// overrides layered on top) as a dictionary Value.
func (l *Loader) Load() (value.Value, error) {
	found := false
	for _, path := range l.opts.paths {
		l.v.SetConfigFile(path)
		if err := l.v.ReadInConfig(); err != nil {
			l.opts.logger.Debugw("config file not usable, trying next", "path", path, "error", err)
			continue
		}
		l.opts.logger.Infow("loaded config file", "path", path)
		found = true
		break
	}
	if !found && len(l.opts.paths) > 0 {
		return value.Value{}, fmt.Errorf("confload: no usable config file among %v", l.opts.paths)
	}
	return value.FromAny(l.v.AllSettings()), nil
}

// Watch installs a callback invoked with the freshly reloaded Value
// whenever the active config file changes on disk (spf13/viper's
// fsnotify-backed watch).
func (l *Loader) Watch(onChange func(value.Value)) {
	l.v.OnConfigChange(func(_ fsnotify.Event) {
		l.opts.logger.Infow("config file changed, reloading")
		onChange(value.FromAny(l.v.AllSettings()))
	})
	l.v.WatchConfig()
}
