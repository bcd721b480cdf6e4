package config

import "time"

// Runtime tunables that aren't part of the caller-supplied Config file —
// internal knobs a component constructor may want overridden by an
// embedder or a test, in the same spirit as gsfa/store/option.go's
// unexported config struct plus exported Option constructors.
const (
	defaultLevelsSkipped  = uint8(6)
	defaultBlacklistTTL   = 30 * time.Second
	defaultDispatcherPool = 8
)

// Runtime bundles the tunables component constructors accept via Option,
// distinct from the on-disk Config: these are process-wide defaults an
// embedder can override, not something an operator writes into a config
// file.
type Runtime struct {
	LevelsSkipped  uint8
	BlacklistTTL   time.Duration
	DispatcherPool int
}

// DefaultRuntime returns the baseline tunables (§3 default
// levels_skipped = 6; §4.6 default blacklist TTL = 30s).
func DefaultRuntime() Runtime {
	return Runtime{
		LevelsSkipped:  defaultLevelsSkipped,
		BlacklistTTL:   defaultBlacklistTTL,
		DispatcherPool: defaultDispatcherPool,
	}
}

// Option mutates a Runtime; apply with Runtime.Apply.
type Option func(*Runtime)

// Apply folds a list of Options onto r in order.
func (r *Runtime) Apply(opts ...Option) {
	for _, opt := range opts {
		opt(r)
	}
}

// WithLevelsSkipped overrides the hash tree's levels-skipped parameter
// (block_size = 1024 << levels).
func WithLevelsSkipped(levels uint8) Option {
	return func(r *Runtime) { r.LevelsSkipped = levels }
}

// WithBlacklistTTL overrides the router's fallback requester-blacklist
// deadline for requests that carry no timeout.
func WithBlacklistTTL(ttl time.Duration) Option {
	return func(r *Runtime) { r.BlacklistTTL = ttl }
}

// WithDispatcherPoolSize overrides the dispatcher's worker pool size when
// Config.Parallel is left unset.
func WithDispatcherPoolSize(n int) Option {
	return func(r *Runtime) { r.DispatcherPool = n }
}
