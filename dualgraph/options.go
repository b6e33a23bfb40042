package dualgraph

import (
	"go.uber.org/zap"

	"github.com/ar0ne/PolyWorld/tessellation"
)

// Option configures one Build call.
type Option func(*buildConfig)

// buildConfig aggregates all Build knobs. Deterministic defaults: no
// relaxation, the Fortune-sweep source, a no-op logger.
type buildConfig struct {
	relaxations int
	source      tessellation.Source
	logger      *zap.Logger
}

// newBuildConfig resolves options in order (later overrides earlier).
// Complexity: O(len(opts)).
func newBuildConfig(opts ...Option) buildConfig {
	cfg := buildConfig{
		relaxations: 0,
		source:      tessellation.Compute,
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithLloydRelaxation makes Build run n Lloyd passes before constructing the
// graph: each pass moves every site to the centroid of its cell polygon and
// re-tessellates within the same bounds. n = 0 is a valid no-op; a negative
// n makes Build return ErrNegativeRelaxation.
func WithLloydRelaxation(n int) Option {
	return func(cfg *buildConfig) { cfg.relaxations = n }
}

// WithSource overrides the tessellation source used by relaxation passes.
// The default is tessellation.Compute. A nil src makes Build return
// ErrNilSource.
func WithSource(src tessellation.Source) Option {
	return func(cfg *buildConfig) { cfg.source = src }
}

// WithLogger attaches a zap logger to the build; relaxation passes and the
// final graph shape are logged at Debug level. The default is zap.NewNop().
func WithLogger(l *zap.Logger) Option {
	return func(cfg *buildConfig) {
		if l != nil {
			cfg.logger = l
		}
	}
}
