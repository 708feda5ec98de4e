package config

import (
	"fmt"

	"go.uber.org/zap"
)

// Value is the outcome of resolving one setting.
type Value struct {
	Setting Setting
	Value   string
	// Present is false when no source supplied a value (null).
	Present bool
	Origin  Origin
}

// Resolver evaluates sources in order until one yields a value.
type Resolver struct {
	sources []Source
	logger  *zap.Logger
}

// NewResolver creates a resolver over sources, highest precedence first.
func NewResolver(logger *zap.Logger, sources ...Source) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{
		sources: sources,
		logger:  logger,
	}
}

// Resolve returns the first value found for s, validated by s.Validate.
func (r *Resolver) Resolve(s Setting) (Value, error) {
	for _, src := range r.sources {
		v, ok, err := src.Lookup(s.Name)
		if err != nil {
			return Value{}, fmt.Errorf("resolve %s from %s: %w", s.Name, src.Origin(), err)
		}
		if !ok {
			continue
		}

		if s.Validate != nil {
			if _, err := s.Validate(s.Name, &v); err != nil {
				return Value{}, fmt.Errorf("validate %s from %s: %w", s.Name, src.Origin(), err)
			}
		}

		r.logger.Debug("setting resolved",
			zap.String("setting", s.Name),
			zap.String("origin", string(src.Origin())),
		)
		return Value{Setting: s, Value: v, Present: true, Origin: src.Origin()}, nil
	}

	r.logger.Warn("setting unset", zap.String("setting", s.Name))
	return Value{Setting: s}, nil
}
