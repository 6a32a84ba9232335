package calls

import (
	"errors"
	"log/slog"

	"github.com/rhino1998/calls/pkg/compiler/descriptors"
	"github.com/rhino1998/calls/pkg/compiler/types"
)

type VisibilityCheck interface {
	IsVisible(d descriptors.Callable, from descriptors.Declaration) bool
}

type VisibilityFunc func(d descriptors.Callable, from descriptors.Declaration) bool

func (f VisibilityFunc) IsVisible(d descriptors.Callable, from descriptors.Declaration) bool {
	return f(d, from)
}

type SubtypeCheck interface {
	IsSubtypeOf(sub, super types.Type) bool
}

type SubtypeFunc func(sub, super types.Type) bool

func (f SubtypeFunc) IsSubtypeOf(sub, super types.Type) bool {
	return f(sub, super)
}

type LocalityCheck interface {
	IsLocal(container, d descriptors.Declaration) bool
}

type LocalityFunc func(container, d descriptors.Declaration) bool

func (f LocalityFunc) IsLocal(container, d descriptors.Declaration) bool {
	return f(container, d)
}

type Config struct {
	Subtyping  SubtypeCheck
	Visibility VisibilityCheck
	Locality   LocalityCheck
}

func DefaultConfig() Config {
	return Config{
		Subtyping:  types.Checker{},
		Visibility: descriptors.Visibilities{},
		Locality:   descriptors.Locality{},
	}
}

func (c *Config) Validate(logger *slog.Logger) error {
	var errs []error
	if c.Subtyping == nil {
		errs = append(errs, errors.New("missing subtype check"))
	}

	if c.Visibility == nil {
		errs = append(errs, errors.New("missing visibility check"))
	}

	if c.Locality == nil {
		errs = append(errs, errors.New("missing locality check"))
	}

	if len(errs) > 0 {
		logger.Warn("invalid prioritizer config", "errors", len(errs))
	}

	return errors.Join(errs...)
}
