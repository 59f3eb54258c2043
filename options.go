package otm

import (
	"fmt"
	"log/slog"

	"github.com/jacoelho/otm/internal/loader"
	"github.com/jacoelho/otm/internal/view"
)

// LoadOptions configures model loading.
type LoadOptions struct {
	format          string
	logger          *slog.Logger
	allowUnresolved bool
}

// ViewOptions configures resolved views and dependency listings.
type ViewOptions struct {
	format                string
	includeDuplicateNames bool
	includeGhosts         bool
	substituteEmpty       bool
}

// NewLoadOptions returns a default, valid load options value.
func NewLoadOptions() LoadOptions {
	return LoadOptions{}
}

// NewViewOptions returns a default, valid view options value.
func NewViewOptions() ViewOptions {
	return ViewOptions{}
}

// Validate validates load options values.
func (o LoadOptions) Validate() error {
	_, err := o.config()
	return err
}

// WithFormat forces every document to be decoded as "hcl" or "yaml". The
// empty string and "auto" detect the format from the file extension.
func (o LoadOptions) WithFormat(name string) LoadOptions {
	o.format = name
	return o
}

// WithLogger sets the logger used while loading (nil uses slog.Default).
func (o LoadOptions) WithLogger(logger *slog.Logger) LoadOptions {
	o.logger = logger
	return o
}

// WithAllowUnresolved controls whether references to unknown entities are
// reported as warnings instead of failing the load.
func (o LoadOptions) WithAllowUnresolved(value bool) LoadOptions {
	o.allowUnresolved = value
	return o
}

func (o LoadOptions) config() (loader.Config, error) {
	format, err := loader.ParseFormat(o.format)
	if err != nil {
		return loader.Config{}, fmt.Errorf("load options: %w", err)
	}
	return loader.Config{Format: format, AllowUnresolved: o.allowUnresolved}, nil
}

// Validate validates view options values.
func (o ViewOptions) Validate() error {
	_, err := view.ParseFormat(o.format)
	if err != nil {
		return fmt.Errorf("view options: %w", err)
	}
	return nil
}

// WithFormat sets the view encoding, "json" (default) or "yaml".
func (o ViewOptions) WithFormat(name string) ViewOptions {
	o.format = name
	return o
}

// WithIncludeDuplicateNames keeps inherited attributes whose name is also
// used by a more ancestral attribute.
func (o ViewOptions) WithIncludeDuplicateNames(value bool) ViewOptions {
	o.includeDuplicateNames = value
	return o
}

// WithIncludeGhosts includes inherited contextual facets that an owner does
// not declare.
func (o ViewOptions) WithIncludeGhosts(value bool) ViewOptions {
	o.includeGhosts = value
	return o
}

// WithSubstituteEmpty redirects references to facets without content to
// the nearest sibling facet that has some.
func (o ViewOptions) WithSubstituteEmpty(value bool) ViewOptions {
	o.substituteEmpty = value
	return o
}

func (o ViewOptions) view() view.Options {
	return view.Options{
		IncludeDuplicateNames: o.includeDuplicateNames,
		IncludeGhosts:         o.includeGhosts,
		SubstituteEmpty:       o.substituteEmpty,
	}
}
