package app

import (
	"fmt"

	"golang.org/x/text/language"

	"tableflip.dev/picklist/pkg/sorted"
	"tableflip.dev/picklist/pkg/store"
)

// ConfigFrom translates the stored configuration into a chooser Config.
func ConfigFrom(cfg store.Config) (Config, error) {
	out := Config{
		Catalog: cfg.BasePath(),
		PerPage: cfg.PerPage(),
		Provided: Provided{
			Selected: cfg.Selected(),
			Hidden:   cfg.Hidden(),
		},
	}
	if s := cfg.SortOrder(); s != "" {
		order, err := sorted.ParseSortOrder(s)
		if err != nil {
			return Config{}, fmt.Errorf("app: sort: %w", err)
		}
		out.Sort = order
	}
	if l := cfg.Locale(); l != "" {
		tag, err := language.Parse(l)
		if err != nil {
			return Config{}, fmt.Errorf("app: locale %q: %w", l, err)
		}
		out.Locale = tag
	}
	return out, nil
}
