// Package tags aggregates the tags attached to lists into a deduplicated,
// counted and colorized index.
package tags

import (
	"tableflip.dev/picklist/pkg/colorhash"
	"tableflip.dev/picklist/pkg/sorted"
)

// Tag is one named label shared by any number of lists.
type Tag struct {
	ID     string
	Name   string
	Count  int
	Active bool
	RGB    colorhash.RGB
}

// JSON is the serialized form of a Tag.
type JSON struct {
	ID     string `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	Count  int    `json:"count" yaml:"count"`
	Active bool   `json:"active" yaml:"active"`
	RGB    []int  `json:"rgb" yaml:"rgb"`
}

// SortValue implements sorted.Sortable for the keys id, name and count.
func (t *Tag) SortValue(key string) sorted.Value {
	switch key {
	case "id":
		return sorted.String(t.ID)
	case "name":
		return sorted.String(t.Name)
	case "count":
		return sorted.Int(int64(t.Count))
	default:
		return sorted.Value{}
	}
}

// JSON returns the serialized form of t.
func (t *Tag) JSON() JSON {
	return JSON{
		ID:     t.ID,
		Name:   t.Name,
		Count:  t.Count,
		Active: t.Active,
		RGB:    t.RGB.Ints(),
	}
}
