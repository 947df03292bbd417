package lists

import (
	"strconv"
	"time"

	"tableflip.dev/picklist/pkg/sorted"
	"tableflip.dev/picklist/pkg/tags"
)

// Item is one selectable list. It refers to its tags by ID only; the tags
// themselves live in a tags.Index.
type Item struct {
	id          string
	name        string
	description string
	size        int
	status      string
	typ         string
	timestamp   time.Time

	tagIDs   []string
	selected bool
}

// Snapshot is the serialized form of an Item with its tags expanded.
type Snapshot struct {
	ID          string      `json:"id" yaml:"id"`
	Name        string      `json:"name" yaml:"name"`
	Description string      `json:"description" yaml:"description"`
	Size        int         `json:"size" yaml:"size"`
	Status      string      `json:"status" yaml:"status"`
	Type        string      `json:"type" yaml:"type"`
	Timestamp   Timestamp   `json:"timestamp" yaml:"timestamp"`
	Selected    bool        `json:"selected" yaml:"selected"`
	Tags        []tags.JSON `json:"tags" yaml:"tags"`
}

// NewItem adapts a record, resolving each tag name against index.
func NewItem(rec Record, index *tags.Index) *Item {
	item := &Item{
		id:          rec.ID,
		name:        rec.Name,
		description: rec.Description,
		size:        rec.Size,
		status:      rec.Status,
		typ:         rec.Type,
		timestamp:   rec.Timestamp.Time,
	}
	if len(rec.Tags) > 0 {
		item.tagIDs = make([]string, 0, len(rec.Tags))
		for _, name := range rec.Tags {
			item.tagIDs = append(item.tagIDs, index.AddOrBump(name).ID)
		}
	}
	return item
}

func (i *Item) ID() string           { return i.id }
func (i *Item) Name() string         { return i.name }
func (i *Item) Description() string  { return i.description }
func (i *Item) Size() int            { return i.size }
func (i *Item) Status() string       { return i.status }
func (i *Item) Type() string         { return i.typ }
func (i *Item) Timestamp() time.Time { return i.timestamp }
func (i *Item) Selected() bool       { return i.selected }

// TagIDs returns the IDs of the item's tags.
func (i *Item) TagIDs() []string {
	return append([]string(nil), i.tagIDs...)
}

// Tags resolves the item's tags against index.
func (i *Item) Tags(index *tags.Index) []*tags.Tag {
	out := make([]*tags.Tag, 0, len(i.tagIDs))
	for _, id := range i.tagIDs {
		if tag, ok := index.Get(id); ok {
			out = append(out, tag)
		}
	}
	return out
}

// SortValue implements sorted.Sortable.
func (i *Item) SortValue(key string) sorted.Value {
	switch key {
	case "id":
		return sorted.String(i.id)
	case "name":
		return sorted.String(i.name)
	case "description":
		return sorted.String(i.description)
	case "status":
		return sorted.String(i.status)
	case "type":
		return sorted.String(i.typ)
	case "size":
		return sorted.Int(int64(i.size))
	case "timestamp":
		return sorted.Time(i.timestamp)
	default:
		return sorted.Value{}
	}
}

// Field returns the textual value of a field for selection matching.
func (i *Item) Field(key string) (string, bool) {
	switch key {
	case "id":
		return i.id, true
	case "name":
		return i.name, true
	case "description":
		return i.description, true
	case "status":
		return i.status, true
	case "type":
		return i.typ, true
	case "size":
		return strconv.Itoa(i.size), true
	case "timestamp":
		return Timestamp{Time: i.timestamp}.String(), true
	default:
		return "", false
	}
}

// Matches reports whether the field called key equals value.
func (i *Item) Matches(key, value string) bool {
	v, ok := i.Field(key)
	return ok && v == value
}

// Snapshot serializes the item, expanding tags through index.
func (i *Item) Snapshot(index *tags.Index) Snapshot {
	resolved := i.Tags(index)
	tagJSON := make([]tags.JSON, 0, len(resolved))
	for _, tag := range resolved {
		tagJSON = append(tagJSON, tag.JSON())
	}
	return Snapshot{
		ID:          i.id,
		Name:        i.name,
		Description: i.description,
		Size:        i.size,
		Status:      i.status,
		Type:        i.typ,
		Timestamp:   Timestamp{Time: i.timestamp},
		Selected:    i.selected,
		Tags:        tagJSON,
	}
}
