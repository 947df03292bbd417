// Package events defines the typed messages exchanged between the list
// collection, the tag index and whatever view sits on top of them.
package events

import "fmt"

// ComponentID identifies the component emitting an event.
type ComponentID string

// Msg is implemented by every message carried on a Bus.
type Msg interface {
	// Describe renders the message for logs.
	Describe() string
}

// ListRef identifies a list in cross-component events.
type ListRef struct {
	ID   string
	Name string
}

// Label returns a human-friendly identifier for the list.
func (r ListRef) Label() string {
	if r.Name != "" {
		return r.Name
	}
	return r.ID
}

// SelectMsg asks the list collection to toggle the list whose Key field
// equals Value. Force clears any other selected list first.
type SelectMsg struct {
	Component ComponentID
	Key       string
	Value     string
	Force     bool
}

// Describe implements Msg.
func (m SelectMsg) Describe() string {
	return fmt.Sprintf(`key:%q value:%q force:%t`, m.Key, m.Value, m.Force)
}

// SelectedCountMsg reports how many lists are selected after a toggle.
type SelectedCountMsg struct {
	Component ComponentID
	Count     int
}

// Describe implements Msg.
func (m SelectedCountMsg) Describe() string {
	return fmt.Sprintf(`count:%d`, m.Count)
}

// TagsChangedMsg announces that one or more tags changed their active flag.
type TagsChangedMsg struct {
	Component ComponentID
}

// Describe implements Msg.
func (m TagsChangedMsg) Describe() string {
	return fmt.Sprintf(`component:%q`, m.Component)
}

// SubmitMsg is emitted when the view finalizes its choice.
type SubmitMsg struct {
	Component ComponentID
	List      ListRef
}

// Describe implements Msg.
func (m SubmitMsg) Describe() string {
	return fmt.Sprintf(`list:%q id:%q`, m.List.Label(), m.List.ID)
}

// ChangeReason enumerates why a collection asks to be re-rendered.
type ChangeReason string

const (
	// ChangeAdd indicates a list was added.
	ChangeAdd ChangeReason = "add"
	// ChangePage indicates the page or page size moved.
	ChangePage ChangeReason = "page"
	// ChangeTags indicates the active tag set changed.
	ChangeTags ChangeReason = "tags"
	// ChangeSort indicates the sort order changed.
	ChangeSort ChangeReason = "sort"
)

// ListsChangedMsg asks listeners to refresh their view of the collection.
type ListsChangedMsg struct {
	Component ComponentID
	Reason    ChangeReason
}

// Describe implements Msg.
func (m ListsChangedMsg) Describe() string {
	return fmt.Sprintf(`component:%q reason:%q`, m.Component, m.Reason)
}
