package lists

// Record is a list as delivered by the data source.
type Record struct {
	ID          string    `json:"id" yaml:"id"`
	Name        string    `json:"name" yaml:"name"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Size        int       `json:"size" yaml:"size"`
	Status      string    `json:"status,omitempty" yaml:"status,omitempty"`
	Type        string    `json:"type,omitempty" yaml:"type,omitempty"`
	Timestamp   Timestamp `json:"timestamp" yaml:"timestamp"`
	Tags        []string  `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// Key returns the identifier a record is stored under, falling back to its
// name when the source supplied no ID.
func (r Record) Key() string {
	if r.ID != "" {
		return r.ID
	}
	return r.Name
}
