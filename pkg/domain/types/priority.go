package types

// PriorityID is the slug of a priority level
type PriorityID string

const (
	PriorityLow    PriorityID = "low"
	PriorityMedium PriorityID = "medium"
	PriorityHigh   PriorityID = "high"
)

// IsUrgent reports whether the priority marks an action as urgent
func (p PriorityID) IsUrgent() bool {
	return p == PriorityHigh
}

// Validate checks if the PriorityID is a well-formed slug
func (p PriorityID) Validate() error {
	return validateSlug("priority", string(p))
}

// String returns the string representation of PriorityID
func (p PriorityID) String() string {
	return string(p)
}
