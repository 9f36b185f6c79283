package types

// StateID is the slug of a workflow state
type StateID string

const (
	StateIdea      StateID = "idea"
	StateDo        StateID = "do"
	StateDoing     StateID = "doing"
	StateReview    StateID = "review"
	StateDone      StateID = "done"
	StateApproved  StateID = "approved"
	StatePublished StateID = "published"
	StateFinished  StateID = "finished"
)

// IsTerminal reports whether the state ends the workflow. Terminal actions are never late.
func (s StateID) IsTerminal() bool {
	return s == StateFinished
}

// Validate checks if the StateID is a well-formed slug
func (s StateID) Validate() error {
	return validateSlug("state", string(s))
}

// String returns the string representation of StateID
func (s StateID) String() string {
	return string(s)
}
