package types

import "github.com/google/uuid"

// ActionID is the opaque identifier of an action
type ActionID string

// NewActionID generates a new UUID v4 ActionID
func NewActionID() ActionID {
	return ActionID(uuid.New().String())
}

// String returns the string representation of ActionID
func (id ActionID) String() string {
	return string(id)
}

// TopicID is the identifier of a partner discussion topic
type TopicID string

// NewTopicID generates a new UUID v4 TopicID
func NewTopicID() TopicID {
	return TopicID(uuid.New().String())
}

// String returns the string representation of TopicID
func (id TopicID) String() string {
	return string(id)
}
