package types

import "fmt"

// Intent tags a mutation submitted to the persistence boundary
type Intent string

const (
	IntentCreateAction    Intent = "createAction"
	IntentUpdateAction    Intent = "updateAction"
	IntentUpdateActions   Intent = "updateActions"
	IntentDeleteAction    Intent = "deleteAction"
	IntentRecoverAction   Intent = "recoverAction"
	IntentDestroyAction   Intent = "destroyAction"
	IntentDuplicateAction Intent = "duplicateAction"
	IntentSetSprint       Intent = "setSprint"
	IntentUnsetSprint     Intent = "unsetSprint"
	IntentCreateTopic     Intent = "createTopic"
)

// AllIntents returns all valid intents
func AllIntents() []Intent {
	return []Intent{
		IntentCreateAction,
		IntentUpdateAction,
		IntentUpdateActions,
		IntentDeleteAction,
		IntentRecoverAction,
		IntentDestroyAction,
		IntentDuplicateAction,
		IntentSetSprint,
		IntentUnsetSprint,
		IntentCreateTopic,
	}
}

// IsValid checks if the intent is valid
func (i Intent) IsValid() bool {
	switch i {
	case IntentCreateAction,
		IntentUpdateAction,
		IntentUpdateActions,
		IntentDeleteAction,
		IntentRecoverAction,
		IntentDestroyAction,
		IntentDuplicateAction,
		IntentSetSprint,
		IntentUnsetSprint,
		IntentCreateTopic:
		return true
	default:
		return false
	}
}

// String returns the string representation of the intent
func (i Intent) String() string {
	return string(i)
}

// ParseIntent parses a string into an Intent
func ParseIntent(s string) (Intent, error) {
	intent := Intent(s)
	if !intent.IsValid() {
		return "", fmt.Errorf("invalid intent: %s", s)
	}
	return intent, nil
}
