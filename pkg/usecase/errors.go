package usecase

import "github.com/m-mizutani/goerr/v2"

var (
	// ErrActionNotFound is returned when the action does not exist
	ErrActionNotFound = goerr.New("action not found")

	// ErrInvalidIntent is returned when a submission carries an unknown intent
	ErrInvalidIntent = goerr.New("invalid intent")

	// ErrUnknownShortcut is returned when no date, category, state or priority is bound to a key
	ErrUnknownShortcut = goerr.New("unknown shortcut")

	// ErrInvalidInput is returned when a required argument is missing
	ErrInvalidInput = goerr.New("invalid input")

	// ErrCopywriterNotConfigured is returned when captions are requested without an LLM
	ErrCopywriterNotConfigured = goerr.New("copywriter is not configured")

	// ErrStorageNotConfigured is returned when a file is uploaded without storage
	ErrStorageNotConfigured = goerr.New("file storage is not configured")
)

// Context keys for error values
const (
	ActionIDKey = "action_id"
	IntentKey   = "intent"
	ShortcutKey = "shortcut"
	UserIDKey   = "user_id"
	PartnerKey  = "partner"
	FileNameKey = "file_name"
)
