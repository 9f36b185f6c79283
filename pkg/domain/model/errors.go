package model

import "github.com/m-mizutani/goerr/v2"

// Validation errors
var (
	ErrMissingTitle    = goerr.New("action title is required")
	ErrLastPartner     = goerr.New("an action must keep at least one partner")
	ErrLastResponsible = goerr.New("an action must keep at least one responsible")
	ErrInvalidCatalog  = goerr.New("invalid catalog")
)

// Context keys for error values
const (
	ActionIDKey    = "action_id"
	PartnerKey     = "partner"
	ResponsibleKey = "responsible"
	CategoryIDKey  = "category_id"
	StateIDKey     = "state_id"
	PriorityIDKey  = "priority_id"
)
