package types

import "fmt"

// OrderBy selects the primary sort key of an action list
type OrderBy string

const (
	OrderByState    OrderBy = "state"
	OrderByPriority OrderBy = "priority"
	OrderByTime     OrderBy = "time"
	OrderByDate     OrderBy = "date"
	OrderByTitle    OrderBy = "title"
)

// IsValid checks if the sort key is valid
func (o OrderBy) IsValid() bool {
	switch o {
	case OrderByState, OrderByPriority, OrderByTime, OrderByDate, OrderByTitle:
		return true
	default:
		return false
	}
}

// ParseOrderBy parses a string into an OrderBy. Empty input selects OrderByDate.
func ParseOrderBy(s string) (OrderBy, error) {
	if s == "" {
		return OrderByDate, nil
	}
	o := OrderBy(s)
	if !o.IsValid() {
		return "", fmt.Errorf("invalid order: %s", s)
	}
	return o, nil
}

// Direction is the sort direction
type Direction string

const (
	DirectionAsc  Direction = "asc"
	DirectionDesc Direction = "desc"
)

// IsValid checks if the direction is valid
func (d Direction) IsValid() bool {
	return d == DirectionAsc || d == DirectionDesc
}

// ParseDirection parses a string into a Direction. Empty input selects DirectionAsc.
func ParseDirection(s string) (Direction, error) {
	if s == "" {
		return DirectionAsc, nil
	}
	d := Direction(s)
	if !d.IsValid() {
		return "", fmt.Errorf("invalid direction: %s", s)
	}
	return d, nil
}
