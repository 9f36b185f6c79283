package model

import (
	"slices"

	"github.com/m-mizutani/goerr/v2"
)

// WouldViolateMinimumMembers reports whether removing member from members leaves the list empty.
// Callers check this before submitting a removal; partners and responsibles are never empty.
func WouldViolateMinimumMembers(members []string, member string) bool {
	if !slices.Contains(members, member) {
		return false
	}
	for _, m := range members {
		if m != member {
			return false
		}
	}
	return true
}

// RemovePartner returns the partner list without slug, or ErrLastPartner when slug is the last one
func (a *Action) RemovePartner(slug string) ([]string, error) {
	if WouldViolateMinimumMembers(a.Partners, slug) {
		return nil, goerr.Wrap(ErrLastPartner, "cannot remove the last partner",
			goerr.V(ActionIDKey, a.ID), goerr.V(PartnerKey, slug))
	}
	return removeMember(a.Partners, slug), nil
}

// RemoveResponsible returns the responsible list without userID, or ErrLastResponsible when userID is the last one
func (a *Action) RemoveResponsible(userID string) ([]string, error) {
	if WouldViolateMinimumMembers(a.Responsibles, userID) {
		return nil, goerr.Wrap(ErrLastResponsible, "cannot remove the last responsible",
			goerr.V(ActionIDKey, a.ID), goerr.V(ResponsibleKey, userID))
	}
	return removeMember(a.Responsibles, userID), nil
}

func removeMember(members []string, member string) []string {
	out := make([]string, 0, len(members))
	for _, m := range members {
		if m != member {
			out = append(out, m)
		}
	}
	return out
}

// addMember appends member when it is not already in the list
func addMember(members []string, member string) []string {
	if slices.Contains(members, member) {
		return slices.Clone(members)
	}
	return append(slices.Clone(members), member)
}
