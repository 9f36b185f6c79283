package firestore

import (
	"time"

	"github.com/bussola-app/bussola/pkg/domain/model"
)

// RoundTripAction encodes an action the way Create stores it and decodes it back
func RoundTripAction(a *model.Action, loc *time.Location) (*model.Action, error) {
	return toActionDoc(a, loc).toModel(loc)
}
