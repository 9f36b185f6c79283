package firestore

import (
	"github.com/m-mizutani/goerr/v2"

	"github.com/bussola-app/bussola/pkg/domain/interfaces"
)

var (
	// ErrNotFound is returned when a document does not exist
	ErrNotFound = interfaces.ErrNotFound
	// ErrAlreadyExists is returned when creating a document whose ID is taken
	ErrAlreadyExists = goerr.New("already exists")
)
