package controller

import "errors"

var (
	ErrInvalidConfig       = errors.New("invalid controller config")
	ErrMissingCollaborator = errors.New("missing collaborator")
	ErrDeactivated         = errors.New("controller deactivated")
)
