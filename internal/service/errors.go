package service

import "errors"

var (
	ErrInvalidTournament  = errors.New("invalid tournament")
	ErrInvalidScore       = errors.New("invalid score")
	ErrMatchAlreadyPlayed = errors.New("match already played")
	ErrForbidden          = errors.New("tournament belongs to another organizer")
	ErrNoOrganizer        = errors.New("organizer ID not found in the context")
)
