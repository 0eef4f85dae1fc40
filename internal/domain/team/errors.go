package team

import "errors"

var (
	ErrTeamNotFound = errors.New("Team not found")
	ErrNameTaken    = errors.New("A team with this name already exists")
)
