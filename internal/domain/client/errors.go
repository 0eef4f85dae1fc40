package client

import "errors"

var (
	ErrClientNotFound = errors.New("Client not found")
	ErrSlugTaken      = errors.New("A client with this name already exists")
)
