package service

import "errors"

var (
	ErrInvalid  = errors.New("invalid")
	ErrNotFound = errors.New("not found")
	// ErrMissingCredential is raised before any network call when the
	// selected provider has no usable API key.
	ErrMissingCredential = errors.New("no API key configured for the selected provider")
	// ErrNoResults means the provider call succeeded but returned an
	// empty list. This never triggers the catalog fallback.
	ErrNoResults = errors.New("no results found")
	// ErrProvider wraps adapter failures that could not be compensated
	// by the offline catalog.
	ErrProvider = errors.New("provider search failed")
	// ErrSuperseded means a newer search settled first; the result of
	// this one was discarded without touching the view state.
	ErrSuperseded = errors.New("search superseded")
)
