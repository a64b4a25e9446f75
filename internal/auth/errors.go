package auth

import "errors"

// ErrAnonymous is returned by workflow operations that require a
// logged-in user. Handlers turn it into a redirect to /login.
var ErrAnonymous = errors.New("authentication required")

// ErrNotOwner is returned when an authenticated user tries to modify
// a record they do not own. Handlers render an inline denial, never
// a redirect.
var ErrNotOwner = errors.New("permission denied")
