// Package auth provides user accounts, sessions, passkeys, and the
// ownership check used by the campground and comment workflows.
package auth

// Identity is a resolved authenticated user attached to a request.
// A nil *Identity means the request is anonymous.
type Identity struct {
	UserID   int64
	Username string
}

// CanModify reports whether identity may modify a record owned by ownerID.
// An anonymous identity can never modify anything. Pure predicate, no
// side effects.
func CanModify(identity *Identity, ownerID int64) bool {
	return identity != nil && identity.UserID == ownerID
}
