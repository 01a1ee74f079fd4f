package models

// CallerIdentity is the authenticated identity attached to a request by the
// auth middleware. Handlers pass it explicitly to services instead of reading
// ambient request state; a nil *CallerIdentity means an anonymous caller.
type CallerIdentity struct {
	UserID  int64  `json:"userId"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}
