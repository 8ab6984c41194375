package domain

// Session is the client-side authenticated session: an opaque bearer token
// plus the user summary it belongs to. Persisted locally until logout or
// token rejection.
type Session struct {
	Token     string `json:"token"`
	User      *User  `json:"user,omitempty"`
	IsVisitor bool   `json:"isVisitor"`
}

// Authenticated reports whether the session holds a usable token.
func (s *Session) Authenticated() bool {
	return s != nil && s.Token != ""
}
