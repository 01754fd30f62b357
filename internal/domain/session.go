package domain

// Session is the client-held state reconstructed from the session cookie on
// every request. It is a small string-to-string mapping; the only key the
// application sets is SessionKeyUserID. There is no server-side session
// storage: the signed cookie is the session.
type Session map[string]string

// SessionKeyUserID keys the identifier of the logged-in user.
const SessionKeyUserID = "userId"

// UserID returns the session's user id, or "" when not logged in.
func (s Session) UserID() string {
	return s[SessionKeyUserID]
}
