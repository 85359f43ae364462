package models

// AccessAuth is the access scope tag attached to every login session token.
const AccessAuth = "auth"

// Session is one entry of a user's active-token list. A user may hold any
// number of sessions at once (multi-device); logging out removes exactly the
// session whose token was presented.
type Session struct {
	ID     int64  `json:"-"`
	UserID int64  `json:"-"`
	Access string `json:"access"`
	Token  string `json:"token"`
}
