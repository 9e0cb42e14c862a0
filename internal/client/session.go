package client

import "logbook/internal/models"

// Session is the client-held record of the signed-in user. It lives only on
// the client (persisted browser-side in the original system); the server does
// not track it.
type Session struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Approved bool   `json:"approved"`
}

func (s Session) IsAdmin() bool { return s.Role == models.RoleAdmin }
func (s Session) IsOJT() bool   { return s.Role == models.RoleOJT }
