package domain

import "time"

// User is an account record. PasswordHash is a bcrypt encoded string and
// must never leave the store/service layers; handlers expose PublicUser.
type User struct {
	ID           string
	Username     string
	Name         string
	Email        string
	PasswordHash string
	Phone        string
	PictureURL   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PublicUser is the subset of User safe to put in a response body.
type PublicUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

// Public strips everything that must not leave the server.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Username: u.Username,
		Name:     u.Name,
		Email:    u.Email,
	}
}
