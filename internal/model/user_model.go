package model

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"

	DefaultAvatar   = "default-avatar.jpg"
	DefaultProvider = "local"
)

type User struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	Username     string    `bson:"username" json:"username"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password" json:"-"` // never JSON-encode
	Avatar       string    `bson:"avatar" json:"avatar"`
	Provider     string    `bson:"provider" json:"provider"`
	Role         string    `bson:"role" json:"role"`
	FirstName    string    `bson:"first_name,omitempty" json:"firstName,omitempty"`
	LastName     string    `bson:"last_name,omitempty" json:"lastName,omitempty"`
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
}

// PublicUser is the shape returned by auth endpoints. The password hash is
// excluded at the type level, not by post-hoc scrubbing.
type PublicUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar"`
	Provider string `json:"provider"`
	Role     string `json:"role"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Avatar:   u.Avatar,
		Provider: u.Provider,
		Role:     u.Role,
	}
}
