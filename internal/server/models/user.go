package models

import "time"

// User is an account record. HashedPassword is never serialized; only the
// bcrypt hash is ever persisted, the plaintext exists transiently in the
// registration/login request path.
type User struct {
	ID              string     `json:"id"`
	Email           string     `json:"email"`
	Name            string     `json:"name"`
	HashedPassword  string     `json:"-"`
	PhoneNumber     *string    `json:"phone_number,omitempty"`
	UserType        UserType   `json:"user_type"`
	Status          UserStatus `json:"status"`
	Age             *int       `json:"age,omitempty"`
	Gender          *Gender    `json:"gender,omitempty"`
	AvatarURI       *string    `json:"avatar_uri,omitempty"`
	FavoritePhrases []string   `json:"favorite_phrases"`
	IsActive        bool       `json:"is_active"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
