package models

import "time"

// User represents an account entity used for authentication and profile
// display. The password hash must never leave the server process, so it is
// excluded from JSON serialization.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Username is the unique, immutable login identifier chosen at
	// registration time.
	Username string `json:"username"`

	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string `json:"-"`

	// ProfileName is the mutable display name. Defaults to Username at
	// registration.
	ProfileName string `json:"profile_name"`

	// ProfilePic is the original filename of the uploaded profile image,
	// empty until the user uploads one.
	ProfilePic string `json:"profile_pic"`

	// ProfilePicReal is the server-relative path of the stored profile
	// image. Defaults to the placeholder image.
	ProfilePicReal string `json:"profile_pic_real"`

	// ProfileInfo is the free-text bio. May be empty.
	ProfileInfo string `json:"profile_info"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// ProfileUpdate describes a profile mutation. ProfileName and ProfileInfo
// are written unconditionally (an empty string clears the field); the
// picture fields are written only when HasImage is set.
type ProfileUpdate struct {
	Username       string
	ProfileName    string
	ProfileInfo    string
	ProfilePic     string
	ProfilePicReal string
	HasImage       bool
}

// ProfileImage is the result of persisting an uploaded profile image.
type ProfileImage struct {
	// FileName is the sanitized original filename as supplied by the client.
	FileName string

	// RealPath is the server-relative path under which the image is served,
	// e.g. "img/profile/alice.png".
	RealPath string
}
