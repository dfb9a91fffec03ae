package domain

import "time"

// Profile is the free-form metadata map attached to a user account
// (first name, last name, username, avatar URL). There is no schema
// enforcement: consumers must treat every field as optional.
type Profile map[string]string

type User struct {
	Id        UserId
	Email     Email
	PassHash  string
	Admin     bool
	Profile   Profile
	CreatedAt time.Time
}

type Credentials struct {
	Email    Email
	Password Password
}
