package models

import "time"

// User is a registered account. Username is the unique key and the only
// identifier the access-control layer ever looks at.
type User struct {
	Username    string
	Password    string
	FirstName   string
	LastName    string
	Phone       string
	JoinAt      time.Time
	LastLoginAt *time.Time
}

// UserSummary is the profile fragment embedded in enriched message records.
type UserSummary struct {
	Username  string
	FirstName string
	LastName  string
	Phone     string
}
