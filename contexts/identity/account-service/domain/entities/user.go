package entities

import "time"

// User is an account row. Username and Email are unique across the store.
// PasswordHash is never exposed through the transport layer.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	MiddleName   string
	IsActive     bool
	IsAdmin      bool
	IsEditor     bool
	DateJoined   time.Time
}
