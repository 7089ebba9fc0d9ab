package models

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var ErrInvalidInput = errors.New("invalid input")

// User is looked up by FirstName, which is not unique. Lookups return the
// first match in insertion order.
type User struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Title     string `json:"title"`
	Email     string `json:"email"`
	TaskID    string `json:"taskId,omitempty"`
}

func (u User) Validate() error {
	if u.FirstName == "" {
		return fmt.Errorf("%w: firstName is required", ErrInvalidInput)
	}
	return nil
}

// WithID returns u with a generated ID if it has none.
func (u User) WithID() User {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return u
}

// SeedUsers returns the users every process starts with.
func SeedUsers() []User {
	return []User{
		{ID: "1", FirstName: "Michael", LastName: "Stone", Title: "Mr", Email: "michael@example.com", TaskID: "20"},
		{ID: "2", FirstName: "John", LastName: "Barry", Title: "Mr", Email: "john@example.com", TaskID: "21"},
		{ID: "3", FirstName: "Mary", LastName: "Savage", Title: "Mrs", Email: "mary@example.com", TaskID: "22"},
	}
}
