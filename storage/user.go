package storage

import (
	"fmt"
	"sync"

	"go-user-tasks/models"
)

type UserStorage struct {
	users []models.User
	mu    sync.Mutex
	ops   chan func(*[]models.User)
}

func NewUserStorage(seed []models.User) *UserStorage {
	us := &UserStorage{
		users: append(make([]models.User, 0, len(seed)), seed...),
		ops:   make(chan func(*[]models.User)),
	}
	go us.run()
	return us
}

func (us *UserStorage) run() {
	for op := range us.ops {
		us.mu.Lock()
		op(&us.users)
		us.mu.Unlock()
	}
}

func snapshot(users []models.User) []models.User {
	out := make([]models.User, len(users))
	copy(out, users)
	return out
}

// indexOf returns the position of the first user named name, or -1.
func indexOf(users []models.User, name string) int {
	for i, u := range users {
		if u.FirstName == name {
			return i
		}
	}
	return -1
}

// removeAt removes the element at index. An index outside the slice leaves
// it untouched and reports false.
func removeAt(users *[]models.User, index int) bool {
	if index < 0 || index >= len(*users) {
		return false
	}
	*users = append((*users)[:index], (*users)[index+1:]...)
	return true
}

func (us *UserStorage) GetAllUsers() []models.User {
	result := make(chan []models.User)
	us.ops <- func(users *[]models.User) {
		result <- snapshot(*users)
	}
	return <-result
}

func (us *UserStorage) GetUserByFirstName(name string) (models.User, error) {
	result := make(chan models.User)
	exists := make(chan bool)
	us.ops <- func(users *[]models.User) {
		i := indexOf(*users, name)
		if i < 0 {
			result <- models.User{}
			exists <- false
			return
		}
		result <- (*users)[i]
		exists <- true
	}
	user, found := <-result, <-exists
	if !found {
		return models.User{}, fmt.Errorf("user %q: %w", name, ErrNotFound)
	}
	return user, nil
}

// CreateUser appends user and returns the updated collection. Duplicate ids
// and names are accepted.
func (us *UserStorage) CreateUser(user models.User) []models.User {
	result := make(chan []models.User)
	us.ops <- func(users *[]models.User) {
		*users = append(*users, user)
		result <- snapshot(*users)
	}
	return <-result
}

// DeleteUserByFirstName removes the first user named name and returns the
// remaining collection.
func (us *UserStorage) DeleteUserByFirstName(name string) ([]models.User, error) {
	result := make(chan []models.User)
	exists := make(chan bool)
	us.ops <- func(users *[]models.User) {
		found := removeAt(users, indexOf(*users, name))
		result <- snapshot(*users)
		exists <- found
	}
	remaining, found := <-result, <-exists
	if !found {
		return nil, fmt.Errorf("user %q: %w", name, ErrNotFound)
	}
	return remaining, nil
}

func (us *UserStorage) Close() {
	close(us.ops)
}
