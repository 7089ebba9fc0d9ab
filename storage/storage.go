package storage

import (
	"errors"
	"fmt"
	"sync"

	"go-user-tasks/models"
)

var ErrNotFound = errors.New("not found")

type TaskStorage struct {
	tasks []models.Task
	mu    sync.Mutex
	ops   chan func(*[]models.Task)
}

// NewTaskStorage returns a storage holding a copy of seed. Every operation
// runs on a single loop, so callers never observe a partial mutation.
func NewTaskStorage(seed []models.Task) *TaskStorage {
	ts := &TaskStorage{
		tasks: append(make([]models.Task, 0, len(seed)), seed...),
		ops:   make(chan func(*[]models.Task)),
	}
	go ts.run()
	return ts
}

func (ts *TaskStorage) run() {
	for op := range ts.ops {
		ts.mu.Lock()
		op(&ts.tasks)
		ts.mu.Unlock()
	}
}

func (ts *TaskStorage) GetTask(id string) (models.Task, error) {
	result := make(chan models.Task)
	exists := make(chan bool)
	ts.ops <- func(tasks *[]models.Task) {
		var task models.Task
		found := false
		for _, t := range *tasks {
			if t.ID == id {
				task, found = t, true
				break
			}
		}
		result <- task
		exists <- found
	}
	task, found := <-result, <-exists
	if !found {
		return models.Task{}, fmt.Errorf("task %q: %w", id, ErrNotFound)
	}
	return task, nil
}

func (ts *TaskStorage) GetAllTasks() []models.Task {
	result := make(chan []models.Task)
	ts.ops <- func(tasks *[]models.Task) {
		allTasks := make([]models.Task, len(*tasks))
		copy(allTasks, *tasks)
		result <- allTasks
	}
	return <-result
}

// Close stops the operation loop. The storage must not be used afterwards.
func (ts *TaskStorage) Close() {
	close(ts.ops)
}
