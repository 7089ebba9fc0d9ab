package storage

import (
	"errors"
	"testing"

	"go-user-tasks/models"
)

func TestGetAllTasks(t *testing.T) {
	ts := NewTaskStorage(models.SeedTasks())
	defer ts.Close()

	tasks := ts.GetAllTasks()
	if len(tasks) != 3 {
		t.Fatalf("got %d tasks, want 3", len(tasks))
	}
	for i, id := range []string{"20", "21", "22"} {
		if tasks[i].ID != id {
			t.Errorf("tasks[%d].ID = %q, want %q", i, tasks[i].ID, id)
		}
	}
}

func TestGetAllTasksEmpty(t *testing.T) {
	ts := NewTaskStorage(nil)
	defer ts.Close()

	tasks := ts.GetAllTasks()
	if tasks == nil || len(tasks) != 0 {
		t.Errorf("got %#v, want empty non-nil slice", tasks)
	}
}

func TestGetTask(t *testing.T) {
	ts := NewTaskStorage(models.SeedTasks())
	defer ts.Close()

	task, err := ts.GetTask("21")
	if err != nil {
		t.Fatal(err)
	}
	if task.Title != "Cleaning" || task.AssignedTo != "2" {
		t.Errorf("got %+v", task)
	}

	if _, err := ts.GetTask("99"); !errors.Is(err, ErrNotFound) {
		t.Errorf("got err %v, want ErrNotFound", err)
	}
}
