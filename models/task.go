package models

type Task struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	AssignedTo  string `json:"assignedTo"`
}

// SeedTasks returns the tasks every process starts with.
func SeedTasks() []Task {
	return []Task{
		{ID: "20", Title: "Restocking", Description: "please restock soft drinks section", Status: "to be completed", AssignedTo: "1"},
		{ID: "21", Title: "Cleaning", Description: "please clean your desk!", Status: "to be completed", AssignedTo: "2"},
		{ID: "22", Title: "Documentation update", Description: "please update our customers details", Status: "to be completed", AssignedTo: "3"},
	}
}
