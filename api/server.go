// Package api exposes the user and task storages over HTTP/JSON.
//
//	GET    /_ping
//	GET    /tasks
//	GET    /tasks/{id}
//	GET    /users
//	POST   /users
//	GET    /users/{firstName}
//	DELETE /users/{firstName}
package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"go-user-tasks/models"
	"go-user-tasks/storage"
)

type UserStore interface {
	GetAllUsers() []models.User
	GetUserByFirstName(name string) (models.User, error)
	CreateUser(user models.User) []models.User
	DeleteUserByFirstName(name string) ([]models.User, error)
}

type TaskStore interface {
	GetAllTasks() []models.Task
	GetTask(id string) (models.Task, error)
}

type Server struct {
	Users UserStore
	Tasks TaskStore
}

func NewServer(users UserStore, tasks TaskStore) *Server {
	return &Server{Users: users, Tasks: tasks}
}

// Router returns the bare route table.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/_ping", s.pingHandler).Methods("GET")
	r.HandleFunc("/tasks", s.getAllTasksHandler).Methods("GET")
	r.HandleFunc("/tasks/{id}", s.getTaskHandler).Methods("GET")
	r.HandleFunc("/users", s.getAllUsersHandler).Methods("GET")
	r.HandleFunc("/users", s.createUserHandler).Methods("POST")
	r.HandleFunc("/users/{firstName}", s.getUserHandler).Methods("GET")
	r.HandleFunc("/users/{firstName}", s.deleteUserHandler).Methods("DELETE")
	return r
}

// Routes returns the route table with CORS open to every origin and panic
// recovery.
func (s *Server) Routes() http.Handler {
	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "If-None-Match"}),
		handlers.ExposedHeaders([]string{"ETag"}),
	)
	return handlers.RecoveryHandler(handlers.PrintRecoveryStack(true))(cors(s.Router()))
}

func (s *Server) pingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("pong"))
}

func (s *Server) getAllTasksHandler(w http.ResponseWriter, r *http.Request) {
	writeCollection(w, r, s.Tasks.GetAllTasks())
}

func (s *Server) getTaskHandler(w http.ResponseWriter, r *http.Request) {
	task, err := s.Tasks.GetTask(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (s *Server) getAllUsersHandler(w http.ResponseWriter, r *http.Request) {
	writeCollection(w, r, s.Users.GetAllUsers())
}

func (s *Server) getUserHandler(w http.ResponseWriter, r *http.Request) {
	user, err := s.Users.GetUserByFirstName(mux.Vars(r)["firstName"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (s *Server) createUserHandler(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := user.Validate(); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.Users.CreateUser(user.WithID()))
}

func (s *Server) deleteUserHandler(w http.ResponseWriter, r *http.Request) {
	remaining, err := s.Users.DeleteUserByFirstName(mux.Vars(r)["firstName"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, remaining)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("Error encoding response:", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, models.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.Println("Unhandled error:", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
