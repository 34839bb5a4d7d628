package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/rahulranjandev/trello-clone/middleware"
)

// NewRouter builds the full route table. Everything under /api except the
// auth endpoints requires a valid session resolving to an existing user.
func NewRouter(
	authMiddleware *middleware.AuthMiddleware,
	authHandler *AuthHandler,
	userHandler *UserHandler,
	projectHandler *ProjectHandler,
	boardHandler *TaskBoardHandler,
	taskHandler *TaskHandler,
) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeMessage(w, http.StatusOK, "Server is healthy")
	}).Methods(http.MethodGet)

	auth := r.PathPrefix("/api/auth").Subrouter()
	auth.HandleFunc("/register", authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh", authHandler.Refresh).Methods(http.MethodPost)
	auth.Handle("/logout", authMiddleware.Authenticate(http.HandlerFunc(authHandler.Logout))).Methods(http.MethodPost)

	user := r.PathPrefix("/api/user").Subrouter()
	user.Use(authMiddleware.Authenticate)
	user.HandleFunc("", userHandler.GetUser).Methods(http.MethodGet)
	user.HandleFunc("", userHandler.UpdateUser).Methods(http.MethodPut)

	project := r.PathPrefix("/api/project").Subrouter()
	project.Use(authMiddleware.Authenticate)
	project.HandleFunc("", projectHandler.CreateProject).Methods(http.MethodPost)
	project.HandleFunc("", projectHandler.GetProjects).Methods(http.MethodGet)
	project.HandleFunc("/{projectId}", projectHandler.GetProjectByID).Methods(http.MethodGet)
	project.HandleFunc("/{projectId}", projectHandler.UpdateProject).Methods(http.MethodPut)
	project.HandleFunc("/{projectId}", projectHandler.DeleteProject).Methods(http.MethodDelete)

	board := r.PathPrefix("/api/task-board").Subrouter()
	board.Use(authMiddleware.Authenticate)
	board.HandleFunc("/{projectId}", boardHandler.CreateTaskBoard).Methods(http.MethodPost)
	board.HandleFunc("/{projectId}", boardHandler.GetTaskBoardsByProject).Methods(http.MethodGet)
	board.HandleFunc("/{taskBoardId}", boardHandler.UpdateTaskBoard).Methods(http.MethodPut)
	board.HandleFunc("/{taskBoardId}", boardHandler.DeleteTaskBoard).Methods(http.MethodDelete)

	task := r.PathPrefix("/api/task").Subrouter()
	task.Use(authMiddleware.Authenticate)
	task.HandleFunc("/{taskBoardId}", taskHandler.CreateTask).Methods(http.MethodPost)
	task.HandleFunc("/board/{taskBoardId}", taskHandler.GetTasksByBoard).Methods(http.MethodGet)
	task.HandleFunc("/{taskId}", taskHandler.GetTaskByID).Methods(http.MethodGet)
	task.HandleFunc("/{taskId}", taskHandler.UpdateTask).Methods(http.MethodPut)
	task.HandleFunc("/{taskId}", taskHandler.DeleteTask).Methods(http.MethodDelete)
	task.HandleFunc("/{taskId}/move/{taskBoardId}", taskHandler.MoveTask).Methods(http.MethodPatch)

	return r
}
