package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rahulranjandev/trello-clone/logging"
	"github.com/rahulranjandev/trello-clone/models"
	"github.com/rahulranjandev/trello-clone/services"
)

type TaskHandler struct {
	taskService *services.TaskService
}

func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

type createTaskInput struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Status      models.TaskStatus `json:"status"`
	Tags        []string          `json:"tags"`
	DueDate     time.Time         `json:"dueDate"`
	Assignees   []string          `json:"assignees"`
}

func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	user, ok := requestUser(w, r)
	if !ok {
		return
	}

	boardID := mux.Vars(r)["taskBoardId"]

	var input createTaskInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if input.Name == "" || input.Description == "" {
		writeMessage(w, http.StatusBadRequest, "Name and description are required")
		return
	}

	assignees, err := parseObjectIDs(input.Assignees)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid assignee ID")
		return
	}

	task, err := h.taskService.Create(r.Context(), boardID, user.ID, services.CreateTaskInput{
		Name:        input.Name,
		Description: input.Description,
		Status:      input.Status,
		Tags:        input.Tags,
		DueDate:     input.DueDate,
		Assignees:   assignees,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	logging.Logger.Infof("Event ID: TASK_CREATED, Description: Task %s created under board %s", task.ID.Hex(), boardID)
	writeData(w, http.StatusCreated, task)
}

// GetTasksByBoard lists the tasks of a board owned by the caller.
func (h *TaskHandler) GetTasksByBoard(w http.ResponseWriter, r *http.Request) {
	user, ok := requestUser(w, r)
	if !ok {
		return
	}

	boardID := mux.Vars(r)["taskBoardId"]

	tasks, err := h.taskService.ListByBoard(r.Context(), boardID, user.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK, tasks)
}

func (h *TaskHandler) GetTaskByID(w http.ResponseWriter, r *http.Request) {
	user, ok := requestUser(w, r)
	if !ok {
		return
	}

	taskID := mux.Vars(r)["taskId"]

	task, err := h.taskService.Get(r.Context(), taskID, user.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK, task)
}

type updateTaskInput struct {
	Name        *string            `json:"name"`
	Description *string            `json:"description"`
	Status      *models.TaskStatus `json:"status"`
	Tags        *[]string          `json:"tags"`
	DueDate     *time.Time         `json:"dueDate"`
	Assignees   *[]string          `json:"assignees"`
}

func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	user, ok := requestUser(w, r)
	if !ok {
		return
	}

	taskID := mux.Vars(r)["taskId"]

	var input updateTaskInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	update := services.UpdateTaskInput{
		Name:        input.Name,
		Description: input.Description,
		Status:      input.Status,
		Tags:        input.Tags,
		DueDate:     input.DueDate,
	}
	if input.Assignees != nil {
		assignees, err := parseObjectIDs(*input.Assignees)
		if err != nil {
			writeMessage(w, http.StatusBadRequest, "Invalid assignee ID")
			return
		}
		update.Assignees = &assignees
	}

	task, err := h.taskService.Update(r.Context(), taskID, user.ID, update)
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK, task)
}

// MoveTask reparents a task onto another board owned by the same user.
func (h *TaskHandler) MoveTask(w http.ResponseWriter, r *http.Request) {
	user, ok := requestUser(w, r)
	if !ok {
		return
	}

	vars := mux.Vars(r)
	taskID := vars["taskId"]
	boardID := vars["taskBoardId"]

	task, err := h.taskService.Move(r.Context(), taskID, boardID, user.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	logging.Logger.Infof("Event ID: TASK_MOVED, Description: Task %s moved to board %s", taskID, boardID)
	writeData(w, http.StatusOK, task)
}

func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	user, ok := requestUser(w, r)
	if !ok {
		return
	}

	taskID := mux.Vars(r)["taskId"]

	if err := h.taskService.Delete(r.Context(), taskID, user.ID); err != nil {
		writeError(w, err)
		return
	}

	logging.Logger.Infof("Event ID: TASK_DELETED, Description: Task %s deleted by user %s", taskID, user.ID.Hex())
	writeMessage(w, http.StatusOK, "Task deleted successfully")
}

func parseObjectIDs(hexIDs []string) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(hexIDs))
	for _, hexID := range hexIDs {
		id, err := primitive.ObjectIDFromHex(hexID)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
