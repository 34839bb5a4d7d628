package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/rahulranjandev/trello-clone/logging"
	"github.com/rahulranjandev/trello-clone/services"
)

type TaskBoardHandler struct {
	boardService *services.TaskBoardService
}

func NewTaskBoardHandler(boardService *services.TaskBoardService) *TaskBoardHandler {
	return &TaskBoardHandler{boardService: boardService}
}

type createTaskBoardInput struct {
	Name string `json:"name"`
}

func (h *TaskBoardHandler) CreateTaskBoard(w http.ResponseWriter, r *http.Request) {
	user, ok := requestUser(w, r)
	if !ok {
		return
	}

	projectID := mux.Vars(r)["projectId"]

	var input createTaskBoardInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if input.Name == "" {
		writeMessage(w, http.StatusBadRequest, "Name is required")
		return
	}

	board, err := h.boardService.Create(r.Context(), projectID, user.ID, input.Name)
	if err != nil {
		writeError(w, err)
		return
	}

	logging.Logger.Infof("Event ID: TASKBOARD_CREATED, Description: Task board %s created under project %s", board.ID.Hex(), projectID)
	writeData(w, http.StatusCreated, board)
}

func (h *TaskBoardHandler) GetTaskBoardsByProject(w http.ResponseWriter, r *http.Request) {
	user, ok := requestUser(w, r)
	if !ok {
		return
	}

	projectID := mux.Vars(r)["projectId"]

	boards, err := h.boardService.ListByProject(r.Context(), projectID, user.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK, boards)
}

type updateTaskBoardInput struct {
	Name *string `json:"name"`
}

func (h *TaskBoardHandler) UpdateTaskBoard(w http.ResponseWriter, r *http.Request) {
	user, ok := requestUser(w, r)
	if !ok {
		return
	}

	boardID := mux.Vars(r)["taskBoardId"]

	var input updateTaskBoardInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	board, err := h.boardService.Update(r.Context(), boardID, user.ID, input.Name)
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK, board)
}

func (h *TaskBoardHandler) DeleteTaskBoard(w http.ResponseWriter, r *http.Request) {
	user, ok := requestUser(w, r)
	if !ok {
		return
	}

	boardID := mux.Vars(r)["taskBoardId"]

	if err := h.boardService.Delete(r.Context(), boardID, user.ID); err != nil {
		writeError(w, err)
		return
	}

	logging.Logger.Infof("Event ID: TASKBOARD_DELETED, Description: Task board %s deleted by user %s", boardID, user.ID.Hex())
	writeMessage(w, http.StatusOK, "TaskBoard deleted successfully")
}
