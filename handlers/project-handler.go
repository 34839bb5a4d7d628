package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/rahulranjandev/trello-clone/logging"
	"github.com/rahulranjandev/trello-clone/services"
)

type ProjectHandler struct {
	projectService *services.ProjectService
}

func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

type createProjectInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	user, ok := requestUser(w, r)
	if !ok {
		return
	}

	var input createProjectInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if input.Name == "" || input.Description == "" {
		writeMessage(w, http.StatusBadRequest, "Name and description are required")
		return
	}

	project, err := h.projectService.Create(r.Context(), user.ID, input.Name, input.Description)
	if err != nil {
		writeError(w, err)
		return
	}

	logging.Logger.Infof("Event ID: PROJECT_CREATED, Description: Project %s created by user %s", project.ID.Hex(), user.ID.Hex())
	writeData(w, http.StatusCreated, project)
}

func (h *ProjectHandler) GetProjects(w http.ResponseWriter, r *http.Request) {
	user, ok := requestUser(w, r)
	if !ok {
		return
	}

	projects, err := h.projectService.ListByUser(r.Context(), user.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK, projects)
}

func (h *ProjectHandler) GetProjectByID(w http.ResponseWriter, r *http.Request) {
	user, ok := requestUser(w, r)
	if !ok {
		return
	}

	projectID := mux.Vars(r)["projectId"]

	project, err := h.projectService.GetOwned(r.Context(), projectID, user.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK, project)
}

type updateProjectInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (h *ProjectHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	user, ok := requestUser(w, r)
	if !ok {
		return
	}

	projectID := mux.Vars(r)["projectId"]

	var input updateProjectInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	project, err := h.projectService.Update(r.Context(), projectID, user.ID, input.Name, input.Description)
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK, project)
}

func (h *ProjectHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	user, ok := requestUser(w, r)
	if !ok {
		return
	}

	projectID := mux.Vars(r)["projectId"]

	if err := h.projectService.Delete(r.Context(), projectID, user.ID); err != nil {
		writeError(w, err)
		return
	}

	logging.Logger.Infof("Event ID: PROJECT_DELETED, Description: Project %s deleted by user %s", projectID, user.ID.Hex())
	writeMessage(w, http.StatusOK, "Project deleted successfully")
}
