package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rahulranjandev/trello-clone/services"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetUser returns the authenticated user's own profile.
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, ok := requestUser(w, r)
	if !ok {
		return
	}

	profile, err := h.userService.GetByID(r.Context(), user.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK, profile)
}

type updateUserInput struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

// UpdateUser partially updates the authenticated user's name and/or email.
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	user, ok := requestUser(w, r)
	if !ok {
		return
	}

	var input updateUserInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	updated, err := h.userService.UpdateProfile(r.Context(), user.ID, input.Name, input.Email)
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK, updated)
}
