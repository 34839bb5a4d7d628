package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rahulranjandev/trello-clone/logging"
	"github.com/rahulranjandev/trello-clone/services"
)

// Response envelope: success replies carry {"data": ...}, failures carry
// {"message": ...}.

func writeData(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{"data": data})
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}

// writeError maps service errors onto HTTP statuses. Ownership violations
// return 403; unexpected failures return a generic 500 with the cause logged
// server-side only.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidID), errors.Is(err, services.ErrValidation):
		writeMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrNotFound):
		writeMessage(w, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrForbidden):
		writeMessage(w, http.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrConflict):
		writeMessage(w, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		writeMessage(w, http.StatusBadRequest, "Invalid credentials")
	default:
		logging.Logger.Errorf("Event ID: INTERNAL_ERROR, Description: Unexpected failure: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Internal Server Error")
	}
}
