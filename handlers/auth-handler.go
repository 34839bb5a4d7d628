package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rahulranjandev/trello-clone/logging"
	"github.com/rahulranjandev/trello-clone/middleware"
	"github.com/rahulranjandev/trello-clone/services"
)

type AuthHandler struct {
	userService *services.UserService
	jwtService  *services.JWTService
	secure      bool
	accessTTL   time.Duration
	refreshTTL  time.Duration
}

func NewAuthHandler(userService *services.UserService, jwtService *services.JWTService, secure bool, accessTTL, refreshTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		jwtService:  jwtService,
		secure:      secure,
		accessTTL:   accessTTL,
		refreshTTL:  refreshTTL,
	}
}

type registerInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a user and opens a session.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input registerInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if input.Name == "" || input.Email == "" || input.Password == "" {
		writeMessage(w, http.StatusBadRequest, "Name, email and password are required")
		return
	}

	user, err := h.userService.Register(r.Context(), input.Name, input.Email, input.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	token, err := h.setSessionCookies(w, user.ID.Hex(), user.Email)
	if err != nil {
		writeError(w, err)
		return
	}

	logging.Logger.Infof("Event ID: USER_REGISTERED, Description: New user registered: %s", user.ID.Hex())

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"data":  user.ID.Hex(),
		"token": token,
	})
}

// Login verifies credentials and opens a session.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input loginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if input.Email == "" || input.Password == "" {
		writeMessage(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, err := h.userService.Login(r.Context(), input.Email, input.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	token, err := h.setSessionCookies(w, user.ID.Hex(), user.Email)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"token": token,
		"data": map[string]string{
			"id":    user.ID.Hex(),
			"email": user.Email,
		},
	})
}

// Refresh exchanges a valid refresh token cookie for a fresh access token.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie("refresh_token")
	if err != nil || cookie.Value == "" {
		writeMessage(w, http.StatusUnauthorized, "Refresh token missing")
		return
	}

	claims, err := h.jwtService.ValidateRefreshToken(cookie.Value)
	if err != nil {
		writeMessage(w, http.StatusUnauthorized, "Invalid or expired refresh token")
		return
	}

	token, err := h.setSessionCookies(w, claims.UserID, claims.Email)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{"token": token})
}

// Logout clears the session cookies. Tokens are not revoked server-side;
// they stay valid until natural expiry.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.clearCookie(w, "access_token", "/", true)
	h.clearCookie(w, "refresh_token", "/api/auth", true)
	h.clearCookie(w, "logged_in", "/", false)

	writeMessage(w, http.StatusOK, "User logged out successfully")
}

// setSessionCookies issues both tokens and sets the session cookies:
// access_token and refresh_token are httpOnly; logged_in is a client-readable
// flag that carries no trust.
func (h *AuthHandler) setSessionCookies(w http.ResponseWriter, userID, email string) (string, error) {
	accessToken, err := h.jwtService.GenerateAccessToken(userID, email)
	if err != nil {
		return "", err
	}
	refreshToken, err := h.jwtService.GenerateRefreshToken(userID, email)
	if err != nil {
		return "", err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.secure,
		Expires:  time.Now().Add(h.accessTTL),
	})
	http.SetCookie(w, &http.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		Path:     "/api/auth",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.secure,
		Expires:  time.Now().Add(h.refreshTTL),
	})
	http.SetCookie(w, &http.Cookie{
		Name:     "logged_in",
		Value:    "true",
		Path:     "/",
		HttpOnly: false,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.secure,
		Expires:  time.Now().Add(h.accessTTL),
	})

	return accessToken, nil
}

func (h *AuthHandler) clearCookie(w http.ResponseWriter, name, path string, httpOnly bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     path,
		HttpOnly: httpOnly,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.secure,
		MaxAge:   -1,
	})
}

// requestUser pulls the authenticated identity out of the request context.
func requestUser(w http.ResponseWriter, r *http.Request) (middleware.AuthUser, bool) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "You are not logged in")
	}
	return user, ok
}
