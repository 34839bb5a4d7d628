package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rahulranjandev/trello-clone/logging"
	"github.com/rahulranjandev/trello-clone/repositories"
	"github.com/rahulranjandev/trello-clone/services"
)

type contextKey string

const userContextKey contextKey = "authUser"

// AuthUser is the identity attached to the request context after the session
// token resolved to an existing user.
type AuthUser struct {
	ID    primitive.ObjectID
	Email string
}

// AuthMiddleware authenticates every protected request in two stages: the
// session token is validated (cookie first, then bearer header), then the
// user is re-fetched from the store so a token for a deleted account is
// rejected rather than trusted.
type AuthMiddleware struct {
	jwtService *services.JWTService
	userRepo   repositories.UserRepository
}

func NewAuthMiddleware(jwtService *services.JWTService, userRepo repositories.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService, userRepo: userRepo}
}

// Authenticate wraps next, rejecting requests without a valid session.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenStr := extractToken(r)
		if tokenStr == "" {
			logging.Logger.Warnf("Event ID: AUTH_TOKEN_MISSING, Description: No session token for request to %s %s", r.Method, r.URL.Path)
			unauthenticated(w, "You are not logged in")
			return
		}

		claims, err := m.jwtService.ValidateAccessToken(tokenStr)
		if err != nil {
			logging.Logger.Warnf("Event ID: AUTH_TOKEN_INVALID, Description: Invalid token for request to %s %s: %v", r.Method, r.URL.Path, err)
			unauthenticated(w, "Invalid or expired token")
			return
		}

		userID, err := primitive.ObjectIDFromHex(claims.UserID)
		if err != nil {
			logging.Logger.Warnf("Event ID: AUTH_CLAIMS_INVALID, Description: Malformed user id in token claims: %v", err)
			unauthenticated(w, "Invalid or expired token")
			return
		}

		// The claims alone are not trusted: the user must still exist.
		user, err := m.userRepo.GetByID(r.Context(), userID)
		if err != nil {
			logging.Logger.Errorf("Event ID: AUTH_USER_LOOKUP_FAILED, Description: Failed to resolve user from token: %v", err)
			writeJSON(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}
		if user == nil {
			logging.Logger.Warnf("Event ID: AUTH_USER_GONE, Description: Token for user %s that no longer exists", claims.UserID)
			unauthenticated(w, "The user belonging to this token no longer exists")
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, AuthUser{ID: user.ID, Email: user.Email})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserFromContext returns the identity attached by Authenticate.
func UserFromContext(ctx context.Context) (AuthUser, bool) {
	user, ok := ctx.Value(userContextKey).(AuthUser)
	return user, ok
}

func extractToken(r *http.Request) string {
	if cookie, err := r.Cookie("access_token"); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

func unauthenticated(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusUnauthorized, message)
}

func writeJSON(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}
