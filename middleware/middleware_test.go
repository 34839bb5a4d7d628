package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rahulranjandev/trello-clone/models"
	"github.com/rahulranjandev/trello-clone/repositories"
	"github.com/rahulranjandev/trello-clone/services"
)

// stubUserRepository lets each test script what the user lookup returns.
type stubUserRepository struct {
	getByID func(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

func (s *stubUserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	return nil, errors.New("not implemented")
}

func (s *stubUserRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return s.getByID(ctx, id)
}

func (s *stubUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return nil, errors.New("not implemented")
}

func (s *stubUserRepository) Update(ctx context.Context, id primitive.ObjectID, update repositories.UserUpdate) (*models.User, error) {
	return nil, errors.New("not implemented")
}

func (s *stubUserRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return nil, errors.New("not implemented")
}

func authRequest(t *testing.T, m *AuthMiddleware, token string) *httptest.ResponseRecorder {
	t.Helper()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/project", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	m.Authenticate(next).ServeHTTP(rr, req)
	return rr
}

func TestAuthenticatePassesThroughValidSession(t *testing.T) {
	jwtService := services.NewJWTService("access-secret", "refresh-secret", time.Hour, 24*time.Hour)
	userID := primitive.NewObjectID()
	repo := &stubUserRepository{
		getByID: func(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
			return &models.User{ID: id, Email: "a@x.com"}, nil
		},
	}
	m := NewAuthMiddleware(jwtService, repo)

	token, err := jwtService.GenerateAccessToken(userID.Hex(), "a@x.com")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	rr := authRequest(t, m, token)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
}

// A failed user lookup must answer with the same JSON message envelope as
// every other response, not a plain text body.
func TestAuthenticateLookupFailureKeepsJSONEnvelope(t *testing.T) {
	jwtService := services.NewJWTService("access-secret", "refresh-secret", time.Hour, 24*time.Hour)
	repo := &stubUserRepository{
		getByID: func(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
			return nil, errors.New("connection reset")
		},
	}
	m := NewAuthMiddleware(jwtService, repo)

	token, err := jwtService.GenerateAccessToken(primitive.NewObjectID().Hex(), "a@x.com")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	rr := authRequest(t, m, token)
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected application/json, got %q", ct)
	}
	var body map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("expected a JSON body, got %q: %v", rr.Body.String(), err)
	}
	if body["message"] != "Internal Server Error" {
		t.Fatalf("expected message field, got %v", body)
	}
}
