package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikhil/placement-hub/internal/config"
	"github.com/nikhil/placement-hub/internal/db"
	"github.com/nikhil/placement-hub/internal/types"
)

// fakeUserStore keeps accounts in memory so auth flows run without Postgres.
type fakeUserStore struct {
	users    map[string]*db.User
	profiles map[uuid.UUID]*types.Profile
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		users:    make(map[string]*db.User),
		profiles: make(map[uuid.UUID]*types.Profile),
	}
}

func (f *fakeUserStore) CreateUser(_ context.Context, email, passwordHash string) (uuid.UUID, error) {
	if _, exists := f.users[email]; exists {
		return uuid.Nil, db.ErrUniqueViolation
	}
	id := uuid.New()
	f.users[email] = &db.User{ID: id, Email: email, PasswordHash: passwordHash}
	return id, nil
}

func (f *fakeUserStore) GetUserByEmail(_ context.Context, email string) (*db.User, error) {
	return f.users[email], nil
}

func (f *fakeUserStore) CreateProfile(_ context.Context, userID uuid.UUID, role, fullName, email string) (*types.Profile, error) {
	profile := &types.Profile{UserID: userID, Role: role, FullName: fullName, Email: email}
	f.profiles[userID] = profile
	return profile, nil
}

func (f *fakeUserStore) GetProfile(_ context.Context, userID uuid.UUID) (*types.Profile, error) {
	return f.profiles[userID], nil
}

func newTestAuthHandler(t *testing.T) (*AuthHandler, *fakeUserStore) {
	t.Helper()

	store := newFakeUserStore()
	// Lowest allowed cost keeps the bcrypt work factor cheap in tests.
	passwordConfig := &config.PasswordConfig{BcryptCost: 10}
	userService := NewUserService(store, passwordConfig)
	jwtService := NewJWTService(&config.JWTConfig{Secret: "test-secret", ExpirationHours: 1})
	return NewAuthHandler(userService, jwtService), store
}

func postJSON(handler http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestRegisterSuccess(t *testing.T) {
	handler, store := newTestAuthHandler(t)

	rec := postJSON(handler.Register, "/auth/register",
		`{"full_name":"Asha Verma","email":"asha@campus.edu","password":"supersecret"}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp types.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	require.NotNil(t, resp.Profile)
	assert.Equal(t, "asha@campus.edu", resp.Profile.Email)
	assert.Equal(t, types.RoleStudent, resp.Profile.Role, "role defaults to student")

	_, exists := store.users["asha@campus.edu"]
	assert.True(t, exists)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	handler, _ := newTestAuthHandler(t)

	body := `{"full_name":"Asha Verma","email":"asha@campus.edu","password":"supersecret"}`
	rec := postJSON(handler.Register, "/auth/register", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(handler.Register, "/auth/register", body)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRegisterValidation(t *testing.T) {
	handler, _ := newTestAuthHandler(t)

	tests := []struct {
		name string
		body string
	}{
		{"malformed JSON", `{"full_name":`},
		{"missing email", `{"full_name":"Asha","password":"supersecret"}`},
		{"bad email", `{"full_name":"Asha","email":"not-an-email","password":"supersecret"}`},
		{"short password", `{"full_name":"Asha","email":"asha@campus.edu","password":"short"}`},
		{"bad role", `{"full_name":"Asha","email":"asha@campus.edu","password":"supersecret","role":"admin"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(handler.Register, "/auth/register", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestLoginSuccess(t *testing.T) {
	handler, _ := newTestAuthHandler(t)

	rec := postJSON(handler.Register, "/auth/register",
		`{"full_name":"Asha Verma","email":"asha@campus.edu","password":"supersecret"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(handler.Login, "/auth/login",
		`{"email":"asha@campus.edu","password":"supersecret"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp types.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
}

func TestLoginBadCredentials(t *testing.T) {
	handler, _ := newTestAuthHandler(t)

	rec := postJSON(handler.Register, "/auth/register",
		`{"full_name":"Asha Verma","email":"asha@campus.edu","password":"supersecret"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	t.Run("wrong password", func(t *testing.T) {
		rec := postJSON(handler.Login, "/auth/login",
			`{"email":"asha@campus.edu","password":"wrongpassword"}`)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unknown account", func(t *testing.T) {
		rec := postJSON(handler.Login, "/auth/login",
			`{"email":"nobody@campus.edu","password":"supersecret"}`)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestJWTRoundTrip(t *testing.T) {
	jwtService := NewJWTService(&config.JWTConfig{Secret: "test-secret", ExpirationHours: 1})

	userID := uuid.New()
	token, err := jwtService.GenerateToken(userID)
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	issuer := NewJWTService(&config.JWTConfig{Secret: "secret-one", ExpirationHours: 1})
	verifier := NewJWTService(&config.JWTConfig{Secret: "secret-two", ExpirationHours: 1})

	token, err := issuer.GenerateToken(uuid.New())
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}
