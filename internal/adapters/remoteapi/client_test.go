package remoteapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/medscribe/Clinicdashboarddesign/backend/internal/adapters/remoteapi"
	"github.com/medscribe/Clinicdashboarddesign/backend/internal/domain/entities"
	apperrors "github.com/medscribe/Clinicdashboarddesign/backend/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Authenticate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/login", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "doctor@example.com", req.Email)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"user": entities.User{ID: "1", Email: req.Email, Name: "Dr. Jane Smith", Role: entities.UserRoleDoctor},
		})
	}))
	defer server.Close()

	client := remoteapi.NewClient(server.URL, 5*time.Second)

	user, err := client.Authenticate(context.Background(), "doctor@example.com", "password")
	require.NoError(t, err)
	assert.Equal(t, "Dr. Jane Smith", user.Name)
	assert.Equal(t, entities.UserRoleDoctor, user.Role)
}

func TestClient_ListPatients(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/patients", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"patients": []entities.Patient{{ID: "1", Name: "Sarah Johnson"}},
		})
	}))
	defer server.Close()

	client := remoteapi.NewClient(server.URL, 5*time.Second)

	patients, err := client.Patients().List(context.Background())
	require.NoError(t, err)
	require.Len(t, patients, 1)
	assert.Equal(t, "Sarah Johnson", patients[0].Name)
}

func TestClient_TranscriptionViews(t *testing.T) {
	var gotMethod, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		json.NewEncoder(w).Encode(map[string]interface{}{"transcriptions": []entities.Transcription{}})
	}))
	defer server.Close()

	client := remoteapi.NewClient(server.URL, 5*time.Second)
	repo := client.Transcriptions()
	ctx := context.Background()

	_, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, gotMethod)
	assert.Equal(t, "/api/transcriptions", gotPath)

	require.NoError(t, repo.Create(ctx, &entities.Transcription{ID: "abc"}))
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/api/transcriptions", gotPath)

	require.NoError(t, repo.Update(ctx, &entities.Transcription{ID: "abc"}))
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/api/transcriptions/abc", gotPath)
}

func TestClient_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantType apperrors.ErrorType
		wantMsg  string
	}{
		{"unauthorized", http.StatusUnauthorized, `{"error":"Invalid email or password"}`, apperrors.ErrorTypeUnauthorized, "Invalid email or password"},
		{"not found", http.StatusNotFound, `{"error":"patient not found"}`, apperrors.ErrorTypeNotFound, "patient not found"},
		{"bad request", http.StatusBadRequest, `{"error":"tag is required"}`, apperrors.ErrorTypeValidation, "tag is required"},
		{"server error without payload", http.StatusInternalServerError, "", apperrors.ErrorTypeOperation, "backend returned status 500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := remoteapi.NewClient(server.URL, 5*time.Second)

			_, err := client.Patients().List(context.Background())
			require.Error(t, err)
			assert.Equal(t, tt.wantType, apperrors.TypeOf(err))
			assert.Equal(t, tt.wantMsg, apperrors.MessageOf(err))
		})
	}
}

func TestClient_UnreachableBackend(t *testing.T) {
	client := remoteapi.NewClient("http://127.0.0.1:1", 200*time.Millisecond)

	_, err := client.Patients().List(context.Background())
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeOperation, apperrors.TypeOf(err))
}
