// Package remoteapi implements the repository interfaces as an HTTP client
// against a real clinical records backend. It is the drop-in replacement
// for the mockapi adapters: the stores call the same interfaces either way.
package remoteapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/medscribe/Clinicdashboarddesign/backend/internal/domain/entities"
	"github.com/medscribe/Clinicdashboarddesign/backend/internal/domain/repositories"
	apperrors "github.com/medscribe/Clinicdashboarddesign/backend/pkg/errors"
)

// Client talks to the remote backend. It implements UserDirectory,
// PatientRepository, AppointmentRepository and TranscriptionRepository.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new remote API client
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	User entities.User `json:"user"`
}

type patientsResponse struct {
	Patients []entities.Patient `json:"patients"`
}

type appointmentsResponse struct {
	Appointments []entities.Appointment `json:"appointments"`
}

type transcriptionsResponse struct {
	Transcriptions []entities.Transcription `json:"transcriptions"`
}

// Authenticate implements repositories.UserDirectory.
func (c *Client) Authenticate(ctx context.Context, email, password string) (*entities.User, error) {
	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", loginRequest{Email: email, Password: password}, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// List implements repositories.PatientRepository.
func (c *Client) List(ctx context.Context) ([]entities.Patient, error) {
	var resp patientsResponse
	if err := c.do(ctx, http.MethodGet, "/api/patients", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Patients, nil
}

// ListAppointments implements repositories.AppointmentRepository via the
// Appointments view of the client.
func (c *Client) ListAppointments(ctx context.Context) ([]entities.Appointment, error) {
	var resp appointmentsResponse
	if err := c.do(ctx, http.MethodGet, "/api/appointments", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Appointments, nil
}

// ListTranscriptions implements repositories.TranscriptionRepository via
// the Transcriptions view of the client.
func (c *Client) ListTranscriptions(ctx context.Context) ([]entities.Transcription, error) {
	var resp transcriptionsResponse
	if err := c.do(ctx, http.MethodGet, "/api/transcriptions", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Transcriptions, nil
}

// CreateTranscription submits a new transcription to the backend.
func (c *Client) CreateTranscription(ctx context.Context, transcription *entities.Transcription) error {
	return c.do(ctx, http.MethodPost, "/api/transcriptions", transcription, nil)
}

// UpdateTranscription submits a merged transcription to the backend.
func (c *Client) UpdateTranscription(ctx context.Context, transcription *entities.Transcription) error {
	path := "/api/transcriptions/" + transcription.ID
	return c.do(ctx, http.MethodPut, path, transcription, nil)
}

// Patients returns the client as a PatientRepository.
func (c *Client) Patients() repositories.PatientRepository { return c }

// Appointments returns the client as an AppointmentRepository.
func (c *Client) Appointments() repositories.AppointmentRepository {
	return appointmentView{c}
}

// Transcriptions returns the client as a TranscriptionRepository.
func (c *Client) Transcriptions() repositories.TranscriptionRepository {
	return transcriptionView{c}
}

type appointmentView struct{ c *Client }

func (v appointmentView) List(ctx context.Context) ([]entities.Appointment, error) {
	return v.c.ListAppointments(ctx)
}

type transcriptionView struct{ c *Client }

func (v transcriptionView) List(ctx context.Context) ([]entities.Transcription, error) {
	return v.c.ListTranscriptions(ctx)
}

func (v transcriptionView) Create(ctx context.Context, t *entities.Transcription) error {
	return v.c.CreateTranscription(ctx, t)
}

func (v transcriptionView) Update(ctx context.Context, t *entities.Transcription) error {
	return v.c.UpdateTranscription(ctx, t)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody *bytes.Buffer
	if body != nil {
		reqBody = &bytes.Buffer{}
		if err := json.NewEncoder(reqBody).Encode(body); err != nil {
			return apperrors.NewInternalError("failed to encode request body", err)
		}
	}

	var req *http.Request
	var err error
	if reqBody != nil {
		req, err = http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	}
	if err != nil {
		return apperrors.NewInternalError("failed to build request", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.NewOperationError("backend request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.errorFromResponse(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return apperrors.NewOperationError("failed to decode backend response", err)
		}
	}
	return nil
}

func (c *Client) errorFromResponse(resp *http.Response) error {
	var payload struct {
		Error string `json:"error"`
	}
	message := fmt.Sprintf("backend returned status %d", resp.StatusCode)
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Error != "" {
		message = payload.Error
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return apperrors.NewUnauthorizedError(message)
	case http.StatusNotFound:
		return apperrors.NewNotFoundError(message)
	case http.StatusBadRequest:
		return apperrors.NewValidationError(message)
	default:
		return apperrors.NewOperationError(message, nil)
	}
}

var _ repositories.UserDirectory = (*Client)(nil)
var _ repositories.PatientRepository = (*Client)(nil)
