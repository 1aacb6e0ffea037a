package mockapi_test

import (
	"context"
	"testing"
	"time"

	"github.com/medscribe/Clinicdashboarddesign/backend/internal/adapters/mockapi"
	"github.com/medscribe/Clinicdashboarddesign/backend/internal/domain/entities"
	apperrors "github.com/medscribe/Clinicdashboarddesign/backend/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestUserDirectoryAdapter_Authenticate(t *testing.T) {
	directory := mockapi.NewUserDirectoryAdapter(0)

	t.Run("accepts the seeded doctor with the sentinel password", func(t *testing.T) {
		user, err := directory.Authenticate(context.Background(), "doctor@example.com", "password")
		require.NoError(t, err)
		assert.Equal(t, "1", user.ID)
		assert.Equal(t, "Dr. Jane Smith", user.Name)
		assert.Equal(t, entities.UserRoleDoctor, user.Role)
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		user, err := directory.Authenticate(context.Background(), "doctor@example.com", "wrong")
		assert.Nil(t, user)
		assert.Equal(t, apperrors.ErrorTypeUnauthorized, apperrors.TypeOf(err))
	})

	t.Run("rejects an unknown email", func(t *testing.T) {
		user, err := directory.Authenticate(context.Background(), "nobody@example.com", "password")
		assert.Nil(t, user)
		assert.Equal(t, apperrors.ErrorTypeUnauthorized, apperrors.TypeOf(err))
	})
}

func TestPatientAdapter_List(t *testing.T) {
	adapter := mockapi.NewPatientAdapter(0)

	patients, err := adapter.List(context.Background())
	require.NoError(t, err)
	require.Len(t, patients, 4)
	assert.Equal(t, "Sarah Johnson", patients[0].Name)
	assert.Equal(t, "Robert Martinez", patients[3].Name)

	t.Run("repeated calls return the same collection", func(t *testing.T) {
		again, err := adapter.List(context.Background())
		require.NoError(t, err)
		assert.Equal(t, patients, again)
	})

	t.Run("callers get copies, not shared state", func(t *testing.T) {
		patients[0].Name = "mutated"
		patients[0].MedicalHistory[0].Condition = "mutated"

		again, err := adapter.List(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Sarah Johnson", again[0].Name)
		assert.Equal(t, "Asthma", again[0].MedicalHistory[0].Condition)
	})
}

func TestAppointmentAdapter_List_AnchorsScheduleToToday(t *testing.T) {
	today := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)
	adapter := mockapi.NewAppointmentAdapter(0, fixedClock(today))

	appointments, err := adapter.List(context.Background())
	require.NoError(t, err)
	require.Len(t, appointments, 6)

	byID := make(map[string]entities.Appointment, len(appointments))
	for _, a := range appointments {
		byID[a.ID] = a
	}

	assert.Equal(t, "2025-06-15", byID["101"].Date)
	assert.Equal(t, "2025-06-16", byID["102"].Date)
	assert.Equal(t, "2025-06-14", byID["103"].Date)
	assert.Equal(t, "2025-06-13", byID["104"].Date)
	assert.Equal(t, "2025-06-18", byID["105"].Date)
	assert.Equal(t, "2025-06-17", byID["106"].Date)

	assert.Equal(t, entities.AppointmentStatusCompleted, byID["103"].Status)
	assert.Equal(t, entities.AppointmentStatusCompleted, byID["104"].Status)
}

func TestTranscriptionAdapter(t *testing.T) {
	adapter := mockapi.NewTranscriptionAdapter(0)

	t.Run("lists the four seeded transcriptions", func(t *testing.T) {
		transcriptions, err := adapter.List(context.Background())
		require.NoError(t, err)
		require.Len(t, transcriptions, 4)

		assert.Equal(t, entities.TranscriptionStatusDraft, transcriptions[3].Status)
		assert.Equal(t, "Robert Martinez", transcriptions[3].PatientName)
		assert.Contains(t, transcriptions[3].Tags, "knee pain")
	})

	t.Run("create and update acknowledge valid input", func(t *testing.T) {
		assert.NoError(t, adapter.Create(context.Background(), &entities.Transcription{ID: "x"}))
		assert.NoError(t, adapter.Update(context.Background(), &entities.Transcription{ID: "x"}))
	})

	t.Run("rejects missing input", func(t *testing.T) {
		assert.Error(t, adapter.Create(context.Background(), nil))
		assert.Error(t, adapter.Update(context.Background(), &entities.Transcription{}))
	})
}

func TestLatency_CancelledContextSurfacesOperationFailure(t *testing.T) {
	adapter := mockapi.NewPatientAdapter(time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := adapter.List(ctx)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeOperation, apperrors.TypeOf(err))
}

func TestDictationAdapter_Transcribe(t *testing.T) {
	adapter := mockapi.NewDictationAdapter(0)

	t.Run("empty editor gets the scaffold text", func(t *testing.T) {
		content, err := adapter.Transcribe(context.Background(), "")
		require.NoError(t, err)
		assert.Contains(t, content, "Patienten uppvisar symtom")
	})

	t.Run("existing content gets a follow-up line appended", func(t *testing.T) {
		content, err := adapter.Transcribe(context.Background(), "Existing note.")
		require.NoError(t, err)
		assert.Equal(t, "Existing note.\n\nPatient also mentions...", content)
	})
}
