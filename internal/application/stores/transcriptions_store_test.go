package stores_test

import (
	"context"
	"testing"
	"time"

	"github.com/medscribe/Clinicdashboarddesign/backend/internal/adapters/mockapi"
	"github.com/medscribe/Clinicdashboarddesign/backend/internal/application/stores"
	"github.com/medscribe/Clinicdashboarddesign/backend/internal/domain/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTranscriptionRepository struct {
	mock.Mock
}

func (m *MockTranscriptionRepository) List(ctx context.Context) ([]entities.Transcription, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Transcription), args.Error(1)
}

func (m *MockTranscriptionRepository) Create(ctx context.Context, t *entities.Transcription) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTranscriptionRepository) Update(ctx context.Context, t *entities.Transcription) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

// steppingClock advances by one second every time it is read, so
// LastUpdated stamps in a test are strictly increasing.
func steppingClock(start time.Time) stores.Clock {
	current := start
	return func() time.Time {
		current = current.Add(time.Second)
		return current
	}
}

func newSeededTranscriptionsStore(t *testing.T) *stores.TranscriptionsStore {
	t.Helper()
	store := stores.NewTranscriptionsStore(mockapi.NewTranscriptionAdapter(0), nil, steppingClock(testToday))
	require.NoError(t, store.Fetch(context.Background()))
	return store
}

func strPtr(s string) *string { return &s }

func TestTranscriptionsStore_Fetch(t *testing.T) {
	store := newSeededTranscriptionsStore(t)

	all := store.Transcriptions()
	require.Len(t, all, 4)
	assert.False(t, store.Loading())
	assert.Empty(t, store.Err())

	t.Run("second fetch replaces the collection with the seed set", func(t *testing.T) {
		_, err := store.Add(context.Background(), entities.TranscriptionDraft{
			PatientID: "1", PatientName: "Sarah Johnson", Content: "x",
			Status: entities.TranscriptionStatusDraft,
		})
		require.NoError(t, err)
		require.Len(t, store.Transcriptions(), 5)

		require.NoError(t, store.Fetch(context.Background()))
		assert.Len(t, store.Transcriptions(), 4)
	})
}

func TestTranscriptionsStore_AddThenFindRoundTrip(t *testing.T) {
	store := newSeededTranscriptionsStore(t)

	draft := entities.TranscriptionDraft{
		AppointmentID: "temp-1",
		PatientID:     "1",
		PatientName:   "Sarah Johnson",
		DoctorID:      "1",
		DoctorName:    "Dr. Jane Smith",
		Date:          "2025-06-15",
		Content:       "x",
		Tags:          []string{"Follow-Up"},
		Status:        entities.TranscriptionStatusDraft,
	}

	created, err := store.Add(context.Background(), draft)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.LastUpdated.IsZero())

	found, ok := store.TranscriptionByID(created.ID)
	require.True(t, ok)
	assert.Equal(t, created, found)
	assert.Equal(t, "Sarah Johnson", found.PatientName)
	assert.Equal(t, []string{"follow-up"}, found.Tags)
	assert.Equal(t, entities.TranscriptionStatusDraft, found.Status)
}

func TestTranscriptionsStore_Add(t *testing.T) {
	t.Run("two adds mint distinct ids", func(t *testing.T) {
		store := newSeededTranscriptionsStore(t)
		draft := entities.TranscriptionDraft{PatientID: "1", Content: "x", Status: entities.TranscriptionStatusDraft}

		first, err := store.Add(context.Background(), draft)
		require.NoError(t, err)
		second, err := store.Add(context.Background(), draft)
		require.NoError(t, err)

		assert.NotEqual(t, first.ID, second.ID)
	})

	t.Run("empty status defaults to draft", func(t *testing.T) {
		store := newSeededTranscriptionsStore(t)

		created, err := store.Add(context.Background(), entities.TranscriptionDraft{PatientID: "1", Content: "x"})
		require.NoError(t, err)
		assert.Equal(t, entities.TranscriptionStatusDraft, created.Status)
	})

	t.Run("illegal status is rejected", func(t *testing.T) {
		store := newSeededTranscriptionsStore(t)

		_, err := store.Add(context.Background(), entities.TranscriptionDraft{
			PatientID: "1", Content: "x", Status: "archived",
		})
		assert.Error(t, err)
	})

	t.Run("backend failure records a message and adds nothing", func(t *testing.T) {
		repo := new(MockTranscriptionRepository)
		repo.On("List", mock.Anything).Return([]entities.Transcription{}, nil)
		repo.On("Create", mock.Anything, mock.Anything).Return(assert.AnError)

		store := stores.NewTranscriptionsStore(repo, nil, steppingClock(testToday))
		require.NoError(t, store.Fetch(context.Background()))

		_, err := store.Add(context.Background(), entities.TranscriptionDraft{PatientID: "1", Content: "x"})
		require.Error(t, err)
		assert.Equal(t, "Failed to add transcription", store.Err())
		assert.Empty(t, store.Transcriptions())
	})
}

func TestTranscriptionsStore_Update(t *testing.T) {
	t.Run("shallow merge refreshes LastUpdated and leaves other fields alone", func(t *testing.T) {
		store := newSeededTranscriptionsStore(t)

		before, ok := store.TranscriptionByID("4")
		require.True(t, ok)

		err := store.Update(context.Background(), "4", entities.TranscriptionPatch{
			Content: strPtr("Revised note."),
		})
		require.NoError(t, err)

		after, ok := store.TranscriptionByID("4")
		require.True(t, ok)
		assert.Equal(t, "Revised note.", after.Content)
		assert.True(t, after.LastUpdated.After(before.LastUpdated))
		assert.Equal(t, before.PatientName, after.PatientName)
		assert.Equal(t, before.Tags, after.Tags)
		assert.Equal(t, before.Status, after.Status)
	})

	t.Run("absent id is a silent no-op", func(t *testing.T) {
		store := newSeededTranscriptionsStore(t)

		err := store.Update(context.Background(), "does-not-exist", entities.TranscriptionPatch{
			Content: strPtr("x"),
		})
		assert.NoError(t, err)
		assert.Len(t, store.Transcriptions(), 4)
	})

	t.Run("a supplied tags slice replaces, never unions", func(t *testing.T) {
		store := newSeededTranscriptionsStore(t)

		tags := []string{"new tag"}
		err := store.Update(context.Background(), "4", entities.TranscriptionPatch{Tags: &tags})
		require.NoError(t, err)

		after, _ := store.TranscriptionByID("4")
		assert.Equal(t, []string{"new tag"}, after.Tags)
	})

	t.Run("draft can be finalized", func(t *testing.T) {
		store := newSeededTranscriptionsStore(t)

		status := entities.TranscriptionStatusFinal
		require.NoError(t, store.Update(context.Background(), "4", entities.TranscriptionPatch{Status: &status}))

		after, _ := store.TranscriptionByID("4")
		assert.Equal(t, entities.TranscriptionStatusFinal, after.Status)
	})

	t.Run("illegal status is rejected", func(t *testing.T) {
		store := newSeededTranscriptionsStore(t)

		bad := entities.TranscriptionStatus("archived")
		err := store.Update(context.Background(), "4", entities.TranscriptionPatch{Status: &bad})
		assert.Error(t, err)
	})
}

func TestTranscriptionsStore_Tags(t *testing.T) {
	t.Run("adding a new tag appends lowercase at the end", func(t *testing.T) {
		store := newSeededTranscriptionsStore(t)

		updated, err := store.AddTag(context.Background(), "4", " Physical Therapy ")
		require.NoError(t, err)
		assert.Equal(t, []string{"osteoarthritis", "pain management", "knee pain", "physical therapy"}, updated.Tags)
	})

	t.Run("adding a duplicate leaves the list unchanged in order", func(t *testing.T) {
		store := newSeededTranscriptionsStore(t)

		before, _ := store.TranscriptionByID("4")
		updated, err := store.AddTag(context.Background(), "4", "KNEE PAIN")
		require.NoError(t, err)
		assert.Equal(t, before.Tags, updated.Tags)
		assert.Equal(t, before.LastUpdated, updated.LastUpdated)
	})

	t.Run("removing a tag keeps the rest in order", func(t *testing.T) {
		store := newSeededTranscriptionsStore(t)

		updated, err := store.RemoveTag(context.Background(), "4", "pain management")
		require.NoError(t, err)
		assert.Equal(t, []string{"osteoarthritis", "knee pain"}, updated.Tags)
	})

	t.Run("removing an absent tag is a no-op", func(t *testing.T) {
		store := newSeededTranscriptionsStore(t)

		updated, err := store.RemoveTag(context.Background(), "4", "not-there")
		require.NoError(t, err)
		assert.Len(t, updated.Tags, 3)
	})

	t.Run("tag operations on an unknown transcription are not found", func(t *testing.T) {
		store := newSeededTranscriptionsStore(t)

		_, err := store.AddTag(context.Background(), "nope", "tag")
		assert.Error(t, err)
	})
}

func TestTranscriptionsStore_Filter(t *testing.T) {
	store := newSeededTranscriptionsStore(t)

	t.Run("draft tab with knee matches exactly the Robert Martinez entry", func(t *testing.T) {
		result := store.Filter(stores.TabDraft, "knee")
		require.Len(t, result, 1)
		assert.Equal(t, "4", result[0].ID)
		assert.Equal(t, "Robert Martinez", result[0].PatientName)
	})

	t.Run("final tab with knee matches nothing", func(t *testing.T) {
		assert.Empty(t, store.Filter(stores.TabFinal, "knee"))
	})

	t.Run("all tab with empty term returns everything", func(t *testing.T) {
		assert.Len(t, store.Filter(stores.TabAll, ""), 4)
	})

	t.Run("search is case-insensitive across patient name", func(t *testing.T) {
		result := store.Filter(stores.TabAll, "sarah")
		require.Len(t, result, 1)
		assert.Equal(t, "1", result[0].ID)
	})

	t.Run("search matches tag substrings", func(t *testing.T) {
		// "pain management" is tagged on both the headache and the knee
		// transcriptions.
		result := store.Filter(stores.TabAll, "pain man")
		assert.Len(t, result, 2)
	})

	t.Run("tab filter applies without a search term", func(t *testing.T) {
		assert.Len(t, store.Filter(stores.TabFinal, ""), 3)
		assert.Len(t, store.Filter(stores.TabDraft, ""), 1)
	})
}

func TestTranscriptionsStore_Recent(t *testing.T) {
	store := newSeededTranscriptionsStore(t)

	recent := store.Recent(3)
	require.Len(t, recent, 3)
	// Seed LastUpdated stamps ascend with the id, so recency reverses them.
	assert.Equal(t, "4", recent[0].ID)
	assert.Equal(t, "3", recent[1].ID)
	assert.Equal(t, "2", recent[2].ID)

	t.Run("a fresh update moves an entry to the front", func(t *testing.T) {
		require.NoError(t, store.Update(context.Background(), "1", entities.TranscriptionPatch{
			Content: strPtr("touched"),
		}))

		recent := store.Recent(3)
		assert.Equal(t, "1", recent[0].ID)
	})

	t.Run("n larger than the collection returns everything", func(t *testing.T) {
		assert.Len(t, store.Recent(10), 4)
	})
}

func TestTranscriptionsStore_CountsInvariant(t *testing.T) {
	store := newSeededTranscriptionsStore(t)

	check := func() {
		counts := store.Counts()
		assert.Equal(t, counts.Total, counts.Draft+counts.Final)
		assert.Equal(t, len(store.Transcriptions()), counts.Total)
	}

	check()
	assert.Equal(t, stores.TranscriptionCounts{Draft: 1, Final: 3, Total: 4}, store.Counts())

	_, err := store.Add(context.Background(), entities.TranscriptionDraft{
		PatientID: "2", Content: "x", Status: entities.TranscriptionStatusDraft,
	})
	require.NoError(t, err)
	check()

	status := entities.TranscriptionStatusFinal
	require.NoError(t, store.Update(context.Background(), "4", entities.TranscriptionPatch{Status: &status}))
	check()
	assert.Equal(t, stores.TranscriptionCounts{Draft: 1, Final: 4, Total: 5}, store.Counts())
}

func TestTranscriptionsStore_ReadsReturnCopies(t *testing.T) {
	store := newSeededTranscriptionsStore(t)

	result := store.Filter(stores.TabAll, "")
	result[0].Tags[0] = "mutated"

	fresh, _ := store.TranscriptionByID(result[0].ID)
	assert.NotEqual(t, "mutated", fresh.Tags[0])
}
