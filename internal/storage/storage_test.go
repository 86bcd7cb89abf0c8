package storage

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"planner/internal/models"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	s, err := New(db)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	return s
}

func testTasks() []models.Task {
	created := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	return []models.Task{
		{
			ID:          "t1",
			Title:       "Water the plants",
			Description: "Only the ones on the balcony",
			Due:         "2024-01-02",
			Priority:    models.PriorityHigh,
			Labels:      []string{"l1"},
			CreatedAt:   created,
		},
		{
			ID:        "t2",
			Title:     "File taxes",
			Completed: true,
			Priority:  models.PriorityMedium,
			Labels:    []string{},
			CreatedAt: created,
		},
	}
}

func TestTasksRoundTrip(t *testing.T) {
	s := setupTestStore(t)
	want := testTasks()

	require.NoError(t, s.SaveTasks(want))
	got, err := s.LoadTasks()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLabelsRoundTrip(t *testing.T) {
	s := setupTestStore(t)
	want := []models.Label{
		{ID: "l1", Name: "home", Color: "#22C55E"},
		{ID: "l2", Name: "work", Color: "#3B82F6"},
	}

	require.NoError(t, s.SaveLabels(want))
	got, err := s.LoadLabels()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadFallsBackToSeedWhenEmpty(t *testing.T) {
	s := setupTestStore(t)

	tasks, err := s.LoadTasks()
	require.NoError(t, err)
	assert.Equal(t, len(models.SeedTasks()), len(tasks))

	labels, err := s.LoadLabels()
	require.NoError(t, err)
	assert.Equal(t, models.SeedLabels(), labels)
}

func TestLoadFallsBackToSeedOnCorruptSnapshot(t *testing.T) {
	s := setupTestStore(t)

	_, err := s.db.Exec(`INSERT INTO snapshots (key, value, updated_at) VALUES ('tasks', '{not json', '2024-01-01T00:00:00Z');`)
	require.NoError(t, err)
	_, err = s.db.Exec(`INSERT INTO snapshots (key, value, updated_at) VALUES ('labels', '42', '2024-01-01T00:00:00Z');`)
	require.NoError(t, err)

	tasks, err := s.LoadTasks()
	require.NoError(t, err)
	assert.Equal(t, len(models.SeedTasks()), len(tasks))

	labels, err := s.LoadLabels()
	require.NoError(t, err)
	assert.Equal(t, models.SeedLabels(), labels)
}

// The snapshot written last wins wholesale; there is no merging.
func TestSaveOverwritesWholesale(t *testing.T) {
	s := setupTestStore(t)

	require.NoError(t, s.SaveTasks(testTasks()))
	require.NoError(t, s.SaveTasks([]models.Task{}))

	got, err := s.LoadTasks()
	require.NoError(t, err)
	assert.Empty(t, got)
}

// Tasks and labels are stored independently: deleting a label leaves
// any task references to it intact (and dangling).
func TestLabelDeletionLeavesTaskReferencesIntact(t *testing.T) {
	s := setupTestStore(t)
	tasks := testTasks()
	labels := []models.Label{{ID: "l1", Name: "home", Color: "#22C55E"}}

	require.NoError(t, s.SaveTasks(tasks))
	require.NoError(t, s.SaveLabels(labels))

	// Delete the label the first task references.
	require.NoError(t, s.SaveLabels([]models.Label{}))

	got, err := s.LoadTasks()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, []string{"l1"}, got[0].Labels)
}

func TestOpenCreatesFileStore(t *testing.T) {
	path := t.TempDir() + "/nested/planner.db"

	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.SaveTasks(testTasks()))
	got, err := s.LoadTasks()
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestOpenRejectsEmptyPath(t *testing.T) {
	_, err := Open("")
	assert.Error(t, err)
}
