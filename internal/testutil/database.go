package testutil

import (
	"testing"

	"burpwatch/internal/repository"
)

// SetupTestDB opens an in-memory repository closed at the end of the test.
func SetupTestDB(t *testing.T) *repository.Repository {
	t.Helper()

	repo, err := repository.New(":memory:")
	if err != nil {
		t.Fatalf("failed to open test repository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })

	return repo
}
