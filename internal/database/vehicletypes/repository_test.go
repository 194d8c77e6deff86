package vehicletypes

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wingmanapp/wingman/internal/database"
)

func setupTestDB(t *testing.T) (*Repository, func()) {
	dbPath := "./test_vehicletypes_" + t.Name() + ".db"

	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	repo := NewRepository(db.DB)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}

	return repo, cleanup
}

func TestRepository_GetVehicleTypes(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	types, err := repo.GetVehicleTypes()

	require.NoError(t, err)
	require.Len(t, types, 3)

	// Ordered by base fare ascending
	for i := 1; i < len(types); i++ {
		assert.LessOrEqual(t, types[i-1].BaseFare, types[i].BaseFare)
	}
	assert.Equal(t, "standard", types[0].Name)
}

func TestRepository_GetVehicleType(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	vt, err := repo.GetVehicleType("standard")

	require.NoError(t, err)
	assert.Equal(t, 5.00, vt.BaseFare)
	assert.Equal(t, 1.50, vt.PerMileRate)
}

func TestRepository_GetVehicleType_NotFound(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.GetVehicleType("hovercraft")

	assert.True(t, database.IsNotFound(err))
}
