package http

import (
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/wingmanapp/wingman/internal/database"
	"github.com/wingmanapp/wingman/internal/database/accounts"
	"github.com/wingmanapp/wingman/internal/database/drivers"
	"github.com/wingmanapp/wingman/internal/database/riderequests"
	"github.com/wingmanapp/wingman/internal/database/vehicletypes"
)

// setupAPITest builds a fully wired router over a throwaway database.
func setupAPITest(t *testing.T) (*gin.Engine, *database.Database, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := "./test_api_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	router := NewRouter(RouterConfig{
		Database:     db,
		Accounts:     accounts.NewRepository(db.DB),
		Drivers:      drivers.NewRepository(db.DB),
		VehicleTypes: vehicletypes.NewRepository(db.DB),
		RideRequests: riderequests.NewRepository(db.DB),
		Version:      "test",
	})

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return router, db, cleanup
}
