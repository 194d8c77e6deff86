package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVehicleTypesAPI_List(t *testing.T) {
	router, _, cleanup := setupAPITest(t)
	defer cleanup()

	w := doRequest(router, "GET", "/api/vehicle-types")

	require.Equal(t, http.StatusOK, w.Code)

	var types []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &types))
	require.Len(t, types, 3)

	// Cheapest first
	assert.Equal(t, "standard", types[0]["name"])
	assert.Equal(t, 5.00, types[0]["base_fare"])
	assert.Equal(t, "xl", types[1]["name"])
	assert.Equal(t, "premium", types[2]["name"])
}
