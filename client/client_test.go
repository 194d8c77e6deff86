package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAccount_NotFoundIsNil(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "Account not found"})
	}))
	defer server.Close()

	account, err := New(server.URL).GetAccount(context.Background(), "nobody@example.com")

	require.NoError(t, err)
	assert.Nil(t, account)
}

func TestGetAccount_EscapesEmail(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		json.NewEncoder(w).Encode(Account{ID: 1, Email: "rider@example.com"})
	}))
	defer server.Close()

	account, err := New(server.URL).GetAccount(context.Background(), "rider@example.com")

	require.NoError(t, err)
	require.NotNil(t, account)
	assert.Equal(t, "/api/accounts/rider@example.com", gotPath)
	assert.Equal(t, "rider@example.com", account.Email)
}

func TestCreateAccount_ConflictMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"error": "Email already exists"})
	}))
	defer server.Close()

	_, err := New(server.URL).CreateAccount(context.Background(), AccountData{
		Email: "rider@example.com", FullName: "Jordan Baker", Phone: "111",
	})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "Email already exists", apiErr.Message)
}

func TestUpdateAccount_NeverSendsEmail(t *testing.T) {
	var body map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		json.NewEncoder(w).Encode(Account{ID: 1, Email: "rider@example.com", FullName: "X"})
	}))
	defer server.Close()

	_, err := New(server.URL).UpdateAccount(context.Background(), "rider@example.com", AccountData{
		Email: "sneaky@example.com", FullName: "X", Phone: "Y",
	})

	require.NoError(t, err)
	_, present := body["email"]
	assert.False(t, present)
	assert.Equal(t, "X", body["fullName"])
}

func TestCreateRideRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/ride-requests", r.URL.Path)

		var body RideRequestData
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(RideRequest{
			ID:             7,
			RiderID:        body.RiderID,
			PickupLocation: body.PickupLocation,
			Destination:    body.Destination,
			VehicleType:    body.VehicleType,
			EstimatedFare:  20.00,
			Status:         "pending",
		})
	}))
	defer server.Close()

	request, err := New(server.URL).CreateRideRequest(context.Background(), RideRequestData{
		RiderID:        1,
		PickupLocation: "123 Main St",
		Destination:    "456 Market St",
		VehicleType:    "standard",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(7), request.ID)
	assert.Equal(t, 20.00, request.EstimatedFare)
	assert.Equal(t, "pending", request.Status)
}

func TestUpdateRideRequest_OmitsNilFields(t *testing.T) {
	var body map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		json.NewEncoder(w).Encode(RideRequest{ID: 7, Status: "accepted"})
	}))
	defer server.Close()

	status := "accepted"
	request, err := New(server.URL).UpdateRideRequest(context.Background(), 7, RideRequestUpdate{Status: &status})

	require.NoError(t, err)
	assert.Equal(t, "accepted", request.Status)
	assert.Equal(t, map[string]any{"status": "accepted"}, body)
}

func TestDeleteRideRequest_NoContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	assert.NoError(t, New(server.URL).DeleteRideRequest(context.Background(), 7))
}

func TestDo_ErrorWithoutJSONBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := New(server.URL).GetVehicleTypes(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	// Falls back to the HTTP status line when the body is not the API's shape
	assert.Contains(t, apiErr.Message, "500")
}
