// Package client is a thin HTTP wrapper over the Wingman REST API, used by
// the desktop shell and scripted checks instead of hand-rolled fetch calls.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// APIError carries the server's error message and status code for non-2xx
// responses.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// Client calls the Wingman REST API.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// New creates a client for the API at baseURL (e.g. "http://localhost:3000").
func New(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: baseURL,
	}
}

// AccountData is the write body for account creation and updates.
type AccountData struct {
	Email    string `json:"email,omitempty"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
}

// RideRequestData is the write body for ride request creation.
type RideRequestData struct {
	RiderID        uint   `json:"rider_id"`
	PickupLocation string `json:"pickup_location"`
	Destination    string `json:"destination"`
	VehicleType    string `json:"vehicle_type"`
}

// RideRequestUpdate carries a partial ride request update; nil fields are
// omitted from the request body.
type RideRequestUpdate struct {
	Status         *string `json:"status,omitempty"`
	PickupLocation *string `json:"pickup_location,omitempty"`
	Destination    *string `json:"destination,omitempty"`
}

// GetAccount fetches an account by email. A missing account returns
// (nil, nil), matching how the front-ends treat 404 as "not registered yet".
func (c *Client) GetAccount(ctx context.Context, email string) (*Account, error) {
	var account Account
	err := c.do(ctx, http.MethodGet, c.accountURL(email), nil, &account)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

// CreateAccount registers a new account.
func (c *Client) CreateAccount(ctx context.Context, data AccountData) (*Account, error) {
	var account Account
	if err := c.do(ctx, http.MethodPost, c.baseURL+"/api/accounts", data, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// UpdateAccount changes an account's full name and phone.
func (c *Client) UpdateAccount(ctx context.Context, email string, data AccountData) (*Account, error) {
	data.Email = "" // immutable through this path, never sent
	var account Account
	if err := c.do(ctx, http.MethodPut, c.accountURL(email), data, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// DeleteAccount removes an account by email.
func (c *Client) DeleteAccount(ctx context.Context, email string) error {
	return c.do(ctx, http.MethodDelete, c.accountURL(email), nil, nil)
}

// GetPaymentMethods lists the payment methods attached to an account.
func (c *Client) GetPaymentMethods(ctx context.Context, email string) ([]PaymentMethod, error) {
	var methods []PaymentMethod
	if err := c.do(ctx, http.MethodGet, c.accountURL(email)+"/payment-methods", nil, &methods); err != nil {
		return nil, err
	}
	return methods, nil
}

// GetVehicleTypes lists the fare table, cheapest base fare first.
func (c *Client) GetVehicleTypes(ctx context.Context) ([]VehicleType, error) {
	var types []VehicleType
	if err := c.do(ctx, http.MethodGet, c.baseURL+"/api/vehicle-types", nil, &types); err != nil {
		return nil, err
	}
	return types, nil
}

// CreateRideRequest files a new ride request.
func (c *Client) CreateRideRequest(ctx context.Context, data RideRequestData) (*RideRequest, error) {
	var request RideRequest
	if err := c.do(ctx, http.MethodPost, c.baseURL+"/api/ride-requests", data, &request); err != nil {
		return nil, err
	}
	return &request, nil
}

// GetRideRequest fetches a ride request by id.
func (c *Client) GetRideRequest(ctx context.Context, id uint) (*RideRequest, error) {
	var request RideRequest
	if err := c.do(ctx, http.MethodGet, c.rideRequestURL(id), nil, &request); err != nil {
		return nil, err
	}
	return &request, nil
}

// UpdateRideRequest applies a partial update to a ride request.
func (c *Client) UpdateRideRequest(ctx context.Context, id uint, update RideRequestUpdate) (*RideRequest, error) {
	var request RideRequest
	if err := c.do(ctx, http.MethodPut, c.rideRequestURL(id), update, &request); err != nil {
		return nil, err
	}
	return &request, nil
}

// DeleteRideRequest removes a ride request by id.
func (c *Client) DeleteRideRequest(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, c.rideRequestURL(id), nil, nil)
}

func (c *Client) accountURL(email string) string {
	return c.baseURL + "/api/accounts/" + url.PathEscape(email)
}

func (c *Client) rideRequestURL(id uint) string {
	return fmt.Sprintf("%s/api/ride-requests/%d", c.baseURL, id)
}

// do sends a JSON request and decodes the JSON response into out (when out
// is non-nil). Non-2xx responses become *APIError with the server's
// error message.
func (c *Client) do(ctx context.Context, method, rawURL string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := resp.Status
		var errBody struct {
			Error string `json:"error"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errBody); decodeErr == nil && errBody.Error != "" {
			message = errBody.Error
		}
		return &APIError{StatusCode: resp.StatusCode, Message: message}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
