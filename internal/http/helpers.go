package http

import (
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/wingmanapp/wingman/internal/database"
)

// --- Response Types ---

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error string `json:"error"`
}

// --- Error Response Helpers ---

// respondBadRequest sends a 400 Bad Request response.
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// respondNotFound sends a 404 Not Found response.
func respondNotFound(c *gin.Context, resource string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: resource + " not found"})
}

// respondConflict sends a 409 Conflict response.
func respondConflict(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, ErrorResponse{Error: message})
}

// respondInternalError logs the error and sends a 500 Internal Server Error
// response. The actual error is logged but not exposed to the client.
func respondInternalError(c *gin.Context, err error, context string) {
	log.Printf("Internal error (%s): %v", context, err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

// respondReadError maps a read/delete path failure: NotFound becomes 404,
// everything else is a storage failure and becomes 500.
func respondReadError(c *gin.Context, err error, resource string) {
	if database.IsNotFound(err) {
		respondNotFound(c, resource)
		return
	}
	respondInternalError(c, err, "get "+resource)
}

// respondWriteError maps a mutation failure: NotFound becomes 404,
// everything else becomes 400 per the API contract for writes.
func respondWriteError(c *gin.Context, err error, resource string) {
	if database.IsNotFound(err) {
		respondNotFound(c, resource)
		return
	}
	log.Printf("Write error (%s): %v", resource, err)
	respondBadRequest(c, "could not update "+resource)
}

// --- Parameter Parsing ---

// parseIDParam extracts and validates an unsigned integer ID from URL
// parameters. Responds with a 400 error and returns false on failure.
func parseIDParam(c *gin.Context, paramName string) (uint, bool) {
	idStr := c.Param(paramName)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		respondBadRequest(c, "invalid "+paramName)
		return 0, false
	}
	return uint(id), true
}

// emailParam returns the :email path segment, percent-decoded. Front-ends
// encode the address with encodeURIComponent before building the URL.
func emailParam(c *gin.Context) string {
	raw := c.Param("email")
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}
