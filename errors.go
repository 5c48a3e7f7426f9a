package calcana

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// APIError captures a non-2xx response from the Calcana API.
type APIError struct {
	Status  int
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("calcana: http %d", e.Status)
	}
	return fmt.Sprintf("calcana: http %d: %s", e.Status, e.Message)
}

// decodeAPIError reads an error response body. The backend reports failures
// as {"message": "..."} (Spring-style); anything else falls back to the raw
// body or the status line.
func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}
	data, _ := io.ReadAll(resp.Body)
	if len(data) == 0 {
		apiErr.Message = resp.Status
		return apiErr
	}
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		apiErr.Message = string(data)
		return apiErr
	}
	switch {
	case payload.Message != "":
		apiErr.Message = payload.Message
	case payload.Error != "":
		apiErr.Message = payload.Error
	default:
		apiErr.Message = resp.Status
	}
	return apiErr
}
