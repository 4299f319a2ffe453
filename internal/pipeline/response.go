package pipeline

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ironsheep/detect-objects/internal/detection"
)

// UnknownSessionID stands in for a session id that was never parsed.
const UnknownSessionID = "unknown"

// Response is the success form of the result document.
type Response struct {
	// Detections is never nil, so it always serializes as an array.
	Detections []detection.Detection `json:"detections"`

	// ProcessedImage is the annotated image as base64 JPEG.
	ProcessedImage string `json:"processedImage"`

	// ProcessingTime is the detect+render+encode time in milliseconds.
	ProcessingTime float64 `json:"processingTime"`

	// SessionID echoes the request's session id verbatim.
	SessionID string `json:"sessionId"`
}

// ErrorResponse is the failure form of the result document.
type ErrorResponse struct {
	Error     string `json:"error"`
	SessionID string `json:"sessionId"`
}

// WriteResponse writes resp to w as a single JSON document.
func WriteResponse(w io.Writer, resp *Response) error {
	return writeJSON(w, resp)
}

// WriteError writes the error form for err to w. An empty sessionID is
// replaced by UnknownSessionID.
func WriteError(w io.Writer, sessionID string, err error) error {
	if sessionID == "" {
		sessionID = UnknownSessionID
	}
	return writeJSON(w, &ErrorResponse{
		Error:     err.Error(),
		SessionID: sessionID,
	})
}

func writeJSON(w io.Writer, v interface{}) error {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}
	return nil
}
