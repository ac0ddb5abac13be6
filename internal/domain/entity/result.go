package entity

import (
	"bytes"
	"encoding/json"
)

// Result is the single outcome reported to the calling process.
type Result struct {
	Success    bool
	OutputPath string
	Error      string
}

// NewSuccess builds a successful Result for the written file name.
func NewSuccess(outputPath string) Result {
	return Result{Success: true, OutputPath: outputPath}
}

// NewFailure builds a failed Result carrying the error text.
func NewFailure(err error) Result {
	return Result{Success: false, Error: err.Error()}
}

type successPayload struct {
	Success    bool   `json:"success"`
	OutputPath string `json:"output_path"`
}

type failurePayload struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// MarshalJSON emits either {"success":true,"output_path":...} or
// {"success":false,"error":...}, never both fields. Non-ASCII text and
// HTML-significant characters are written as-is.
func (r Result) MarshalJSON() ([]byte, error) {
	var payload any = failurePayload{Success: false, Error: r.Error}
	if r.Success {
		payload = successPayload{Success: true, OutputPath: r.OutputPath}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(payload); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
