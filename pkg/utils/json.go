package utils

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrBadRequest reports a request body that cannot be decoded.
var ErrBadRequest = errors.New("bad request")

// maxBodyBytes caps request bodies; entity payloads are a handful of fields.
const maxBodyBytes = 1 << 20

// DecodeJSON decodes a single JSON object from the request body into dest.
// Unknown keys, mistyped values and trailing data are rejected with an error
// wrapping [ErrBadRequest].
func DecodeJSON(w http.ResponseWriter, r *http.Request, dest any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))

	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: request body is empty", ErrBadRequest)
		}
		return fmt.Errorf("%w: %s", ErrBadRequest, err.Error())
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: request body must contain a single JSON object", ErrBadRequest)
	}

	if !bytes.HasPrefix(bytes.TrimSpace(raw), []byte("{")) {
		return fmt.Errorf("%w: request body must be a JSON object", ErrBadRequest)
	}

	fields := json.NewDecoder(bytes.NewReader(raw))
	fields.DisallowUnknownFields()

	if err := fields.Decode(dest); err != nil {
		return fmt.Errorf("%w: %s", ErrBadRequest, err.Error())
	}

	return nil
}

// WriteJSON writes payload as the response body with the given status.
func WriteJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// WriteError writes {"error": message}.
func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, map[string]string{"error": message})
}
