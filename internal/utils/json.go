package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// MaxBodyBytes bounds request bodies; a long game record is a few KB.
const MaxBodyBytes = 1 << 20

// DecodeJSONRequest decodes the body into dst. A body over MaxBodyBytes
// yields an error wrapping *http.MaxBytesError.
func DecodeJSONRequest(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	body, err := ReadRequestBody(w, r)
	if err != nil {
		return fmt.Errorf("failed to read request body: %w", err)
	}

	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.DisallowUnknownFields()
	if err = decoder.Decode(dst); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	return nil
}

func ReadRequestBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	defer r.Body.Close()
	return io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
}
