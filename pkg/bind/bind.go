// Package bind decodes and validates an HTTP request body into a struct.
package bind

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/cafedelights/api/pkg/validate"
)

// DefaultMaxBodyBytes caps request bodies to prevent memory exhaustion.
// Override per process via SetMaxBodyBytes at startup.
const DefaultMaxBodyBytes = 4 << 20 // 4 MB

var maxBodyBytes int64 = DefaultMaxBodyBytes

// SetMaxBodyBytes changes the request body size limit. Call once during
// startup, before the server accepts traffic.
func SetMaxBodyBytes(n int64) {
	if n > 0 {
		maxBodyBytes = n
	}
}

// JSON decodes r.Body as JSON into dest and runs validation.
// Returns (errs, nil) when there are validation failures.
// Returns (nil, err) when the body is malformed JSON or too large.
func JSON(r *http.Request, dest interface{}) (errs map[string]string, err error) {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	if err = dec.Decode(dest); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, fmt.Errorf("request body too large (max %d bytes)", maxErr.Limit)
		}
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	errs = validate.Struct(dest)
	if validate.HasErrors(errs) {
		return errs, nil
	}

	return nil, nil
}
