// Package jsonbody decodes JSON request bodies into typed payloads.
package jsonbody

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/dalemusser/pokerhub/internal/app/system/apierr"
	"github.com/dalemusser/pokerhub/internal/app/system/limits"
)

// Decode reads one JSON value from r's body into v. The body is capped
// at maxBytes (limits.DefaultMaxJSONBody when maxBytes <= 0). Any
// failure is returned as a Validation error.
func Decode(w http.ResponseWriter, r *http.Request, maxBytes int64, v any) error {
	if maxBytes <= 0 {
		maxBytes = limits.DefaultMaxJSONBody
	}
	body := http.MaxBytesReader(w, r.Body, maxBytes)
	defer body.Close()

	dec := json.NewDecoder(body)
	if err := dec.Decode(v); err != nil {
		var tooBig *http.MaxBytesError
		var syntax *json.SyntaxError
		var typ *json.UnmarshalTypeError
		switch {
		case errors.As(err, &tooBig):
			return apierr.Invalid("Invalid request body: exceeds %d bytes", tooBig.Limit)
		case errors.Is(err, io.EOF):
			return apierr.Invalid("Invalid request body: empty")
		case errors.As(err, &syntax):
			return apierr.Invalid("Invalid request body: malformed JSON at offset %d", syntax.Offset)
		case errors.As(err, &typ):
			return apierr.Invalid("Invalid request body: field %q must be %s", typ.Field, typ.Type)
		default:
			return apierr.Invalid("Invalid request body: %v", err)
		}
	}
	if dec.More() {
		return apierr.Invalid("Invalid request body: unexpected data after JSON value")
	}
	return nil
}
