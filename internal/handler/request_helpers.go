package handler

import (
	"encoding/json"
	"errors"
	"net/http"
)

var errEmptyBody = errors.New("request body is empty")

// decodeJSONBody decodes a JSON request body, rejecting unknown fields
// so client typos fail loudly instead of silently defaulting.
func decodeJSONBody(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return errEmptyBody
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
