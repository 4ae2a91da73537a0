package utils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/vaughan-dsouza/BlogPosts/internal/apperr"
)

// JSON writes a JSON response with status code.
func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// JSONError writes {"error": "..."} with a given status.
func JSONError(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, map[string]string{"error": msg})
}

// Error writes err with the status matching its kind.
func Error(w http.ResponseWriter, err error) {
	JSONError(w, apperr.HTTPStatus(err), err.Error())
}

// DecodeJSON parses the JSON body into v and handles invalid JSON.
// An empty body leaves v untouched so required-field checks report it.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	if r.Body == nil {
		return nil
	}

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		JSONError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return err
	}

	return nil
}
