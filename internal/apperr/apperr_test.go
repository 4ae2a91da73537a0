package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		kind   Kind
		status int
	}{
		{"validation", Validation("bad"), KindValidation, http.StatusBadRequest},
		{"not found", PostNotFound(), KindNotFound, http.StatusNotFound},
		{"store", Store(errors.New("connection refused")), KindStore, http.StatusInternalServerError},
		{"plain error", errors.New("boom"), KindStore, http.StatusInternalServerError},
		{"wrapped not found", fmt.Errorf("get: %w", PostNotFound()), KindNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, KindOf(tt.err))
			assert.Equal(t, tt.status, HTTPStatus(tt.err))
		})
	}
}

func TestStoreKeepsDriverMessage(t *testing.T) {
	cause := errors.New("the provided hex string is not a valid ObjectID")
	err := Store(cause)

	assert.Equal(t, cause.Error(), err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Nil(t, Store(nil))
}

func TestStoreDoesNotRewrapKindedErrors(t *testing.T) {
	err := Store(PostNotFound())

	assert.Equal(t, KindNotFound, KindOf(err))
	assert.Equal(t, "Post not found", err.Error())
}
