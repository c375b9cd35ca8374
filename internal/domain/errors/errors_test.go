package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsStillMatches(t *testing.T) {
	err := ErrImageFetchFailed.WithDetails("status 500")

	assert.ErrorIs(t, err, ErrImageFetchFailed)
	assert.NotErrorIs(t, err, ErrQueryFailed)
	assert.Equal(t, "status 500", err.Details())
}

func TestDocumentStoreError_IsQueryFailed(t *testing.T) {
	cause := stderrors.New("deadline exceeded")
	err := NewDocumentStoreError(cause, "list posts")

	assert.ErrorIs(t, err, ErrQueryFailed)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, http.StatusServiceUnavailable, err.HTTPCode())
	assert.Equal(t, "QUERY_FAILED", err.ErrorCode())
}
