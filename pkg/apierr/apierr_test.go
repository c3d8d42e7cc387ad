package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorFormatting(t *testing.T) {
	t.Parallel()

	err := BadRequest(CodeMissingRequirement, "카테고리 혹은 프롬프트를 입력해주세요.")
	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Contains(t, err.Error(), CodeMissingRequirement)

	cause := errors.New("connection refused")
	wrapped := BadGateway("AI request failed", cause)
	assert.Equal(t, http.StatusBadGateway, wrapped.Status)
	assert.Equal(t, CodeAIBadGateway, wrapped.Code)
	assert.ErrorIs(t, wrapped, cause)
}

func TestErrorsAsThroughWrapping(t *testing.T) {
	t.Parallel()

	inner := New(http.StatusInternalServerError, CodeAIConfigMissing, "AI_ENDPOINT is not set")
	outer := fmt.Errorf("recommend: %w", inner)

	var apiErr *Error
	require.True(t, errors.As(outer, &apiErr))
	assert.Equal(t, CodeAIConfigMissing, apiErr.Code)
}
