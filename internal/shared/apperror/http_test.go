package apperror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToHTTP(t *testing.T) {
	t.Run("app error maps through", func(t *testing.T) {
		appErr := New(CodeValidationError, "CPF inválido", http.StatusUnprocessableEntity)

		httpErr := ToHTTP(appErr)
		assert.Equal(t, http.StatusUnprocessableEntity, httpErr.Status)
		assert.Equal(t, CodeValidationError, httpErr.Code)
		assert.Equal(t, "CPF inválido", httpErr.Message)
		assert.Nil(t, httpErr.Details)
	})

	t.Run("wrapped cause becomes details", func(t *testing.T) {
		cause := errors.New("dial tcp: connection refused")
		appErr := Wrap(cause, CodeDispatchError, "Falha ao enviar a admissão", http.StatusBadGateway)

		httpErr := ToHTTP(appErr)
		assert.Equal(t, http.StatusBadGateway, httpErr.Status)
		assert.Equal(t, "dial tcp: connection refused", httpErr.Details)
	})

	t.Run("unknown error collapses to 500", func(t *testing.T) {
		httpErr := ToHTTP(errors.New("boom"))
		assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
		assert.Equal(t, CodeInternalError, httpErr.Code)
	})
}
