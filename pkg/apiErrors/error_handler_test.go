package apiErrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		code           string
		expectedStatus int
	}{
		{code: ErrInvalidFilter, expectedStatus: http.StatusBadRequest},
		{code: ErrInvalidToken, expectedStatus: http.StatusUnauthorized},
		{code: ErrInsufficientPrivilege, expectedStatus: http.StatusForbidden},
		{code: ErrConflict, expectedStatus: http.StatusConflict},
		{code: "DESCONHECIDO", expectedStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			rec := httptest.NewRecorder()

			WriteError(rec, tt.code, "mensagem", map[string]string{"campo": "start_date"})

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, "mensagem", body.Message)
		})
	}
}

func TestFromError(t *testing.T) {
	assert.Equal(t, APIError{Code: ErrInternalServer, Message: "Erro desconhecido"}, FromError(nil, ErrInvalidRequest))
	assert.Equal(t, APIError{Code: ErrInvalidRequest, Message: "falhou"}, FromError(errors.New("falhou"), ErrInvalidRequest))
}
