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
		code   string
		status int
	}{
		{code: ErrCampaignNotFound, status: http.StatusNotFound},
		{code: ErrInvalidChannel, status: http.StatusBadRequest},
		{code: ErrInvalidToken, status: http.StatusUnauthorized},
		{code: ErrSyncInProgress, status: http.StatusConflict},
		{code: "XYZ_999", status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tt.code, "mensagem", map[string]string{"campo": "date"})

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, "mensagem", body.Message)
		})
	}
}

func TestFromError(t *testing.T) {
	assert.Equal(t, ErrInternalServer, FromError(nil, ErrInvalidDate).Code)

	apiErr := FromError(errors.New("data inválida"), ErrInvalidDate)
	assert.Equal(t, ErrInvalidDate, apiErr.Code)
	assert.Equal(t, "data inválida", apiErr.Message)
}
