package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/internal/domain"
)

func TestCodec_RoundTrip(t *testing.T) {
	view := scenarioView()

	data, err := Encode(view)
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)

	assert.Equal(t, view, decoded)
}

func TestCodec_EmptyView(t *testing.T) {
	view := domain.FilteredView{Records: []domain.SalesRecord{}}

	data, err := Encode(view)
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)

	assert.True(t, decoded.IsEmpty())
	assert.Equal(t, view.Spec, decoded.Spec)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name        string
		payload     string
		expectedErr error
	}{
		{
			name:    "JSON inválido",
			payload: "{",
		},
		{
			name:        "Versão diferente",
			payload:     `{"v":99,"filters":{},"records":[]}`,
			expectedErr: ErrPayloadVersion,
		},
		{
			name:    "Data inválida",
			payload: `{"v":1,"filters":{"start_date":"ontem","end_date":"hoje"},"records":[]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.payload))

			require.Error(t, err)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			}
		})
	}
}
