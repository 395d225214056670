package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/internal/domain"
)

func TestKeyOf(t *testing.T) {
	spec := func(start, end, category, region string) domain.FilterSpec {
		s, err := domain.NewFilterSpec(start, end, category, region)
		require.NoError(t, err)
		return s
	}

	base := spec("2024-01-01", "2024-01-31", "all", "all")

	tests := []struct {
		name  string
		other domain.FilterSpec
		equal bool
	}{
		{
			name:  "Mesmo filtro",
			other: spec("2024-01-01", "2024-01-31", "all", "all"),
			equal: true,
		},
		{
			name:  "Datas em formatos diferentes",
			other: spec("2024-01-01T00:00:00", "2024-01-31T23:59:59.999999999Z", "", ""),
			equal: true,
		},
		{
			name:  "Fuso horário convertido para UTC",
			other: spec("2023-12-31T21:00:00-03:00", "2024-01-31", "all", "all"),
			equal: true,
		},
		{
			name:  "Categoria diferente",
			other: spec("2024-01-01", "2024-01-31", "A", "all"),
		},
		{
			name:  "Categoria com maiúscula diferente",
			other: spec("2024-01-01", "2024-01-31", "All", "all"),
		},
		{
			name:  "Data final diferente",
			other: spec("2024-01-01", "2024-01-30", "all", "all"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.equal, KeyOf(base) == KeyOf(tt.other))
		})
	}
}

func TestKeyOf_Format(t *testing.T) {
	key := KeyOf(domain.FilterSpec{})

	assert.Len(t, key, 64)
	assert.Regexp(t, "^[0-9a-f]{64}$", key)
}

func TestPrefixedKey(t *testing.T) {
	assert.Equal(t, "abc", PrefixedKey("", "abc"))
	assert.Equal(t, "vendas:abc", PrefixedKey("vendas:", "abc"))
}
