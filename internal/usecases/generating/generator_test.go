package generating

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/internal/domain"
)

func TestGenerate(t *testing.T) {
	records := Generate(Options{Records: 2000, Start: DefaultStart, Seed: DefaultSeed})

	require.Len(t, records, 2000)
	assert.Equal(t, DefaultStart, records[0].Date)
	assert.Equal(t, DefaultStart.Add(1999*time.Hour), records[1999].Date)

	products := map[string]struct{}{}
	quantitySum := 0
	for _, record := range records {
		assert.GreaterOrEqual(t, record.Value, 50.0)
		assert.GreaterOrEqual(t, record.Quantity, 1)
		assert.Contains(t, Categories, record.Category)
		assert.Contains(t, Regions, record.Region)
		assert.True(t, strings.HasPrefix(record.Product, "Produto "))
		products[record.Product] = struct{}{}
		quantitySum += record.Quantity
	}

	assert.LessOrEqual(t, len(products), productCount)

	// Poisson(5) + 1 tem média 6
	mean := float64(quantitySum) / float64(len(records))
	assert.InDelta(t, 6.0, mean, 0.5)
}

func TestGenerate_Deterministic(t *testing.T) {
	opts := Options{Records: 50, Start: DefaultStart, Seed: 7}

	assert.Equal(t, Generate(opts), Generate(opts))
	assert.NotEqual(t, Generate(opts), Generate(Options{Records: 50, Start: DefaultStart, Seed: 8}))
}

func TestGenerate_LoadsIntoStore(t *testing.T) {
	store := domain.NewSalesStore(Generate(Options{Records: 24 * 40, Start: DefaultStart, Seed: DefaultSeed}))

	minDate, maxDate, ok := store.DateRange()
	require.True(t, ok)
	assert.Equal(t, DefaultStart, minDate)
	assert.Equal(t, DefaultStart.Add(959*time.Hour), maxDate)
	assert.Len(t, store.Categories(), len(Categories))
}

func TestGenerate_Empty(t *testing.T) {
	assert.Empty(t, Generate(Options{Records: -1}))
	assert.Equal(t, DefaultRecords, DefaultOptions().Records)
}
