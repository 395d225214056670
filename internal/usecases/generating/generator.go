package generating

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/internal/domain"
	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/pkg/utils"
)

const (
	DefaultRecords = 500000
	DefaultSeed    = 42

	priceScale   = 100.0
	priceFloor   = 50.0
	quantityMean = 5.0
	productCount = 100
)

var (
	DefaultStart = time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)

	Categories = []string{"Eletrônicos", "Roupas", "Alimentos", "Livros", "Móveis", "Esportes", "Brinquedos", "Automotivo"}
	Regions    = []string{"Norte", "Sul", "Leste", "Oeste", "Centro", "Nordeste", "Sudeste"}
)

type Options struct {
	Records int
	Start   time.Time
	Seed    int64
}

// DefaultOptions reproduz o dataset de exemplo: 500 mil vendas horárias a partir de 2022
func DefaultOptions() Options {
	return Options{
		Records: DefaultRecords,
		Start:   DefaultStart,
		Seed:    DefaultSeed,
	}
}

// Generate cria vendas sintéticas, uma por hora a partir de opts.Start.
// Preço segue uma exponencial deslocada em 50 e quantidade uma Poisson deslocada em 1.
// A mesma semente sempre produz o mesmo dataset.
func Generate(opts Options) []domain.SalesRecord {
	if opts.Records < 0 {
		opts.Records = 0
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	start := opts.Start.UTC()

	records := make([]domain.SalesRecord, opts.Records)
	for i := range records {
		records[i] = domain.SalesRecord{
			Date:     start.Add(time.Duration(i) * time.Hour),
			Value:    utils.RoundWithTwoDecimalPlace(rng.ExpFloat64()*priceScale + priceFloor),
			Quantity: poisson(rng, quantityMean) + 1,
			Category: Categories[rng.Intn(len(Categories))],
			Region:   Regions[rng.Intn(len(Regions))],
			Product:  fmt.Sprintf("Produto %d", rng.Intn(productCount)+1),
		}
	}

	return records
}

// poisson usa o método de Knuth, adequado para médias pequenas
func poisson(rng *rand.Rand, lambda float64) int {
	limit := math.Exp(-lambda)
	k := 0
	p := rng.Float64()
	for p > limit {
		k++
		p *= rng.Float64()
	}

	return k
}
