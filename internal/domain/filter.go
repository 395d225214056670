package domain

import (
	"errors"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/pkg/utils"
)

// AllValues é o valor sentinela que desativa o filtro de categoria ou região
const AllValues = "all"

// ErrInvalidFilter indica uma data de filtro que não pôde ser interpretada
var ErrInvalidFilter = errors.New("filtro inválido")

var canonicalJSON = jsoniter.ConfigCompatibleWithStandardLibrary

// FilterSpec define o período, a categoria e a região selecionados.
// É um valor imutável: qualquer alteração gera um novo FilterSpec.
type FilterSpec struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Category  string    `json:"category"`
	Region    string    `json:"region"`
}

// NewFilterSpec interpreta as datas e normaliza categoria e região.
// Datas sem hora cobrem o dia inteiro: o início vai para 00:00 e o fim para 23:59:59.999999999.
func NewFilterSpec(startDate, endDate, category, region string) (FilterSpec, error) {
	start, _, err := utils.ParseTimestamp(startDate)
	if err != nil {
		return FilterSpec{}, fmt.Errorf("%w: start_date: %v", ErrInvalidFilter, err)
	}

	end, endDateOnly, err := utils.ParseTimestamp(endDate)
	if err != nil {
		return FilterSpec{}, fmt.Errorf("%w: end_date: %v", ErrInvalidFilter, err)
	}

	if endDateOnly {
		end = utils.EndOfDay(end)
	}

	return FilterSpec{
		StartDate: start.UTC(),
		EndDate:   end.UTC(),
		Category:  normalizeSelector(category),
		Region:    normalizeSelector(region),
	}, nil
}

// MatchesCategory informa se a categoria passa pelo filtro (comparação exata)
func (f FilterSpec) MatchesCategory(category string) bool {
	selected := normalizeSelector(f.Category)
	return selected == AllValues || selected == category
}

// MatchesRegion informa se a região passa pelo filtro (comparação exata)
func (f FilterSpec) MatchesRegion(region string) bool {
	selected := normalizeSelector(f.Region)
	return selected == AllValues || selected == region
}

// Contains informa se a data está dentro do período, com os dois limites inclusivos
func (f FilterSpec) Contains(date time.Time) bool {
	return !date.Before(f.StartDate) && !date.After(f.EndDate)
}

// Canonical serializa o filtro com chaves em ordem fixa e datas em RFC3339Nano UTC.
// Dois filtros iguais produzem exatamente os mesmos bytes.
func (f FilterSpec) Canonical() []byte {
	fields := map[string]string{
		"start_date": f.StartDate.UTC().Format(time.RFC3339Nano),
		"end_date":   f.EndDate.UTC().Format(time.RFC3339Nano),
		"category":   normalizeSelector(f.Category),
		"region":     normalizeSelector(f.Region),
	}

	// map[string]string nunca falha ao serializar
	data, _ := canonicalJSON.Marshal(fields)
	return data
}

func normalizeSelector(value string) string {
	if value == "" {
		return AllValues
	}

	return value
}
