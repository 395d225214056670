package domain

import (
	"sort"
	"time"
)

// SalesStore é a coleção imutável de vendas carregada na inicialização.
// Depois de construída é apenas leitura e pode ser compartilhada entre
// requisições concorrentes sem lock.
type SalesStore struct {
	records    []SalesRecord
	categories []string
	regions    []string
	minDate    time.Time
	maxDate    time.Time
}

// NewSalesStore cria o store a partir dos registros brutos, derivando receita, mês e ano
func NewSalesStore(records []SalesRecord) *SalesStore {
	store := &SalesStore{
		records: Derive(records),
	}

	categorySet := make(map[string]struct{})
	regionSet := make(map[string]struct{})

	for i, record := range store.records {
		categorySet[record.Category] = struct{}{}
		regionSet[record.Region] = struct{}{}

		if i == 0 || record.Date.Before(store.minDate) {
			store.minDate = record.Date
		}
		if i == 0 || record.Date.After(store.maxDate) {
			store.maxDate = record.Date
		}
	}

	store.categories = sortedKeys(categorySet)
	store.regions = sortedKeys(regionSet)

	return store
}

// Records retorna os registros na ordem de carga. O slice não deve ser modificado.
func (s *SalesStore) Records() []SalesRecord {
	return s.records
}

// Len retorna a quantidade de registros
func (s *SalesStore) Len() int {
	return len(s.records)
}

// Categories retorna as categorias distintas em ordem alfabética
func (s *SalesStore) Categories() []string {
	return append([]string(nil), s.categories...)
}

// Regions retorna as regiões distintas em ordem alfabética
func (s *SalesStore) Regions() []string {
	return append([]string(nil), s.regions...)
}

// DateRange retorna a menor e a maior data do dataset. ok é falso para um store vazio.
func (s *SalesStore) DateRange() (minDate, maxDate time.Time, ok bool) {
	if len(s.records) == 0 {
		return time.Time{}, time.Time{}, false
	}

	return s.minDate, s.maxDate, true
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return keys
}
