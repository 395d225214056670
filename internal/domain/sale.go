package domain

import "time"

// MonthLayout é o formato do rótulo de mês derivado (ex: 2024-01)
const MonthLayout = "2006-01"

// SalesRecord representa uma linha de venda do dataset
type SalesRecord struct {
	Date     time.Time `json:"data"`
	Value    float64   `json:"valor"`
	Quantity int       `json:"quantidade"`
	Category string    `json:"categoria"`
	Region   string    `json:"regiao"`
	Product  string    `json:"produto"`

	// Campos derivados, calculados uma única vez na ingestão
	Revenue float64 `json:"receita"`
	Month   string  `json:"mes"`
	Year    int     `json:"ano"`
}

// Derive calcula receita, mês e ano de cada registro.
// Os campos derivados são sempre recalculados a partir dos campos base,
// portanto chamar Derive duas vezes produz o mesmo resultado.
func Derive(records []SalesRecord) []SalesRecord {
	derived := make([]SalesRecord, len(records))
	for i, record := range records {
		record.Revenue = record.Value * float64(record.Quantity)
		record.Month = record.Date.Format(MonthLayout)
		record.Year = record.Date.Year()
		derived[i] = record
	}

	return derived
}
