package domain

import "time"

// FilteredView é o subconjunto de vendas que atende a um FilterSpec.
// Nunca é modificado depois de criado.
type FilteredView struct {
	Spec    FilterSpec    `json:"filters"`
	Records []SalesRecord `json:"records"`
}

// Len retorna a quantidade de registros da visão
func (v FilteredView) Len() int {
	return len(v.Records)
}

// IsEmpty indica que nenhum registro atendeu ao filtro
func (v FilteredView) IsEmpty() bool {
	return len(v.Records) == 0
}

type KPIs struct {
	TotalRevenue  float64 `json:"total_revenue"`
	TotalQuantity int     `json:"total_quantity"`
	AverageTicket float64 `json:"average_ticket"`
}

type MonthlyRevenue struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

type CategoryRevenue struct {
	Category string  `json:"category"`
	Revenue  float64 `json:"revenue"`
}

type ProductRevenue struct {
	Product string  `json:"product"`
	Revenue float64 `json:"revenue"`
}

// RegionCategoryPivot é a tabela região x categoria usada no mapa de calor.
// Values[i][j] é a receita da região Regions[i] na categoria Categories[j].
type RegionCategoryPivot struct {
	Regions    []string    `json:"regions"`
	Categories []string    `json:"categories"`
	Values     [][]float64 `json:"values"`
}

// Value retorna a célula da tabela; ok é falso quando a região ou a categoria não fazem parte dela
func (p RegionCategoryPivot) Value(region, category string) (value float64, ok bool) {
	row, col := -1, -1
	for i, r := range p.Regions {
		if r == region {
			row = i
			break
		}
	}
	for j, c := range p.Categories {
		if c == category {
			col = j
			break
		}
	}

	if row < 0 || col < 0 {
		return 0, false
	}

	return p.Values[row][col], true
}

// DailySales é a receita somada de um dia, identificado pelo deslocamento em dias desde a menor data da visão
type DailySales struct {
	DayOffset int     `json:"day_offset"`
	Revenue   float64 `json:"revenue"`
}

// TrendAnalysis traz as vendas diárias e a reta de tendência.
// TrendLine é nil quando há menos de dois dias distintos.
type TrendAnalysis struct {
	DailySales []DailySales `json:"daily_sales"`
	TrendLine  []float64    `json:"trend_line"`
}

// SalesForecast estende a análise de tendência com a projeção para os próximos dias.
// TrendLine, FutureOffsets e FutureSales são nil quando há menos de dois dias distintos.
type SalesForecast struct {
	DailySales    []DailySales `json:"daily_sales"`
	TrendLine     []float64    `json:"trend_line"`
	FutureOffsets []int        `json:"future_offsets"`
	FutureSales   []float64    `json:"future_sales"`
}

// Dashboard agrupa todas as agregações calculadas para um filtro
type Dashboard struct {
	Filters         FilterSpec          `json:"filters"`
	RecordCount     int                 `json:"record_count"`
	KPIs            KPIs                `json:"kpis"`
	SalesEvolution  []MonthlyRevenue    `json:"sales_evolution"`
	SalesByCategory []CategoryRevenue   `json:"sales_by_category"`
	TopProducts     []ProductRevenue    `json:"top_products"`
	RegionHeatmap   RegionCategoryPivot `json:"region_heatmap"`
	Trend           TrendAnalysis       `json:"trend"`
	Forecast        SalesForecast       `json:"forecast"`
}

// FilterOptions lista os valores disponíveis para os seletores do dashboard
type FilterOptions struct {
	Categories []string   `json:"categories"`
	Regions    []string   `json:"regions"`
	StartDate  *time.Time `json:"start_date"`
	EndDate    *time.Time `json:"end_date"`
}
