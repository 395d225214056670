package analyzing

import (
	"sort"
	"time"

	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/internal/domain"
)

const (
	// DefaultTopN é a quantidade de produtos do ranking quando n não é informado
	DefaultTopN = 10
	// DefaultHorizon é a quantidade de dias projetados pela previsão
	DefaultHorizon = 30
)

const day = 24 * time.Hour

// KPIs calcula receita total, quantidade total e ticket médio da visão
func KPIs(view domain.FilteredView) domain.KPIs {
	var kpis domain.KPIs
	for _, record := range view.Records {
		kpis.TotalRevenue += record.Revenue
		kpis.TotalQuantity += record.Quantity
	}

	// Evitar divisão por zero
	if kpis.TotalQuantity > 0 {
		kpis.AverageTicket = kpis.TotalRevenue / float64(kpis.TotalQuantity)
	}

	return kpis
}

// SalesEvolution soma a receita por mês, em ordem crescente de mês
func SalesEvolution(view domain.FilteredView) []domain.MonthlyRevenue {
	totals := sumBy(view.Records, func(r domain.SalesRecord) string { return r.Month })

	evolution := make([]domain.MonthlyRevenue, 0, len(totals))
	for _, month := range sortedKeys(totals) {
		evolution = append(evolution, domain.MonthlyRevenue{Month: month, Revenue: totals[month]})
	}

	return evolution
}

// SalesByCategory soma a receita por categoria, em ordem alfabética
func SalesByCategory(view domain.FilteredView) []domain.CategoryRevenue {
	totals := sumBy(view.Records, func(r domain.SalesRecord) string { return r.Category })

	categories := make([]domain.CategoryRevenue, 0, len(totals))
	for _, category := range sortedKeys(totals) {
		categories = append(categories, domain.CategoryRevenue{Category: category, Revenue: totals[category]})
	}

	return categories
}

// TopProducts retorna os n produtos de maior receita, apresentados em ordem crescente
// de receita (o maior fica por último, como no gráfico de barras horizontal).
// Empates são resolvidos pelo nome do produto.
func TopProducts(view domain.FilteredView, n int) []domain.ProductRevenue {
	if n <= 0 {
		n = DefaultTopN
	}

	totals := sumBy(view.Records, func(r domain.SalesRecord) string { return r.Product })

	products := make([]domain.ProductRevenue, 0, len(totals))
	for product, revenue := range totals {
		products = append(products, domain.ProductRevenue{Product: product, Revenue: revenue})
	}

	sort.Slice(products, func(i, j int) bool {
		if products[i].Revenue != products[j].Revenue {
			return products[i].Revenue > products[j].Revenue
		}
		return products[i].Product < products[j].Product
	})

	if len(products) > n {
		products = products[:n]
	}

	sort.Slice(products, func(i, j int) bool {
		if products[i].Revenue != products[j].Revenue {
			return products[i].Revenue < products[j].Revenue
		}
		return products[i].Product < products[j].Product
	})

	return products
}

// RegionCategoryPivot monta a tabela região x categoria da receita.
// Quando regions ou categories são nil, usa os valores distintos da visão em ordem alfabética.
// Células sem vendas ficam com zero.
func RegionCategoryPivot(view domain.FilteredView, regions, categories []string) domain.RegionCategoryPivot {
	if regions == nil {
		regions = distinct(view.Records, func(r domain.SalesRecord) string { return r.Region })
	}
	if categories == nil {
		categories = distinct(view.Records, func(r domain.SalesRecord) string { return r.Category })
	}

	rowOf := indexOf(regions)
	colOf := indexOf(categories)

	values := make([][]float64, len(regions))
	for i := range values {
		values[i] = make([]float64, len(categories))
	}

	for _, record := range view.Records {
		row, okRow := rowOf[record.Region]
		col, okCol := colOf[record.Category]
		if okRow && okCol {
			values[row][col] += record.Revenue
		}
	}

	return domain.RegionCategoryPivot{
		Regions:    append([]string{}, regions...),
		Categories: append([]string{}, categories...),
		Values:     values,
	}
}

// TrendAnalysis soma a receita por dia e ajusta a reta de tendência
func TrendAnalysis(view domain.FilteredView) domain.TrendAnalysis {
	daily := DailyRevenue(view)
	analysis := domain.TrendAnalysis{DailySales: daily}

	model, ok := fitDaily(daily)
	if !ok {
		return analysis
	}

	analysis.TrendLine = predictAt(model, daily)
	return analysis
}

// SalesForecast projeta a reta de tendência para os próximos horizon dias
func SalesForecast(view domain.FilteredView, horizon int) domain.SalesForecast {
	if horizon <= 0 {
		horizon = DefaultHorizon
	}

	daily := DailyRevenue(view)
	forecast := domain.SalesForecast{DailySales: daily}

	model, ok := fitDaily(daily)
	if !ok {
		return forecast
	}

	lastOffset := daily[len(daily)-1].DayOffset
	forecast.TrendLine = predictAt(model, daily)
	forecast.FutureOffsets = make([]int, horizon)
	forecast.FutureSales = make([]float64, horizon)
	for i := 0; i < horizon; i++ {
		offset := lastOffset + i + 1
		forecast.FutureOffsets[i] = offset
		forecast.FutureSales[i] = model.Predict(float64(offset))
	}

	return forecast
}

// DailyRevenue agrupa a receita por dia, identificado pela quantidade de dias
// inteiros desde a menor data da visão, em ordem crescente
func DailyRevenue(view domain.FilteredView) []domain.DailySales {
	if view.IsEmpty() {
		return []domain.DailySales{}
	}

	minDate := view.Records[0].Date
	for _, record := range view.Records[1:] {
		if record.Date.Before(minDate) {
			minDate = record.Date
		}
	}

	totals := make(map[int]float64)
	for _, record := range view.Records {
		offset := int(record.Date.Sub(minDate) / day)
		totals[offset] += record.Revenue
	}

	daily := make([]domain.DailySales, 0, len(totals))
	for offset, revenue := range totals {
		daily = append(daily, domain.DailySales{DayOffset: offset, Revenue: revenue})
	}
	sort.Slice(daily, func(i, j int) bool { return daily[i].DayOffset < daily[j].DayOffset })

	return daily
}

func fitDaily(daily []domain.DailySales) (LinearModel, bool) {
	points := make([]Point, len(daily))
	for i, d := range daily {
		points[i] = Point{X: float64(d.DayOffset), Y: d.Revenue}
	}

	return Fit(points)
}

func predictAt(model LinearModel, daily []domain.DailySales) []float64 {
	line := make([]float64, len(daily))
	for i, d := range daily {
		line[i] = model.Predict(float64(d.DayOffset))
	}

	return line
}

func sumBy(records []domain.SalesRecord, key func(domain.SalesRecord) string) map[string]float64 {
	totals := make(map[string]float64)
	for _, record := range records {
		totals[key(record)] += record.Revenue
	}

	return totals
}

func distinct(records []domain.SalesRecord, key func(domain.SalesRecord) string) []string {
	seen := make(map[string]float64)
	for _, record := range records {
		seen[key(record)] = 0
	}

	return sortedKeys(seen)
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return keys
}

func indexOf(values []string) map[string]int {
	index := make(map[string]int, len(values))
	for i, value := range values {
		if _, exists := index[value]; !exists {
			index[value] = i
		}
	}

	return index
}
