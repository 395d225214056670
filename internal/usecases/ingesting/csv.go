package ingesting

import (
	"encoding/csv"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/internal/domain"
	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/pkg/utils"
)

// Colunas do esquema bruto de vendas
const (
	ColumnDate     = "data"
	ColumnValue    = "valor"
	ColumnQuantity = "quantidade"
	ColumnCategory = "categoria"
	ColumnRegion   = "regiao"
	ColumnProduct  = "produto"
)

// RequiredColumns lista as colunas que toda fonte tabular precisa ter
var RequiredColumns = []string{
	ColumnDate,
	ColumnValue,
	ColumnQuantity,
	ColumnCategory,
	ColumnRegion,
	ColumnProduct,
}

// ParseCSV lê o CSV de vendas. A ordem das colunas é livre e colunas extras
// (como receita, mes e ano já calculados) são ignoradas, pois os campos
// derivados são sempre recalculados na carga.
func ParseCSV(source string, r io.Reader) ([]domain.SalesRecord, error) {
	reader := csv.NewReader(r)
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, &IngestError{Err: ErrMissingColumn, Source: source, Details: "arquivo sem cabeçalho"}
	}
	if err != nil {
		return nil, &IngestError{Err: ErrMalformedRow, Source: source, Line: 1, Details: err.Error()}
	}

	index, err := columnIndex(source, header)
	if err != nil {
		return nil, err
	}

	records := make([]domain.SalesRecord, 0, 1024)
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &IngestError{Err: ErrMalformedRow, Source: source, Details: err.Error()}
		}

		line, _ := reader.FieldPos(0)
		record, err := parseRow(source, line, index, row)
		if err != nil {
			return nil, err
		}

		records = append(records, record)
	}

	return records, nil
}

func columnIndex(source string, header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, exists := index[name]; !exists {
			index[name] = i
		}
	}

	var missing []string
	for _, column := range RequiredColumns {
		if _, ok := index[column]; !ok {
			missing = append(missing, column)
		}
	}

	if len(missing) > 0 {
		return nil, &IngestError{
			Err:     ErrMissingColumn,
			Source:  source,
			Line:    1,
			Column:  strings.Join(missing, ","),
			Details: "cabeçalho encontrado: " + strings.Join(header, ","),
		}
	}

	return index, nil
}

func parseRow(source string, line int, index map[string]int, row []string) (domain.SalesRecord, error) {
	field := func(column string) string {
		return strings.TrimSpace(row[index[column]])
	}

	date, _, err := utils.ParseTimestamp(field(ColumnDate))
	if err != nil {
		return domain.SalesRecord{}, newFieldError(ErrInvalidDate, source, line, ColumnDate, err.Error())
	}

	value, err := parsePositiveFloat(field(ColumnValue))
	if err != nil {
		return domain.SalesRecord{}, newFieldError(errors.Cause(err), source, line, ColumnValue, strconv.Quote(field(ColumnValue)))
	}

	quantity, err := parsePositiveInt(field(ColumnQuantity))
	if err != nil {
		return domain.SalesRecord{}, newFieldError(errors.Cause(err), source, line, ColumnQuantity, strconv.Quote(field(ColumnQuantity)))
	}

	record := domain.SalesRecord{
		Date:     date,
		Value:    value,
		Quantity: quantity,
		Category: field(ColumnCategory),
		Region:   field(ColumnRegion),
		Product:  field(ColumnProduct),
	}

	if column := emptyDimension(record); column != "" {
		return domain.SalesRecord{}, newFieldError(ErrEmptyField, source, line, column, "")
	}

	return record, nil
}

// emptyDimension retorna o nome da primeira coluna textual vazia
func emptyDimension(record domain.SalesRecord) string {
	switch {
	case record.Category == "":
		return ColumnCategory
	case record.Region == "":
		return ColumnRegion
	case record.Product == "":
		return ColumnProduct
	}

	return ""
}

func parsePositiveFloat(raw string) (float64, error) {
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, errors.WithStack(ErrInvalidNumber)
	}
	if value <= 0 {
		return 0, errors.WithStack(ErrNonPositive)
	}

	return value, nil
}

// parsePositiveInt aceita inteiros escritos como float integral (ex: "3.0")
func parsePositiveInt(raw string) (int, error) {
	quantity, err := strconv.Atoi(raw)
	if err != nil {
		asFloat, floatErr := strconv.ParseFloat(raw, 64)
		if floatErr != nil || asFloat != math.Trunc(asFloat) || math.IsInf(asFloat, 0) {
			return 0, errors.WithStack(ErrInvalidNumber)
		}
		quantity = int(asFloat)
	}
	if quantity <= 0 {
		return 0, errors.WithStack(ErrNonPositive)
	}

	return quantity, nil
}

// ValidateRecord aplica aos registros vindos de fontes tipadas (banco de dados)
// as mesmas regras usadas na leitura do CSV
func ValidateRecord(source string, line int, record domain.SalesRecord) error {
	if record.Date.IsZero() {
		return newFieldError(ErrInvalidDate, source, line, ColumnDate, "data vazia")
	}

	if math.IsNaN(record.Value) || math.IsInf(record.Value, 0) {
		return newFieldError(ErrInvalidNumber, source, line, ColumnValue, strconv.FormatFloat(record.Value, 'f', -1, 64))
	}
	if record.Value <= 0 {
		return newFieldError(ErrNonPositive, source, line, ColumnValue, strconv.FormatFloat(record.Value, 'f', -1, 64))
	}

	if record.Quantity <= 0 {
		return newFieldError(ErrNonPositive, source, line, ColumnQuantity, strconv.Itoa(record.Quantity))
	}

	if column := emptyDimension(record); column != "" {
		return newFieldError(ErrEmptyField, source, line, column, "")
	}

	return nil
}
