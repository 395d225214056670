package exporting

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/internal/domain"
	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/pkg/utils"
)

const (
	fileNamePrefix = "dados_exportados_"
	fileIDSize     = 12
)

// Header são as colunas do CSV exportado: o esquema bruto seguido dos campos derivados
var Header = []string{"data", "valor", "quantidade", "categoria", "regiao", "produto", "receita", "mes", "ano"}

// WriteCSV grava a visão filtrada em CSV. Valores monetários saem com a precisão completa, sem notação científica.
func WriteCSV(w io.Writer, view domain.FilteredView) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(Header); err != nil {
		return errors.Wrap(err, "falha ao escrever cabeçalho")
	}

	row := make([]string, len(Header))
	for i, record := range view.Records {
		row[0] = record.Date.UTC().Format(time.DateTime)
		row[1] = amount(record.Value)
		row[2] = strconv.Itoa(record.Quantity)
		row[3] = record.Category
		row[4] = record.Region
		row[5] = record.Product
		row[6] = amount(record.Revenue)
		row[7] = record.Month
		row[8] = strconv.Itoa(record.Year)

		if err := writer.Write(row); err != nil {
			return errors.Wrapf(err, "falha ao escrever registro %d", i)
		}
	}

	writer.Flush()
	return errors.Wrap(writer.Error(), "falha ao finalizar CSV")
}

// FileName gera um nome único para o arquivo exportado
func FileName() string {
	id, err := utils.GenerateID(fileIDSize)
	if err != nil {
		// Sem entropia disponível o nome ainda precisa ser válido
		id = strconv.FormatInt(time.Now().UnixNano(), 36)
	}

	return fileNamePrefix + id + ".csv"
}

func amount(value float64) string {
	return decimal.NewFromFloat(value).String()
}
