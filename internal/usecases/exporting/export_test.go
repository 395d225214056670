package exporting

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/internal/domain"
)

func TestWriteCSV(t *testing.T) {
	view := domain.FilteredView{Records: domain.Derive([]domain.SalesRecord{
		{Date: time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC), Value: 10.125, Quantity: 1, Category: "A", Region: "N", Product: "P1"},
		{Date: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), Value: 19.5, Quantity: 3, Category: "Casa, Jardim", Region: "S", Product: "P2"},
	})}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, view))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "data,valor,quantidade,categoria,regiao,produto,receita,mes,ano", lines[0])
	assert.Equal(t, "2024-01-01 09:30:00,10.125,1,A,N,P1,10.125,2024-01,2024", lines[1])
	assert.Equal(t, `2024-01-02 00:00:00,19.5,3,"Casa, Jardim",S,P2,58.5,2024-01,2024`, lines[2])
}

func TestWriteCSV_EmptyView(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteCSV(&buf, domain.FilteredView{}))

	assert.Equal(t, strings.Join(Header, ",")+"\n", buf.String())
}

func TestWriteCSV_KeepsFullPrecision(t *testing.T) {
	view := domain.FilteredView{Records: []domain.SalesRecord{
		{Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), Value: 123.456789, Quantity: 1, Category: "A", Region: "N", Product: "P1", Revenue: 1e7, Month: "2024-03", Year: 2024},
	}}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, view))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "2024-03-01 00:00:00,123.456789,1,A,N,P1,10000000,2024-03,2024", lines[1])
}

func TestFileName(t *testing.T) {
	first := FileName()
	second := FileName()

	assert.Regexp(t, `^dados_exportados_[0-9a-z]{12}\.csv$`, first)
	assert.NotEqual(t, first, second)
}
