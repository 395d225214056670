package main

import (
	"bufio"
	"flag"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/internal/domain"
	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/internal/usecases/exporting"
	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/internal/usecases/generating"
	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/pkg/log"
)

func main() {
	defaults := generating.DefaultOptions()

	output := flag.String("output", "dados_vendas.csv", "arquivo CSV de saída")
	records := flag.Int("records", defaults.Records, "quantidade de vendas geradas")
	seed := flag.Int64("seed", defaults.Seed, "semente do gerador")
	start := flag.String("start", defaults.Start.Format(time.DateOnly), "data da primeira venda (AAAA-MM-DD)")
	flag.Parse()

	log.Setup(os.Getenv("LOG_LEVEL"))

	startDate, err := time.Parse(time.DateOnly, *start)
	if err != nil {
		logrus.WithError(err).Fatal("Data inicial inválida")
	}

	startTime := time.Now()
	sales := domain.Derive(generating.Generate(generating.Options{
		Records: *records,
		Start:   startDate,
		Seed:    *seed,
	}))

	file, err := os.Create(*output)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao criar arquivo de saída")
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	if err := exporting.WriteCSV(writer, domain.FilteredView{Records: sales}); err != nil {
		logrus.WithError(err).Fatal("Erro ao escrever CSV")
	}
	if err := writer.Flush(); err != nil {
		logrus.WithError(err).Fatal("Erro ao gravar CSV")
	}

	logrus.WithFields(logrus.Fields{
		"output":      *output,
		"records":     len(sales),
		"seed":        *seed,
		"duration_ms": time.Since(startTime).Milliseconds(),
	}).Infof("%d registros foram gerados e salvos em %s", len(sales), *output)
}
