package main

import (
	"context"
	"flag"

	"github.com/sirupsen/logrus"

	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/infrastructure/database/postgres"
	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/infrastructure/repository"
	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/internal/config"
	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/internal/usecases/ingesting"
	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/pkg/log"
)

// Importa um CSV de vendas para a tabela usada quando DATA_SOURCE=postgres
func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	log.Setup(cfg.App.LogLevel)

	input := flag.String("input", cfg.Data.CSVPath, "CSV de origem")
	table := flag.String("table", cfg.Data.PostgresTable, "tabela de destino")
	flag.Parse()

	ctx := context.Background()

	// Valida o arquivo inteiro antes de abrir a conexão
	records, err := ingesting.NewFileSource(*input).Records(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao ler o CSV de origem")
	}

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	repo := repository.NewSalesRepository(conn, *table)
	if err := repo.EnsureTable(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao preparar a tabela de vendas")
	}

	inserted, err := repo.InsertBatch(ctx, records)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao importar vendas")
	}

	logrus.WithFields(logrus.Fields{
		"input":    *input,
		"table":    *table,
		"inserted": inserted,
	}).Info("Importação concluída")
}
