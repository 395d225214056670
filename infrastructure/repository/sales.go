package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/infrastructure/database/postgres"
	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/internal/domain"
	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/internal/usecases/ingesting"
)

// salesColumns segue o esquema bruto do dataset, na mesma ordem do CSV
var salesColumns = []string{
	ingesting.ColumnDate,
	ingesting.ColumnValue,
	ingesting.ColumnQuantity,
	ingesting.ColumnCategory,
	ingesting.ColumnRegion,
	ingesting.ColumnProduct,
}

// SalesRepository lê e grava o dataset de vendas em uma tabela do Postgres.
// Também é uma ingesting.Source, usada quando DATA_SOURCE=postgres.
type SalesRepository interface {
	ingesting.Source
	EnsureTable(ctx context.Context) error
	InsertBatch(ctx context.Context, records []domain.SalesRecord) (int64, error)
}

type salesRepository struct {
	conn  postgres.Conn
	table string
}

func NewSalesRepository(conn postgres.Conn, table string) SalesRepository {
	return &salesRepository{
		conn:  conn,
		table: table,
	}
}

func (r *salesRepository) Name() string {
	return "postgres:" + r.table
}

// Records lê a tabela inteira na ordem de inserção
func (r *salesRepository) Records(ctx context.Context) ([]domain.SalesRecord, error) {
	query, args, err := selectSalesQuery(r.table)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &ingesting.IngestError{Err: ingesting.ErrSourceUnavailable, Source: r.Name(), Details: err.Error()}
	}
	defer rows.Close()

	records := make([]domain.SalesRecord, 0)
	line := 0
	for rows.Next() {
		line++

		var record domain.SalesRecord
		var quantity int64
		if err := rows.Scan(&record.Date, &record.Value, &quantity, &record.Category, &record.Region, &record.Product); err != nil {
			return nil, &ingesting.IngestError{Err: ingesting.ErrMalformedRow, Source: r.Name(), Line: line, Details: err.Error()}
		}
		record.Date = record.Date.UTC()
		record.Quantity = int(quantity)

		if err := ingesting.ValidateRecord(r.Name(), line, record); err != nil {
			return nil, err
		}

		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, &ingesting.IngestError{Err: ingesting.ErrSourceUnavailable, Source: r.Name(), Line: line, Details: err.Error()}
	}

	return records, nil
}

// EnsureTable cria a tabela de vendas caso ainda não exista
func (r *salesRepository) EnsureTable(ctx context.Context) error {
	if _, err := r.conn.ExecContext(ctx, createSalesTableStatement(r.table)); err != nil {
		return errors.Wrapf(err, "erro ao criar a tabela %s", r.table)
	}

	return nil
}

// InsertBatch grava os registros em uma única transação usando COPY
func (r *salesRepository) InsertBatch(ctx context.Context, records []domain.SalesRecord) (int64, error) {
	startTime := time.Now()

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, pq.CopyIn(r.table, salesColumns...))
		if err != nil {
			return errors.Wrap(err, "erro ao preparar COPY")
		}
		defer stmt.Close()

		for i, record := range records {
			_, err := stmt.ExecContext(ctx,
				record.Date.UTC(),
				record.Value,
				record.Quantity,
				record.Category,
				record.Region,
				record.Product,
			)
			if err != nil {
				return errors.Wrapf(err, "erro ao copiar registro %d", i+1)
			}
		}

		// Exec sem argumentos finaliza o COPY
		if _, err := stmt.ExecContext(ctx); err != nil {
			return errors.Wrap(err, "erro ao finalizar COPY")
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	logrus.WithFields(logrus.Fields{
		"table":       r.table,
		"records":     len(records),
		"duration_ms": time.Since(startTime).Milliseconds(),
	}).Info("Registros de vendas gravados no PostgreSQL")

	return int64(len(records)), nil
}

func selectSalesQuery(table string) (string, []any, error) {
	return squirrel.
		Select(salesColumns...).
		From(pq.QuoteIdentifier(table)).
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func createSalesTableStatement(table string) string {
	return fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	id BIGSERIAL PRIMARY KEY,
	data TIMESTAMP NOT NULL,
	valor DOUBLE PRECISION NOT NULL CHECK (valor > 0),
	quantidade INTEGER NOT NULL CHECK (quantidade > 0),
	categoria TEXT NOT NULL,
	regiao TEXT NOT NULL,
	produto TEXT NOT NULL
)`, pq.QuoteIdentifier(table))
}
