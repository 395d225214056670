package ingesting

import (
	"context"
	"errors"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/internal/domain"
)

// Load lê a fonte, valida os registros e monta o SalesStore imutável.
// Qualquer erro aqui impede a aplicação de subir.
func Load(ctx context.Context, src Source) (*domain.SalesStore, error) {
	start := time.Now()

	records, err := src.Records(ctx)
	if err != nil {
		var ingestErr *IngestError
		if errors.As(err, &ingestErr) {
			return nil, err
		}

		return nil, &IngestError{
			Err:     ErrSourceUnavailable,
			Source:  src.Name(),
			Details: pkgerrors.Wrap(err, "falha ao ler registros").Error(),
		}
	}

	store := domain.NewSalesStore(records)

	fields := logrus.Fields{
		"source":      src.Name(),
		"records":     store.Len(),
		"categories":  len(store.Categories()),
		"regions":     len(store.Regions()),
		"duration_ms": time.Since(start).Milliseconds(),
	}
	if minDate, maxDate, ok := store.DateRange(); ok {
		fields["min_date"] = minDate.Format(time.DateOnly)
		fields["max_date"] = maxDate.Format(time.DateOnly)
	} else {
		logrus.WithField("source", src.Name()).Warn("Dataset carregado sem nenhum registro")
	}

	logrus.WithFields(fields).Info("Dataset de vendas carregado")

	return store, nil
}
