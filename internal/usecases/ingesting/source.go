package ingesting

import (
	"context"
	"io"
	"os"

	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/internal/domain"
)

// Source é qualquer origem capaz de produzir os registros brutos de vendas
// (arquivo local, objeto no S3, tabela no Postgres)
type Source interface {
	Name() string
	Records(ctx context.Context) ([]domain.SalesRecord, error)
}

// FileSource lê o dataset de um CSV no disco
type FileSource struct {
	Path string
}

// NewFileSource cria uma fonte para o arquivo informado
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

func (s *FileSource) Name() string {
	return s.Path
}

func (s *FileSource) Records(ctx context.Context) ([]domain.SalesRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(s.Path)
	if err != nil {
		return nil, &IngestError{Err: ErrSourceUnavailable, Source: s.Path, Details: err.Error()}
	}
	defer file.Close()

	return ParseCSV(s.Path, file)
}

// ReaderSource adapta um io.Reader já aberto, usado pelo S3 e pelos testes
type ReaderSource struct {
	SourceName string
	Reader     io.Reader
}

func (s *ReaderSource) Name() string {
	return s.SourceName
}

func (s *ReaderSource) Records(ctx context.Context) ([]domain.SalesRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return ParseCSV(s.SourceName, s.Reader)
}
