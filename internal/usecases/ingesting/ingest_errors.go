package ingesting

import (
	"errors"
	"fmt"
	"strings"
)

// Erros de ingestão. Todos são fatais para a inicialização.
var (
	ErrMissingColumn     = errors.New("coluna obrigatória ausente")
	ErrInvalidDate       = errors.New("data inválida")
	ErrInvalidNumber     = errors.New("número inválido")
	ErrNonPositive       = errors.New("valor deve ser positivo")
	ErrEmptyField        = errors.New("campo obrigatório vazio")
	ErrMalformedRow      = errors.New("linha malformada")
	ErrSourceUnavailable = errors.New("fonte de dados indisponível")
)

// IngestError descreve onde a carga do dataset falhou
type IngestError struct {
	Err     error  // Erro base
	Source  string // Nome da fonte (arquivo, objeto S3, tabela)
	Line    int    // Linha do registro, quando aplicável
	Column  string // Coluna envolvida, quando aplicável
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *IngestError) Error() string {
	parts := []string{"erro de ingestão"}
	if e.Source != "" {
		parts = append(parts, e.Source)
	}
	if e.Line > 0 {
		parts = append(parts, fmt.Sprintf("linha %d", e.Line))
	}
	if e.Column != "" {
		parts = append(parts, fmt.Sprintf("coluna %q", e.Column))
	}

	msg := strings.Join(parts, ": ") + ": " + e.Err.Error()
	if e.Details != "" {
		msg += ": " + e.Details
	}

	return msg
}

// Unwrap retorna o erro subjacente
func (e *IngestError) Unwrap() error {
	return e.Err
}

func newFieldError(err error, source string, line int, column, details string) *IngestError {
	return &IngestError{
		Err:     err,
		Source:  source,
		Line:    line,
		Column:  column,
		Details: details,
	}
}
