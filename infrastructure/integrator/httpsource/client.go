package httpsource

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/internal/domain"
	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/internal/usecases/ingesting"
)

const DefaultTimeout = 60 * time.Second

// Source baixa o dataset em CSV de uma URL (ex: export de outro sistema)
type Source struct {
	httpClient *http.Client
	endpoint   *url.URL
	token      string
}

// NewSource cria a fonte. token vazio envia a requisição sem Authorization.
func NewSource(rawURL, token string, timeout time.Duration) (*Source, error) {
	endpoint, err := url.Parse(rawURL)
	if err != nil {
		// *url.Error repete a URL bruta, com senha
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return nil, errors.Wrap(err, "URL do dataset inválida")
	}
	if endpoint.Scheme == "" || endpoint.Host == "" {
		return nil, errors.Errorf("URL do dataset inválida: %q", endpoint.Redacted())
	}

	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Source{
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   endpoint,
		token:      token,
	}, nil
}

// Name identifica a fonte nos logs e erros, sem a senha da URL
func (s *Source) Name() string {
	return s.endpoint.Redacted()
}

func (s *Source) Records(ctx context.Context) ([]domain.SalesRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint.String(), nil)
	if err != nil {
		return nil, s.unavailable(errors.Wrap(err, "erro ao criar a requisição"))
	}

	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	req.Header.Set("Accept", "text/csv")

	logrus.WithField("source", s.Name()).Debug("Baixando dataset de vendas")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, s.unavailable(errors.Wrap(err, "erro ao executar a requisição"))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, s.unavailable(errors.Errorf("requisição falhou com status: %s", resp.Status))
	}

	return ingesting.ParseCSV(s.Name(), resp.Body)
}

func (s *Source) unavailable(cause error) error {
	return &ingesting.IngestError{Err: ingesting.ErrSourceUnavailable, Source: s.Name(), Details: cause.Error()}
}

var _ ingesting.Source = (*Source)(nil)
