// Package s3source carrega o dataset de vendas de um objeto CSV no S3 (ou endpoint compatível).
package s3source

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"

	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/internal/domain"
	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/internal/usecases/ingesting"
)

// ObjectGetter é o subconjunto do cliente S3 usado pela fonte
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// Source implementa ingesting.Source lendo um único objeto
type Source struct {
	client ObjectGetter
	bucket string
	key    string
}

func New(client ObjectGetter, bucket, key string) *Source {
	return &Source{client: client, bucket: bucket, key: key}
}

// NewFromConfig usa a configuração padrão da AWS (credenciais do ambiente) na região informada
func NewFromConfig(ctx context.Context, region, bucket, key string) (*Source, error) {
	opts := []func(*awsconfig.LoadOptions) error{}
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao carregar configuração da AWS")
	}

	return New(s3.NewFromConfig(cfg), bucket, key), nil
}

func (s *Source) Name() string {
	return fmt.Sprintf("s3://%s/%s", s.bucket, s.key)
}

func (s *Source) Records(ctx context.Context) ([]domain.SalesRecord, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		return nil, &ingesting.IngestError{Err: ingesting.ErrSourceUnavailable, Source: s.Name(), Details: err.Error()}
	}
	defer out.Body.Close()

	return ingesting.ParseCSV(s.Name(), out.Body)
}

var _ ingesting.Source = (*Source)(nil)
