package cache

import (
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/internal/domain"
)

// payloadVersion muda sempre que o formato serializado mudar
const payloadVersion = 1

// ErrPayloadVersion indica um payload gravado por outra versão do formato
var ErrPayloadVersion = errors.New("versão de payload de cache incompatível")

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type filterPayload struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Category  string `json:"category"`
	Region    string `json:"region"`
}

type recordPayload struct {
	Date     string  `json:"data"`
	Value    float64 `json:"valor"`
	Quantity int     `json:"quantidade"`
	Category string  `json:"categoria"`
	Region   string  `json:"regiao"`
	Product  string  `json:"produto"`
	Revenue  float64 `json:"receita"`
	Month    string  `json:"mes"`
	Year     int     `json:"ano"`
}

type viewPayload struct {
	Version int             `json:"v"`
	Filters filterPayload   `json:"filters"`
	Records []recordPayload `json:"records"`
}

// Encode serializa a visão com datas em RFC3339Nano UTC
func Encode(view domain.FilteredView) ([]byte, error) {
	payload := viewPayload{
		Version: payloadVersion,
		Filters: filterPayload{
			StartDate: formatTime(view.Spec.StartDate),
			EndDate:   formatTime(view.Spec.EndDate),
			Category:  view.Spec.Category,
			Region:    view.Spec.Region,
		},
		Records: make([]recordPayload, len(view.Records)),
	}

	for i, r := range view.Records {
		payload.Records[i] = recordPayload{
			Date:     formatTime(r.Date),
			Value:    r.Value,
			Quantity: r.Quantity,
			Category: r.Category,
			Region:   r.Region,
			Product:  r.Product,
			Revenue:  r.Revenue,
			Month:    r.Month,
			Year:     r.Year,
		}
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "falha ao serializar visão")
	}

	return data, nil
}

// Decode reconstrói a visão serializada por Encode
func Decode(data []byte) (domain.FilteredView, error) {
	var payload viewPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return domain.FilteredView{}, errors.Wrap(err, "falha ao desserializar visão")
	}

	if payload.Version != payloadVersion {
		return domain.FilteredView{}, errors.Wrapf(ErrPayloadVersion, "esperada %d, recebida %d", payloadVersion, payload.Version)
	}

	start, err := parseTime(payload.Filters.StartDate)
	if err != nil {
		return domain.FilteredView{}, err
	}
	end, err := parseTime(payload.Filters.EndDate)
	if err != nil {
		return domain.FilteredView{}, err
	}

	view := domain.FilteredView{
		Spec: domain.FilterSpec{
			StartDate: start,
			EndDate:   end,
			Category:  payload.Filters.Category,
			Region:    payload.Filters.Region,
		},
		Records: make([]domain.SalesRecord, len(payload.Records)),
	}

	for i, r := range payload.Records {
		date, err := parseTime(r.Date)
		if err != nil {
			return domain.FilteredView{}, errors.Wrapf(err, "registro %d", i)
		}

		view.Records[i] = domain.SalesRecord{
			Date:     date,
			Value:    r.Value,
			Quantity: r.Quantity,
			Category: r.Category,
			Region:   r.Region,
			Product:  r.Product,
			Revenue:  r.Revenue,
			Month:    r.Month,
			Year:     r.Year,
		}
	}

	return view, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "data inválida no payload: %q", value)
	}

	return t.UTC(), nil
}
