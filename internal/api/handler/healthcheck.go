package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

const healthcheckTimeout = time.Second

// Pinger é qualquer dependência que responde a um ping (o cache, por exemplo)
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthcheckResponse struct {
	Status string    `json:"status"`
	Time   time.Time `json:"time"`
	Cache  string    `json:"cache"`
}

// HealthcheckHandler responde 200 enquanto o processo estiver de pé.
// O cache é opcional, então sua indisponibilidade só aparece no corpo.
func HealthcheckHandler(cache Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response := HealthcheckResponse{
			Status: "ok",
			Time:   time.Now(),
			Cache:  "disabled",
		}

		if cache != nil {
			ctx, cancel := context.WithTimeout(r.Context(), healthcheckTimeout)
			defer cancel()

			if err := cache.Ping(ctx); err != nil {
				logrus.WithError(err).Warn("healthcheck: cache indisponível")
				response.Cache = "unavailable"
			} else {
				response.Cache = "ok"
			}
		}

		writeJSON(w, r, http.StatusOK, response)
	})
}
