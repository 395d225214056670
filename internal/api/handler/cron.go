package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/pkg/apiErrors"
)

// CronJobTypeCacheWarmup é o único job disponível para execução manual
const CronJobTypeCacheWarmup = "cache-warmup"

// ManualJob é um job agendado que também pode ser disparado pela API
type ManualJob interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// CronJobServices contém os jobs que podem ser executados manualmente
type CronJobServices struct {
	CacheWarmupService ManualJob
}

func (s CronJobServices) byType(cronType string) (ManualJob, bool) {
	switch cronType {
	case CronJobTypeCacheWarmup:
		return s.CacheWarmupService, true
	default:
		return nil, false
	}
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		job, known := services.byType(cronType)
		if !known {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: cache-warmup", nil)
			return
		}

		if job == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de aquecimento de cache não disponível", nil)
			return
		}

		if !job.TriggerManualSync() {
			apiErrors.WriteError(w, apiErrors.ErrConflict, "Cron job já está em execução", map[string]any{"type": cronType})
			return
		}

		logrus.WithField("type", cronType).Info("Cron job iniciada manualmente")

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.CacheWarmupService != nil {
			status[CronJobTypeCacheWarmup] = services.CacheWarmupService.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}
