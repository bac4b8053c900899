package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/weathertrigger-console/internal/api/handler/router"
	"github.com/vfg2006/weathertrigger-console/pkg/apiErrors"
)

// Tipos de cron job aceitos em /v1/cron/:type/run
const (
	CronJobTypeCacheCleanup = "cache-cleanup"
	CronJobTypeAll          = "all"
)

// CronJobServices contém os agendadores que podem ser executados manualmente
type CronJobServices struct {
	CacheCleanup CronJob
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := router.Param(r, "type")

		logrus.WithField("type", cronType).Info("Execução manual de cron job solicitada")

		switch cronType {
		case CronJobTypeCacheCleanup, CronJobTypeAll:
			if services.CacheCleanup == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Cache cleanup job is not available", nil)
				return
			}
			services.CacheCleanup.TriggerManualRun()

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid cron job type. Accepted values: cache-cleanup, all", nil)
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job started",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.CacheCleanup != nil {
			status[CronJobTypeCacheCleanup] = services.CacheCleanup.GetStatus()
		}
		writeJSON(w, http.StatusOK, status)
	}
}
