package handlers

import (
	"net/http"
	"time"

	applog "kalyx/internal/log"
)

type healthResponse struct {
	Status string    `json:"status"`
	Time   time.Time `json:"time"`
}

// Health reports readiness for infrastructure probes. When a catalog
// store is configured the probe pings it, so a lost database connection
// flips the status to degraded.
func Health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	applog.Debug(ctx, "health check requested", "method", r.Method)

	resp := healthResponse{
		Status: "ok",
		Time:   time.Now().UTC(),
	}
	status := http.StatusOK

	if database != nil {
		sqlDB, err := database.DB()
		if err == nil {
			err = sqlDB.PingContext(ctx)
		}
		if err != nil {
			applog.Error(ctx, "health check: catalog store unreachable", "error", err)
			resp.Status = "degraded"
			status = http.StatusServiceUnavailable
		}
	}

	writeJSON(w, status, resp)
}
