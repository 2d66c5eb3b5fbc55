package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/osse101/GiveawayBot_Go/internal/database"
	"github.com/osse101/GiveawayBot_Go/internal/logger"
)

// readinessTimeout bounds the database ping behind /readyz
const readinessTimeout = 2 * time.Second

// GatewayStatus reports whether the chat gateway connection is up
type GatewayStatus interface {
	Connected() bool
}

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message,omitempty"`
	Uptime    string `json:"uptime,omitempty"`
	Connected *bool  `json:"connected,omitempty"`
	Version   string `json:"version,omitempty"`
}

// HandleHealthz is the liveness check. It stays 200 while the process runs and reports
// the gateway state so operators can see a bot that lost its connection.
func HandleHealthz(gateway GatewayStatus, started time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := HealthResponse{
			Status: StatusOK,
			Uptime: time.Since(started).Truncate(time.Second).String(),
		}
		if gateway != nil {
			connected := gateway.Connected()
			response.Connected = &connected
			if !connected {
				response.Status = StatusDegraded
				response.Message = MsgGatewayDisconnected
			}
		}
		writeJSON(w, http.StatusOK, response)
	}
}

// HandleReadyz provides a readiness check that validates database connectivity
func HandleReadyz(dbPool database.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		if err := dbPool.Ping(ctx); err != nil {
			logger.FromContext(ctx).Error(LogMsgReadinessFailed, "error", err)
			writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:  StatusUnavailable,
				Message: MsgDatabaseUnavailable,
			})
			return
		}

		writeJSON(w, http.StatusOK, HealthResponse{Status: StatusOK})
	}
}

// HandleVersion reports the running build version
func HandleVersion(version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, HealthResponse{Status: StatusOK, Version: version})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set(HeaderContentType, HeaderValueJSON)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
