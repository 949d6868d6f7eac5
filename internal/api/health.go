package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"infinite-experiment/themecookie/internal/themecookie"
	"infinite-experiment/themecookie/internal/ui"
)

type ServiceStatus struct {
	Status  string `json:"status"`
	Details string `json:"details"`
}

type HealthCheckResponse struct {
	Status   string                   `json:"status"`
	Uptime   string                   `json:"uptime"`
	Services map[string]ServiceStatus `json:"services"`
}

// HealthCheckHandler handles GET /healthCheck
func HealthCheckHandler(resources *themecookie.Resources, sessions *ui.SessionStore, upSince time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		services := make(map[string]ServiceStatus)

		// Check theme resources
		themeStatus := "ok"
		themes, err := resources.Themes()
		themeDetails := fmt.Sprintf("%d themes available", len(themes))
		if err != nil {
			themeStatus = "down"
			themeDetails = err.Error()
		} else if len(themes) == 0 {
			themeStatus = "down"
			themeDetails = "no themes found under " + resources.Root()
		}
		services["themes"] = ServiceStatus{
			Status:  themeStatus,
			Details: themeDetails,
		}

		services["sessions"] = ServiceStatus{
			Status:  "ok",
			Details: fmt.Sprintf("%d active sessions", sessions.Count()),
		}

		overallStatus := "ok"
		for _, svc := range services {
			if svc.Status != "ok" {
				overallStatus = "down"
				break
			}
		}

		uptime := time.Since(upSince).Round(time.Second).String()

		resp := HealthCheckResponse{
			Services: services,
			Status:   overallStatus,
			Uptime:   uptime,
		}
		w.Header().Set("Content-Type", "application/json")
		if overallStatus != "ok" {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}
