package handlers

import (
	"net/http"
)

// Health reports liveness plus which model the inference service carries and
// the compute device it runs on.
func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]string{
		"status": "ok",
		"model":  a.Engine.Model(),
		"device": a.Engine.Device(r.Context()),
	})
}
