package http

import (
	"net/http"
	"time"

	"github.com/Lysande2902/Numeros/internal/logger"
	"github.com/Lysande2902/Numeros/internal/utils"
	"github.com/Lysande2902/Numeros/models"
)

// hostInfo reports the host, scheme, and configured environment of the
// running instance. It is intentionally unauthenticated and intended for
// quick connectivity diagnostics.
func (h *Handler) hostInfo(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}

	info := models.HostInfo{
		Host:        r.Host,
		Scheme:      scheme,
		Environment: h.environment,
		Timestamp:   time.Now(),
	}

	if _, err := utils.WriteJSON(w, info, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing host info response")
	}
}
