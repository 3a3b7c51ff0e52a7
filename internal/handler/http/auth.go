package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Lysande2902/Numeros/internal/logger"
	"github.com/Lysande2902/Numeros/internal/service"
	"github.com/Lysande2902/Numeros/internal/utils"
	"github.com/Lysande2902/Numeros/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	loginResponse, err := h.services.AuthService.Login(ctx, credentials.Username, credentials.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingCredentials):
			log.Err(err).Msg("missing credentials")
			h.writeError(w, service.ErrMissingCredentials.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Err(err).Msg("invalid credentials")
			h.writeError(w, service.ErrInvalidCredentials.Error(), http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during login")
			h.writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Str("username", loginResponse.Username).Msg("user successfully logged in")

	if _, err := utils.WriteJSON(w, loginResponse, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing login response")
	}
}
