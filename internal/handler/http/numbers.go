// SPDX-License-Identifier: Apache-2.0

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Lysande2902/Numeros/internal/logger"
	"github.com/Lysande2902/Numeros/internal/service"
	"github.com/Lysande2902/Numeros/internal/store"
	"github.com/Lysande2902/Numeros/internal/utils"
	"github.com/Lysande2902/Numeros/models"
)

func (h *Handler) listNumbers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	page, pageSize := paginationParams(r)

	response, err := h.services.NumberService.List(ctx, page, pageSize)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during listing numbers")
		h.writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if _, err := utils.WriteJSON(w, response, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing numbers list response")
	}
}

func (h *Handler) getNumber(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := idFromRequest(r)
	if err != nil {
		log.Err(err).Send()
		h.writeError(w, ErrInvalidID.Error(), http.StatusBadRequest)
		return
	}

	number, err := h.services.NumberService.Get(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNumberNotFound):
			log.Err(err).Int64("id", id).Msg("number not found")
			h.writeError(w, store.ErrNumberNotFound.Error(), http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during getting number")
			h.writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	if _, err := utils.WriteJSON(w, number, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing number response")
	}
}

func (h *Handler) createNumber(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var number models.Number
	if err := json.NewDecoder(r.Body).Decode(&number); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.NumberService.Create(ctx, number.Value)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNegativeNumber):
			log.Err(err).Int64("value", number.Value).Msg("negative value rejected")
			h.writeError(w, service.ErrNegativeNumber.Error(), http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during creating number")
			h.writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Location", fmt.Sprintf("/api/v1/numero/%d", created.ID))
	if _, err := utils.WriteJSON(w, created, http.StatusCreated); err != nil {
		log.Err(err).Msg("error writing created number response")
	}
}

func (h *Handler) updateNumber(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := idFromRequest(r)
	if err != nil {
		log.Err(err).Send()
		h.writeError(w, ErrInvalidID.Error(), http.StatusBadRequest)
		return
	}

	var number models.Number
	if err := json.NewDecoder(r.Body).Decode(&number); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.NumberService.Update(ctx, id, number); err != nil {
		switch {
		case errors.Is(err, service.ErrIDMismatch):
			log.Err(err).Int64("path_id", id).Int64("body_id", number.ID).Msg("id mismatch")
			h.writeError(w, service.ErrIDMismatch.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrNegativeNumber):
			log.Err(err).Int64("value", number.Value).Msg("negative value rejected")
			h.writeError(w, service.ErrNegativeNumber.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrNumberNotFound), errors.Is(err, store.ErrUpdateConflict):
			log.Err(err).Int64("id", id).Msg("number not found")
			h.writeError(w, store.ErrNumberNotFound.Error(), http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during updating number")
			h.writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteNumber(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := idFromRequest(r)
	if err != nil {
		log.Err(err).Send()
		h.writeError(w, ErrInvalidID.Error(), http.StatusBadRequest)
		return
	}

	if err := h.services.NumberService.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, store.ErrNumberNotFound):
			log.Err(err).Int64("id", id).Msg("number not found")
			h.writeError(w, store.ErrNumberNotFound.Error(), http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during deleting number")
			h.writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}

// idFromRequest parses the {id} path segment as a positive integer.
func idFromRequest(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		return 0, ErrInvalidID
	}

	return id, nil
}

// paginationParams reads the optional `page` and `pageSize` query parameters.
// Absent or unparsable values come back as zero; the service layer clamps
// them to the supported window.
func paginationParams(r *http.Request) (page, pageSize int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ = strconv.Atoi(r.URL.Query().Get("pageSize"))

	return page, pageSize
}
