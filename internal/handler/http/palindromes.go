// SPDX-License-Identifier: Apache-2.0

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/Lysande2902/Numeros/internal/logger"
	"github.com/Lysande2902/Numeros/internal/service"
	"github.com/Lysande2902/Numeros/internal/store"
	"github.com/Lysande2902/Numeros/internal/utils"
	"github.com/Lysande2902/Numeros/models"
)

func (h *Handler) listPalindromes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	page, pageSize := paginationParams(r)

	response, err := h.services.PalindromeService.List(ctx, page, pageSize)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during listing palindromes")
		h.writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if _, err := utils.WriteJSON(w, response, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing palindromes list response")
	}
}

func (h *Handler) getPalindrome(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := idFromRequest(r)
	if err != nil {
		log.Err(err).Send()
		h.writeError(w, ErrInvalidID.Error(), http.StatusBadRequest)
		return
	}

	palindrome, err := h.services.PalindromeService.Get(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrPalindromeNotFound):
			log.Err(err).Int64("id", id).Msg("palindrome not found")
			h.writeError(w, store.ErrPalindromeNotFound.Error(), http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during getting palindrome")
			h.writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	if _, err := utils.WriteJSON(w, palindrome, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing palindrome response")
	}
}

func (h *Handler) createPalindrome(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.PalindromeRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.PalindromeService.Create(ctx, request.Text)
	if err != nil {
		switch {
		case isTextValidationErr(err):
			log.Err(err).Str("text", request.Text).Msg("text rejected")
			h.writeError(w, err.Error(), http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during creating palindrome")
			h.writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Location", fmt.Sprintf("/api/v1/palindromo/%d", created.ID))
	if _, err := utils.WriteJSON(w, created, http.StatusCreated); err != nil {
		log.Err(err).Msg("error writing created palindrome response")
	}
}

func (h *Handler) updatePalindrome(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := idFromRequest(r)
	if err != nil {
		log.Err(err).Send()
		h.writeError(w, ErrInvalidID.Error(), http.StatusBadRequest)
		return
	}

	var request models.PalindromeRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.PalindromeService.Update(ctx, id, request.Text); err != nil {
		switch {
		case errors.Is(err, store.ErrPalindromeNotFound):
			log.Err(err).Int64("id", id).Msg("palindrome not found")
			h.writeError(w, store.ErrPalindromeNotFound.Error(), http.StatusNotFound)
			return
		case isTextValidationErr(err):
			log.Err(err).Str("text", request.Text).Msg("text rejected")
			h.writeError(w, err.Error(), http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during updating palindrome")
			h.writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deletePalindrome(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := idFromRequest(r)
	if err != nil {
		log.Err(err).Send()
		h.writeError(w, ErrInvalidID.Error(), http.StatusBadRequest)
		return
	}

	if err := h.services.PalindromeService.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, store.ErrPalindromeNotFound):
			log.Err(err).Int64("id", id).Msg("palindrome not found")
			h.writeError(w, store.ErrPalindromeNotFound.Error(), http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during deleting palindrome")
			h.writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}

// isTextValidationErr reports whether err is one of the palindrome text
// validation sentinels, all of which map to HTTP 400.
func isTextValidationErr(err error) bool {
	return errors.Is(err, service.ErrEmptyText) ||
		errors.Is(err, service.ErrMultipleWords) ||
		errors.Is(err, service.ErrNotOnlyLetters)
}
