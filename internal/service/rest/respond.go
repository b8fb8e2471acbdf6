package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

const (
	defaultListLimit = 10
	maxListLimit     = 100
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeErrorMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// writeError переводит доменные ошибки в HTTP-статусы. Внутренние детали
// наружу не отдаются.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case domain.IsValidation(err):
		writeErrorMessage(w, http.StatusBadRequest, flatten(err))
	case domain.IsReferential(err):
		writeErrorMessage(w, http.StatusBadRequest, domain.ErrProductsNotFound.Error())
	case domain.IsNotFound(err):
		writeErrorMessage(w, http.StatusNotFound, err.Error())
	case domain.IsStoreUnavailable(err):
		writeErrorMessage(w, http.StatusServiceUnavailable, domain.ErrStoreUnavailable.Error())
	default:
		writeErrorMessage(w, http.StatusInternalServerError, "internal error")
	}
}

// parseListParams читает limit/offset с дефолтами 10/0 и границами [1,100] / >=0.
func parseListParams(r *http.Request) (limit, offset int, err error) {
	limit = defaultListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > maxListLimit {
			return 0, 0, errors.New("limit must be an integer between 1 and 100")
		}
	}

	if raw := r.URL.Query().Get("offset"); raw != "" {
		offset, err = strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return 0, 0, errors.New("offset must be a non-negative integer")
		}
	}

	return limit, offset, nil
}

func joinErrors(errs []error) string {
	builder := strings.Builder{}
	for i, err := range errs {
		builder.WriteString(err.Error())
		if i < len(errs)-1 {
			builder.WriteString("; ")
		}
	}
	return builder.String()
}

// flatten приводит ошибку (в том числе errors.Join) к одной строке.
func flatten(err error) string {
	return strings.ReplaceAll(err.Error(), "\n", "; ")
}
