package http

import (
	"context"
	"net/http"
	"time"

	"github.com/tuanvumaihuynh/product-catalog/internal/apperr"
)

const healthCheckTimeout = 2 * time.Second

type healthHandler struct {
	*Service
}

func (h healthHandler) healthz(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	if ok, err := h.healthChecker.IsHealthy(ctx); !ok || err != nil {
		return apperr.UnavailableErr.WrapParent(err)
	}

	h.writeJSON(w, r, http.StatusOK, statusOK)
	return nil
}
