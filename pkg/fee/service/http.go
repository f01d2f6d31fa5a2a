package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/swap-fee-watcher/pkg/app/errors"
	apphttp "github.com/chainsafe/swap-fee-watcher/pkg/app/http"
)

const maxBodyBytes = 1 << 20

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service      Service
	maxBatchSize int
	logger       *zap.Logger
}

// RegisterRoutes registers the fee query endpoints on the given chi router
func RegisterRoutes(r chi.Router, service Service, maxBatchSize int, logger *zap.Logger) {
	h := &HTTP{
		service:      service,
		maxBatchSize: maxBatchSize,
		logger:       logger,
	}

	// the batch endpoint reads a JSON body on both GET and POST
	r.Get("/tx_fee", apphttp.HandleError(h.batchFees))
	r.Post("/tx_fee", apphttp.HandleError(h.batchFees))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/fees/{tx_hash}", apphttp.HandleError(h.getFee))
		r.Get("/swaps/{tx_hash}/price", apphttp.HandleError(h.getSwapPrice))
		r.Get("/prices/{symbol}", apphttp.HandleError(h.getSpotPrice))
	})
}

func (h *HTTP) batchFees(w http.ResponseWriter, r *http.Request) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return apperrors.BadRequestError(err, "failed to read request")
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return apperrors.BadRequestError(nil, "request body required")
	}

	var hashes []string
	if err := json.Unmarshal(body, &hashes); err != nil {
		return apperrors.BadRequestError(err, "invalid JSON")
	}
	if h.maxBatchSize > 0 && len(hashes) > h.maxBatchSize {
		return apperrors.BadRequestError(nil, fmt.Sprintf("at most %d transaction hashes per request", h.maxBatchSize))
	}

	apphttp.WriteJSON(w, http.StatusOK, h.service.ResolveBatch(r.Context(), hashes))
	return nil
}

func (h *HTTP) getFee(w http.ResponseWriter, r *http.Request) error {
	resp, err := h.service.ResolveFee(r.Context(), chi.URLParam(r, "tx_hash"))
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) getSwapPrice(w http.ResponseWriter, r *http.Request) error {
	resp, err := h.service.SwapPrice(r.Context(), chi.URLParam(r, "tx_hash"))
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) getSpotPrice(w http.ResponseWriter, r *http.Request) error {
	resp, err := h.service.SpotPrice(r.Context(), chi.URLParam(r, "symbol"))
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}
