package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vqhuy/nft-marketplace/internal/core/domain"
	"github.com/vqhuy/nft-marketplace/internal/core/service"
)

type HTTPHandler struct {
	market     *service.MarketService
	settlement *service.SettlementService
}

func NewHTTPHandler(market *service.MarketService, settlement *service.SettlementService) *HTTPHandler {
	return &HTTPHandler{market: market, settlement: settlement}
}

func (h *HTTPHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/health", h.HealthCheck)
	mux.HandleFunc("/api/list", h.List)
	mux.HandleFunc("/api/update-price", h.UpdatePrice)
	mux.HandleFunc("/api/remove", h.Remove)
	mux.HandleFunc("/api/purchase", h.Purchase)
	mux.HandleFunc("/api/listing", h.GetListing)
	mux.HandleFunc("/api/fee", h.SetFee)
}

type listRequest struct {
	Contract string `json:"contract"`
	TokenID  string `json:"token_id"`
	Price    uint64 `json:"price"`
	Caller   string `json:"caller"`
}

type mutateRequest struct {
	Contract string `json:"contract"`
	TokenID  string `json:"token_id"`
	Price    uint64 `json:"price,omitempty"`
	Caller   string `json:"caller"`
}

type purchaseRequest struct {
	RequestID  string `json:"request_id"`
	Contract   string `json:"contract"`
	TokenID    string `json:"token_id"`
	Buyer      string `json:"buyer"`
	PaidAmount uint64 `json:"paid_amount"`
}

type feeRequest struct {
	Percentage uint64 `json:"percentage"`
	Caller     string `json:"caller"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req listRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if req.Contract == "" || req.TokenID == "" || req.Caller == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing required fields"})
		return
	}

	key := domain.AssetKey{Contract: req.Contract, TokenID: req.TokenID}
	listing, err := h.market.List(r.Context(), key, req.Price, req.Caller)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, listingPayload(listing))
}

func (h *HTTPHandler) UpdatePrice(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req mutateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	key := domain.AssetKey{Contract: req.Contract, TokenID: req.TokenID}
	if err := h.market.UpdatePrice(r.Context(), key, req.Price, req.Caller); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *HTTPHandler) Remove(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req mutateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	key := domain.AssetKey{Contract: req.Contract, TokenID: req.TokenID}
	if err := h.market.Remove(r.Context(), key, req.Caller); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *HTTPHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req purchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if req.RequestID == "" || req.Contract == "" || req.TokenID == "" || req.Buyer == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing required fields"})
		return
	}

	key := domain.AssetKey{Contract: req.Contract, TokenID: req.TokenID}
	receipt, err := h.settlement.Purchase(r.Context(), key, req.Buyer, req.PaidAmount, req.RequestID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"receipt_id":    receipt.ID,
		"buyer":         receipt.Buyer,
		"seller":        receipt.Seller,
		"price":         receipt.Price,
		"seller_amount": receipt.SellerAmount,
		"fee_amount":    receipt.FeeAmount,
		"refund":        receipt.Refund,
	})
}

func (h *HTTPHandler) GetListing(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	key := domain.AssetKey{
		Contract: r.URL.Query().Get("contract"),
		TokenID:  r.URL.Query().Get("token_id"),
	}
	listing, err := h.market.GetListing(r.Context(), key)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, listingPayload(listing))
}

func (h *HTTPHandler) SetFee(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req feeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	if err := h.market.SetFeePercentage(req.Percentage, req.Caller); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *HTTPHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func listingPayload(listing domain.Listing) map[string]interface{} {
	return map[string]interface{}{
		"contract": listing.Key.Contract,
		"token_id": listing.Key.TokenID,
		"price":    listing.Price,
		"seller":   listing.Seller,
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, domain.ErrNotListed):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrAlreadyListed):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrDuplicateRequest):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrNotAuthorized), errors.Is(err, domain.ErrNotAssetOwner):
		status = http.StatusForbidden
	case errors.Is(err, domain.ErrInvalidPrice), errors.Is(err, domain.ErrInvalidFeePercentage):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrInsufficientPayment):
		status = http.StatusPaymentRequired
	}

	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
