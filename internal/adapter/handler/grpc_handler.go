package handler

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/vqhuy/nft-marketplace/internal/adapter/handler/pb"
	"github.com/vqhuy/nft-marketplace/internal/core/domain"
	"github.com/vqhuy/nft-marketplace/internal/core/service"
)

type GRPCHandler struct {
	pb.UnimplementedMarketplaceServer
	market     *service.MarketService
	settlement *service.SettlementService
}

func NewGRPCHandler(market *service.MarketService, settlement *service.SettlementService) *GRPCHandler {
	return &GRPCHandler{market: market, settlement: settlement}
}

func (h *GRPCHandler) Purchase(ctx context.Context, req *pb.PurchaseRequest) (*pb.PurchaseResponse, error) {
	if req.GetRequestId() == "" || req.GetBuyer() == "" {
		return nil, status.Error(codes.InvalidArgument, "request_id and buyer are required")
	}

	key := domain.AssetKey{Contract: req.GetContract(), TokenID: req.GetTokenId()}

	receipt, err := h.settlement.Purchase(ctx, key, req.GetBuyer(), req.GetPaidAmount(), req.GetRequestId())
	if err != nil {
		message := "internal error"
		switch {
		case errors.Is(err, domain.ErrNotListed):
			message = "asset not listed"
		case errors.Is(err, domain.ErrInsufficientPayment):
			message = "insufficient payment"
		case errors.Is(err, domain.ErrDuplicateRequest):
			message = "duplicate request"
		}
		return &pb.PurchaseResponse{
			Success: false,
			Message: message,
		}, nil
	}

	return &pb.PurchaseResponse{
		Success:      true,
		Message:      "sale settled",
		ReceiptId:    receipt.ID,
		SellerAmount: receipt.SellerAmount,
		FeeAmount:    receipt.FeeAmount,
		Refund:       receipt.Refund,
	}, nil
}

func (h *GRPCHandler) GetListing(ctx context.Context, req *pb.GetListingRequest) (*pb.GetListingResponse, error) {
	key := domain.AssetKey{Contract: req.GetContract(), TokenID: req.GetTokenId()}

	listing, err := h.market.GetListing(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrNotListed) {
			return &pb.GetListingResponse{Found: false}, nil
		}
		return nil, err
	}

	return &pb.GetListingResponse{
		Found:  true,
		Price:  listing.Price,
		Seller: listing.Seller,
	}, nil
}
