package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vqhuy/nft-marketplace/internal/core/domain"
)

// MySQLAdapter keeps the durable mirror of marketplace state: active
// listings, settled sales and the append-only market event log. The
// in-memory registry stays authoritative; these rows exist for
// observability and post-restart inspection and are written
// asynchronously by the event workers.
type MySQLAdapter struct {
	db *sql.DB
}

func NewMySQLAdapter(db *sql.DB) *MySQLAdapter {
	return &MySQLAdapter{db: db}
}

func (m *MySQLAdapter) SaveListing(ctx context.Context, listing domain.Listing) error {
	_, err := m.db.ExecContext(ctx, `
		INSERT INTO listings (contract, token_id, price, seller, updated_at)
		VALUES (?, ?, ?, ?, NOW())
		ON DUPLICATE KEY UPDATE price = VALUES(price), updated_at = NOW()`,
		listing.Key.Contract, listing.Key.TokenID, listing.Price, listing.Seller,
	)
	if err != nil {
		return fmt.Errorf("upsert listing: %w", err)
	}

	return nil
}

func (m *MySQLAdapter) DeleteListing(ctx context.Context, key domain.AssetKey) error {
	_, err := m.db.ExecContext(ctx, `
		DELETE FROM listings WHERE contract = ? AND token_id = ?`,
		key.Contract, key.TokenID,
	)
	if err != nil {
		return fmt.Errorf("delete listing: %w", err)
	}

	return nil
}

// SaveSale records the receipt and drops the listing mirror in one
// transaction so the mirror never shows a sold asset as still listed.
func (m *MySQLAdapter) SaveSale(ctx context.Context, receipt domain.SaleReceipt) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO sales (id, contract, token_id, buyer, seller, price, seller_amount, fee_amount, refund, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		receipt.ID, receipt.Key.Contract, receipt.Key.TokenID, receipt.Buyer, receipt.Seller,
		receipt.Price, receipt.SellerAmount, receipt.FeeAmount, receipt.Refund, receipt.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		DELETE FROM listings WHERE contract = ? AND token_id = ?`,
		receipt.Key.Contract, receipt.Key.TokenID,
	)
	if err != nil {
		return fmt.Errorf("delete listing: %w", err)
	}

	return tx.Commit()
}

func (m *MySQLAdapter) SaveEvent(ctx context.Context, event domain.MarketEvent) error {
	_, err := m.db.ExecContext(ctx, `
		INSERT INTO market_events (type, contract, token_id, seller, buyer, price, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		string(event.Type), event.Key.Contract, event.Key.TokenID,
		event.Seller, event.Buyer, event.Price, event.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert market event: %w", err)
	}

	return nil
}
