package storage

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/vqhuy/nft-marketplace/internal/core/domain"
)

func getMySQLDB(t *testing.T) *sql.DB {
	dsn := os.Getenv("MYSQL_DSN")
	if dsn == "" {
		dsn = "root:root@tcp(localhost:3306)/marketplace?parseTime=true"
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Skipf("MySQL not available: %v", err)
	}

	if err := db.Ping(); err != nil {
		t.Skipf("MySQL not available: %v", err)
	}

	return db
}

var testKey = domain.AssetKey{Contract: "0xtest", TokenID: "1"}

func cleanup(ctx context.Context, db *sql.DB) {
	db.ExecContext(ctx, `DELETE FROM listings WHERE contract = ?`, testKey.Contract)
	db.ExecContext(ctx, `DELETE FROM sales WHERE contract = ?`, testKey.Contract)
	db.ExecContext(ctx, `DELETE FROM market_events WHERE contract = ?`, testKey.Contract)
}

func TestSaveListing_Upsert(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()

	ctx := context.Background()
	adapter := NewMySQLAdapter(db)
	cleanup(ctx, db)

	listing := domain.Listing{Key: testKey, Price: 100, Seller: "seller", Active: true}
	if err := adapter.SaveListing(ctx, listing); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	// price update hits the same row
	listing.Price = 150
	if err := adapter.SaveListing(ctx, listing); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	var count int
	var price uint64
	db.QueryRowContext(ctx, `SELECT COUNT(*) FROM listings WHERE contract = ?`, testKey.Contract).Scan(&count)
	db.QueryRowContext(ctx, `
		SELECT price FROM listings WHERE contract = ? AND token_id = ?`,
		testKey.Contract, testKey.TokenID).Scan(&price)

	if count != 1 {
		t.Errorf("expected 1 row, got %d", count)
	}
	if price != 150 {
		t.Errorf("expected price 150, got %d", price)
	}

	cleanup(ctx, db)
}

func TestSaveSale_DropsListingMirror(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()

	ctx := context.Background()
	adapter := NewMySQLAdapter(db)
	cleanup(ctx, db)

	listing := domain.Listing{Key: testKey, Price: 100, Seller: "seller", Active: true}
	if err := adapter.SaveListing(ctx, listing); err != nil {
		t.Fatalf("save listing failed: %v", err)
	}

	receipt := domain.SaleReceipt{
		ID:           "test-sale-1",
		Key:          testKey,
		Buyer:        "buyer",
		Seller:       "seller",
		Price:        100,
		SellerAmount: 98,
		FeeAmount:    2,
		CreatedAt:    time.Now(),
	}
	if err := adapter.SaveSale(ctx, receipt); err != nil {
		t.Fatalf("save sale failed: %v", err)
	}

	var listings, sales int
	db.QueryRowContext(ctx, `SELECT COUNT(*) FROM listings WHERE contract = ?`, testKey.Contract).Scan(&listings)
	db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sales WHERE id = 'test-sale-1'`).Scan(&sales)

	if listings != 0 {
		t.Errorf("listing mirror not dropped, %d rows remain", listings)
	}
	if sales != 1 {
		t.Errorf("expected 1 sale row, got %d", sales)
	}

	cleanup(ctx, db)
}

func TestSaveEvent_Appends(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()

	ctx := context.Background()
	adapter := NewMySQLAdapter(db)
	cleanup(ctx, db)

	for _, eventType := range []domain.EventType{domain.EventListingCreated, domain.EventSold} {
		err := adapter.SaveEvent(ctx, domain.MarketEvent{
			Type:      eventType,
			Key:       testKey,
			Seller:    "seller",
			Price:     100,
			CreatedAt: time.Now(),
		})
		if err != nil {
			t.Fatalf("save event %s failed: %v", eventType, err)
		}
	}

	var count int
	db.QueryRowContext(ctx, `SELECT COUNT(*) FROM market_events WHERE contract = ?`, testKey.Contract).Scan(&count)
	if count != 2 {
		t.Errorf("expected 2 event rows, got %d", count)
	}

	cleanup(ctx, db)
}
