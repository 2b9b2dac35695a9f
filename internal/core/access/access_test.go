package access

import (
	"errors"
	"testing"

	"github.com/vqhuy/nft-marketplace/internal/core/domain"
)

func TestNewController_RejectsMarketAccount(t *testing.T) {
	if _, err := NewController("0xmarket", "0xfees", "0xmarket"); !errors.Is(err, ErrAdminIsMarketAccount) {
		t.Errorf("expected ErrAdminIsMarketAccount, got %v", err)
	}
	if _, err := NewController("", "0xfees", "0xmarket"); !errors.Is(err, ErrEmptyAdmin) {
		t.Errorf("expected ErrEmptyAdmin, got %v", err)
	}
}

func TestRequireAdmin(t *testing.T) {
	c, err := NewController("0xadmin", "0xfees", "0xmarket")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := c.RequireAdmin("0xadmin"); err != nil {
		t.Errorf("admin rejected: %v", err)
	}
	if err := c.RequireAdmin("0xother"); !errors.Is(err, domain.ErrNotAuthorized) {
		t.Errorf("expected ErrNotAuthorized, got %v", err)
	}
	if err := c.RequireAdmin("0xmarket"); !errors.Is(err, domain.ErrNotAuthorized) {
		t.Errorf("market account must never pass the admin check, got %v", err)
	}
}

func TestFeeRecipient_DefaultsToAdmin(t *testing.T) {
	c, _ := NewController("0xadmin", "", "0xmarket")
	if c.FeeRecipient() != "0xadmin" {
		t.Errorf("expected fee recipient to default to admin, got %s", c.FeeRecipient())
	}
}
