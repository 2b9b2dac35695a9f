package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/vqhuy/nft-marketplace/internal/core/domain"
)

var testKey = domain.AssetKey{Contract: "0xabc", TokenID: "42"}

func TestCustodyOwnerOf(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/assets/0xabc/42/owner" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]string{"owner": "0xseller"})
	}))
	defer srv.Close()

	g := NewCustodyHTTPGateway(srv.URL, time.Second)
	owner, err := g.OwnerOf(context.Background(), testKey)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if owner != "0xseller" {
		t.Errorf("expected 0xseller, got %s", owner)
	}
}

func TestCustodyTransfer(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/transfers" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	g := NewCustodyHTTPGateway(srv.URL, time.Second)
	if err := g.Transfer(context.Background(), testKey, "0xa", "0xb"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got["from"] != "0xa" || got["to"] != "0xb" || got["token_id"] != "42" {
		t.Errorf("unexpected payload: %v", got)
	}
}

func TestCustodyTransfer_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))
	defer srv.Close()

	g := NewCustodyHTTPGateway(srv.URL, time.Second)
	if err := g.Transfer(context.Background(), testKey, "0xa", "0xb"); err == nil {
		t.Error("expected error on rejected transfer")
	}
}

func TestPaymentPay(t *testing.T) {
	var got map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	g := NewPaymentHTTPGateway(srv.URL, time.Second)
	if err := g.Pay(context.Background(), "0xseller", 98); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got["recipient"] != "0xseller" || got["amount"].(float64) != 98 {
		t.Errorf("unexpected payload: %v", got)
	}
}

func TestPaymentPay_Failure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
	}))
	defer srv.Close()

	g := NewPaymentHTTPGateway(srv.URL, time.Second)
	if err := g.Pay(context.Background(), "0xseller", 98); err == nil {
		t.Error("expected error on failed payment")
	}
}
