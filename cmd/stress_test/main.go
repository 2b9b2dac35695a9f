package main

import (
	"context"
	"fmt"
	stdlog "log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/vqhuy/nft-marketplace/internal/adapter/storage"
	"github.com/vqhuy/nft-marketplace/internal/core/access"
	"github.com/vqhuy/nft-marketplace/internal/core/domain"
	"github.com/vqhuy/nft-marketplace/internal/core/registry"
	"github.com/vqhuy/nft-marketplace/internal/core/service"
	"github.com/vqhuy/nft-marketplace/internal/event"
	"github.com/vqhuy/nft-marketplace/internal/log"
)

const (
	redisAddr     = "localhost:6379"
	marketAccount = "0xmarket"
	seller        = "0xseller"
	price         = 100
	feePercentage = 2
	totalBuyers   = 50
)

// In-process gateway stubs: custody is a map, payments are counters.
// The contention under test lives entirely in the registry and the
// Redis idempotency reservations.

type custodyStub struct {
	mu      sync.Mutex
	holders map[domain.AssetKey]string
}

func (c *custodyStub) OwnerOf(ctx context.Context, key domain.AssetKey) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.holders[key], nil
}

func (c *custodyStub) Transfer(ctx context.Context, key domain.AssetKey, from, to string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.holders[key] = to
	return nil
}

type paymentStub struct {
	mu   sync.Mutex
	paid map[string]uint64
}

func (p *paymentStub) Pay(ctx context.Context, recipient string, amount uint64) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.paid[recipient] += amount
	return nil
}

func main() {
	log.NewLogger("", false)
	ctx := context.Background()

	rdb := redis.NewClient(&redis.Options{Addr: redisAddr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		stdlog.Fatalf("failed to connect redis: %v", err)
	}
	defer rdb.Close()

	// Clear previous run's reservations
	keys, _ := rdb.Keys(ctx, "purchase:stress-*").Result()
	for _, k := range keys {
		rdb.Del(ctx, k)
	}

	key := domain.AssetKey{Contract: "0xstress", TokenID: "1"}
	custody := &custodyStub{holders: map[domain.AssetKey]string{key: seller}}
	payments := &paymentStub{paid: make(map[string]uint64)}

	accessCtl, err := access.NewController("0xadmin", "0xfees", marketAccount)
	if err != nil {
		stdlog.Fatalf("access controller: %v", err)
	}
	fees, err := service.NewFeeConfig(feePercentage)
	if err != nil {
		stdlog.Fatalf("fee config: %v", err)
	}

	reg := registry.New()
	events := event.NewManager(1000)
	defer events.Close()

	// Drain the durable queue in background
	go func() {
		for range events.Queue() {
		}
	}()

	marketService := service.NewMarketService(reg, custody, accessCtl, fees, events, marketAccount)
	settlementService := service.NewSettlementService(
		reg, custody, payments, storage.NewRedisAdapter(rdb), accessCtl, fees, events, marketAccount,
	)

	if _, err := marketService.List(ctx, key, price, seller); err != nil {
		stdlog.Fatalf("failed to list asset: %v", err)
	}

	// Counters
	var successCount atomic.Int32
	var failCount atomic.Int32

	// Spawn concurrent buyers for the single asset
	var wg sync.WaitGroup
	start := time.Now()

	for i := 0; i < totalBuyers; i++ {
		wg.Add(1)
		go func(buyerID int) {
			defer wg.Done()

			buyer := fmt.Sprintf("0xbuyer-%d", buyerID)
			requestID := "stress-" + uuid.New().String()
			_, err := settlementService.Purchase(ctx, key, buyer, price, requestID)
			if err == nil {
				successCount.Add(1)
			} else {
				failCount.Add(1)
			}
		}(i)
	}

	wg.Wait()
	elapsed := time.Since(start)

	// Results
	success := successCount.Load()
	fail := failCount.Load()

	fmt.Println("========== STRESS TEST RESULTS ==========")
	fmt.Printf("Total Buyers:     %d\n", totalBuyers)
	fmt.Printf("Successful:       %d\n", success)
	fmt.Printf("Failed:           %d\n", fail)
	fmt.Printf("Duration:         %v\n", elapsed)
	fmt.Println("==========================================")

	// Assertions
	if success == 1 && fail == int32(totalBuyers-1) {
		fmt.Println("PASS: Exactly one buyer won the asset")
	} else {
		fmt.Printf("FAIL: Expected 1 success/%d fail, got %d/%d\n", totalBuyers-1, success, fail)
	}

	sellerPaid := payments.paid[seller]
	feePaid := payments.paid["0xfees"]
	fmt.Printf("Seller paid: %d, Fee recipient paid: %d\n", sellerPaid, feePaid)

	if sellerPaid+feePaid == price {
		fmt.Println("PASS: Payouts sum to the sale price")
	} else {
		fmt.Printf("FAIL: Expected payouts to sum to %d, got %d\n", price, sellerPaid+feePaid)
	}
}
