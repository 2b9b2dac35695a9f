package main

import (
	"context"
	"database/sql"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/vqhuy/nft-marketplace/internal/adapter/gateway"
	"github.com/vqhuy/nft-marketplace/internal/adapter/handler"
	"github.com/vqhuy/nft-marketplace/internal/adapter/handler/pb"
	"github.com/vqhuy/nft-marketplace/internal/adapter/storage"
	"github.com/vqhuy/nft-marketplace/internal/config"
	"github.com/vqhuy/nft-marketplace/internal/core/access"
	"github.com/vqhuy/nft-marketplace/internal/core/domain"
	"github.com/vqhuy/nft-marketplace/internal/core/registry"
	"github.com/vqhuy/nft-marketplace/internal/core/service"
	"github.com/vqhuy/nft-marketplace/internal/event"
	"github.com/vqhuy/nft-marketplace/internal/port"
)

func main() {
	config.Init()
	cfg := config.Get()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.MarketAccount == "" || cfg.AdminAccount == "" {
		zap.L().Fatal("MARKET_ACCOUNT and ADMIN_ACCOUNT must be configured")
	}

	// MySQL
	db, err := sql.Open("mysql", cfg.MysqlDSN)
	if err != nil {
		zap.L().With(zap.Error(err)).Fatal("failed to connect mysql")
	}
	db.SetMaxOpenConns(50)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		zap.L().With(zap.Error(err)).Fatal("failed to ping mysql")
	}
	zap.L().Info("connected to mysql")

	// Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		PoolSize: 100,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		zap.L().With(zap.Error(err)).Fatal("failed to connect redis")
	}
	zap.L().Info("connected to redis")

	// Adapters and gateways
	mysqlAdapter := storage.NewMySQLAdapter(db)
	redisAdapter := storage.NewRedisAdapter(rdb)
	gatewayTimeout := time.Duration(cfg.GatewayTimeout) * time.Second
	custodyGateway := gateway.NewCustodyHTTPGateway(cfg.CustodyURL, gatewayTimeout)
	paymentGateway := gateway.NewPaymentHTTPGateway(cfg.PaymentURL, gatewayTimeout)

	// Core
	accessCtl, err := access.NewController(cfg.AdminAccount, cfg.FeeRecipient, cfg.MarketAccount)
	if err != nil {
		zap.L().With(zap.Error(err)).Fatal("invalid access configuration")
	}
	fees, err := service.NewFeeConfig(cfg.FeePercentage)
	if err != nil {
		zap.L().With(zap.Error(err)).Fatal("invalid fee configuration")
	}

	reg := registry.New()
	events := event.NewManager(cfg.QueueSize)

	marketService := service.NewMarketService(reg, custodyGateway, accessCtl, fees, events, cfg.MarketAccount)
	settlementService := service.NewSettlementService(
		reg, custodyGateway, paymentGateway, redisAdapter, accessCtl, fees, events, cfg.MarketAccount,
	)

	// Persistence workers drain the event queue into MySQL
	var wg sync.WaitGroup
	for i := 0; i < cfg.WorkerCount; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			workerLoop(id, events.Queue(), mysqlAdapter)
		}(i)
	}
	zap.L().With(zap.Int("count", cfg.WorkerCount)).Info("started persistence workers")

	// gRPC server
	grpcServer := grpc.NewServer()
	pb.RegisterMarketplaceServer(grpcServer, handler.NewGRPCHandler(marketService, settlementService))

	lis, err := net.Listen("tcp", cfg.GRPCPort)
	if err != nil {
		zap.L().With(zap.Error(err)).Fatal("failed to listen")
	}

	go func() {
		zap.L().With(zap.String("port", cfg.GRPCPort)).Info("gRPC server listening")
		if err := grpcServer.Serve(lis); err != nil {
			zap.L().With(zap.Error(err)).Error("gRPC server error")
		}
	}()

	// HTTP server
	mux := http.NewServeMux()
	handler.NewHTTPHandler(marketService, settlementService).Register(mux)

	httpServer := &http.Server{
		Addr:    cfg.HTTPPort,
		Handler: mux,
	}

	go func() {
		zap.L().With(zap.String("port", cfg.HTTPPort)).Info("HTTP server listening")
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			zap.L().With(zap.Error(err)).Error("HTTP server error")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zap.L().Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	httpServer.Shutdown(shutdownCtx)
	zap.L().Info("HTTP server stopped")

	grpcServer.GracefulStop()
	zap.L().Info("gRPC server stopped")

	events.Close()
	wg.Wait()
	zap.L().Info("persistence workers stopped")

	rdb.Close()
	db.Close()
	zap.L().Info("connections closed")
}

func workerLoop(id int, queue <-chan domain.MarketEvent, db port.DatabaseRepository) {
	for ev := range queue {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)

		if err := db.SaveEvent(ctx, ev); err != nil {
			zap.L().With(
				zap.Int("worker", id),
				zap.String("type", string(ev.Type)),
				zap.String("key", ev.Key.String()),
				zap.Error(err),
			).Error("failed to append market event")
		}

		var err error
		switch ev.Type {
		case domain.EventListingCreated, domain.EventListingUpdated:
			err = db.SaveListing(ctx, domain.Listing{
				Key: ev.Key, Price: ev.Price, Seller: ev.Seller, Active: true,
			})
		case domain.EventListingRemoved:
			err = db.DeleteListing(ctx, ev.Key)
		case domain.EventSold:
			if ev.Receipt != nil {
				err = db.SaveSale(ctx, *ev.Receipt)
			}
		}

		if err != nil {
			zap.L().With(
				zap.Int("worker", id),
				zap.String("type", string(ev.Type)),
				zap.String("key", ev.Key.String()),
				zap.Error(err),
			).Error("failed to persist state mirror")
		}

		cancel()
	}
}
