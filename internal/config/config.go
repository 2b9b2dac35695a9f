package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/vqhuy/nft-marketplace/internal/log"
)

type Config struct {
	Debug   bool
	LogPath string

	HTTPPort string
	GRPCPort string

	MysqlDSN  string
	RedisAddr string

	CustodyURL     string
	PaymentURL     string
	GatewayTimeout int

	MarketAccount string
	AdminAccount  string
	FeeRecipient  string
	FeePercentage uint64

	WorkerCount int
	QueueSize   int
}

func Init() {
	if err := godotenv.Load(".env"); err != nil {
		zap.L().With(zap.Error(err)).Warn("no .env file loaded")
	}

	cfg := Get()
	log.NewLogger(cfg.LogPath, cfg.Debug)
}

func Get() *Config {
	return &Config{
		Debug:          getBool("DEBUG", false),
		LogPath:        getString("LOG_PATH", "./var/marketplace.log"),
		HTTPPort:       getString("HTTP_PORT", ":8080"),
		GRPCPort:       getString("GRPC_PORT", ":50051"),
		MysqlDSN:       getString("MYSQL_DSN", "root:root@tcp(localhost:3306)/marketplace?parseTime=true"),
		RedisAddr:      getString("REDIS_ADDR", "localhost:6379"),
		CustodyURL:     getString("CUSTODY_URL", "http://localhost:9090"),
		PaymentURL:     getString("PAYMENT_URL", "http://localhost:9091"),
		GatewayTimeout: getInt("GATEWAY_TIMEOUT", 10),
		MarketAccount:  getString("MARKET_ACCOUNT", ""),
		AdminAccount:   getString("ADMIN_ACCOUNT", ""),
		FeeRecipient:   getString("FEE_RECIPIENT", ""),
		FeePercentage:  getUint64("FEE_PERCENTAGE", 2),
		WorkerCount:    getInt("WORKER_COUNT", 10),
		QueueSize:      getInt("QUEUE_SIZE", 10000),
	}
}

func getString(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return defaultValue
}

func getInt(key string, defaultValue int) int {
	valStr := getString(key, "")
	if val, err := strconv.Atoi(valStr); err == nil {
		return val
	}

	return defaultValue
}

func getUint64(key string, defaultValue uint64) uint64 {
	valStr := getString(key, "")
	if val, err := strconv.ParseUint(valStr, 10, 64); err == nil {
		return val
	}

	return defaultValue
}

func getBool(key string, defaultValue bool) bool {
	valStr := getString(key, "")
	if val, err := strconv.ParseBool(valStr); err == nil {
		return val
	}

	return defaultValue
}
