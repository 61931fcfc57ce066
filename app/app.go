package app

import (
	"context"
	"os"
	"strings"
	"time"

	"Gin_postgres_library_management/db"
	"Gin_postgres_library_management/frappe"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Aliases so handlers stay short.
type Ctx = gin.Context
type H = gin.H

// App aggregates the shared dependencies; everything downstream receives
// them explicitly from here.
type App struct {
	Router *gin.Engine
	DB     *gorm.DB
	RDB    *redis.Client
	Log    *logrus.Logger
	Config Config
}

// Config comes from the environment.
type Config struct {
	AllowedOrigins []string
	RedisAddr      string
	RedisPwd       string
	FrappeAPIURL   string
	FrappeCacheTTL time.Duration
}

func MustNew() *App {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg := loadConfig()

	// --- DB: Postgres ---
	dbConn := db.ConnectDB(log)

	// --- Redis (optional): catalog page cache ---
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPwd, DB: 0})
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatalf("redis: %v", err)
		}
		log.Info("redis connected, catalog cache enabled")
	} else {
		log.Info("REDIS_ADDR not set, catalog cache disabled")
	}

	// --- Gin ---
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(log))
	useCORS(r, cfg.AllowedOrigins)

	return &App{Router: r, DB: dbConn, RDB: rdb, Log: log, Config: cfg}
}

func (a *App) Close() {
	if a.RDB != nil {
		_ = a.RDB.Close()
	}
}

func loadConfig() Config {
	get := func(k, def string) string {
		v := os.Getenv(k)
		if v == "" {
			return def
		}
		return v
	}

	originsCSV := get("ALLOWED_ORIGINS", "http://localhost:5173")
	var origins []string
	for _, o := range strings.Split(originsCSV, ",") {
		if s := strings.TrimSpace(o); s != "" {
			origins = append(origins, s)
		}
	}

	ttl := 10 * time.Minute
	if d, err := time.ParseDuration(get("FRAPPE_CACHE_TTL_SECONDS", "600") + "s"); err == nil {
		ttl = d
	}

	return Config{
		AllowedOrigins: origins,
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisPwd:       os.Getenv("REDIS_PASSWORD"),
		FrappeAPIURL:   get("FRAPPE_API_URL", frappe.DefaultAPIURL),
		FrappeCacheTTL: ttl,
	}
}
