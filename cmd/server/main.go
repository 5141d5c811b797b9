package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/velora/storefront/internal/cart"
	"github.com/velora/storefront/internal/catalog"
	"github.com/velora/storefront/internal/checkout"
	"github.com/velora/storefront/internal/config"
	"github.com/velora/storefront/internal/events"
	httpx "github.com/velora/storefront/internal/http"
	"github.com/velora/storefront/internal/kvstore"
	"github.com/velora/storefront/internal/orders"
	"github.com/velora/storefront/internal/payment"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Persistent store: Redis when configured, process memory otherwise.
	var store kvstore.Store
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer rdb.Close()
		store = kvstore.NewRedisStore(rdb, cfg.StorePrefix)
	} else {
		store = kvstore.NewMemoryStore()
	}

	source, closeSource, err := buildCatalogSource(cfg)
	if err != nil {
		log.Fatalf("catalog source: %v", err)
	}
	if closeSource != nil {
		defer closeSource()
	}
	catalogSvc := catalog.NewService(source)

	cartMgr := cart.NewManager(ctx, store)
	ledger := orders.NewLedger(ctx, store)
	gateway := payment.NewSimulatedGateway(cfg.PaymentLatency)

	// Optional settlement events.
	var publisher checkout.Publisher
	var kafkaPub *events.Publisher
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPub = events.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopic, cfg.ServiceName, 1024)
		kafkaPub.Start(ctx)
		publisher = kafkaPub
	}

	orchestrator := checkout.NewOrchestrator(cartMgr, ledger, gateway, publisher)

	// Initial catalog load plus cart reconciliation. Failure degrades to an
	// empty catalog and leaves cart and order state untouched.
	if products, err := catalogSvc.ListProducts(ctx, true); err != nil {
		log.Printf("initial catalog load failed: %v", err)
	} else if cartMgr.Reconcile(ctx, products) {
		log.Println("cart reconciled against refreshed catalog")
	}

	catalogHandler := httpx.NewCatalogHandler(catalogSvc, cartMgr, cfg.RequestTimeout)
	cartHandler := httpx.NewCartHandler(catalogSvc, cartMgr, cfg.RequestTimeout)
	checkoutHandler := httpx.NewCheckoutHandler(orchestrator)
	ordersHandler := httpx.NewOrdersHandler(ledger)

	router := httpx.NewRouter(catalogHandler, cartHandler, checkoutHandler, ordersHandler, cfg.RequestTimeout)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	go func() {
		log.Printf("storefront listening at %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown: %v", err)
	}

	if kafkaPub != nil {
		kafkaPub.Close()
		kafkaPub.WaitClosed()
	}

	log.Println("server exited")
}

func buildCatalogSource(cfg config.Config) (catalog.Source, func() error, error) {
	switch cfg.CatalogMode {
	case config.CatalogRemote:
		if cfg.CatalogBaseURL == "" {
			return nil, nil, errors.New("CATALOG_BASE_URL is required in remote mode")
		}
		return catalog.NewRemoteSource(cfg.CatalogBaseURL, cfg.RequestTimeout), nil, nil
	case config.CatalogSQLite:
		src, err := catalog.NewSQLiteSource(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		if err := src.RunMigrations(cfg.MigrationsDir); err != nil {
			return nil, nil, err
		}
		return src, src.Close, nil
	default:
		return catalog.NewStaticSource(catalog.DefaultProducts(), cfg.CatalogDelay), nil, nil
	}
}
