package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"brigade/internal/charts"
	"brigade/internal/config"
	"brigade/internal/models"
	"brigade/internal/monitoring"
	"brigade/internal/processor"
)

var (
	kitchenName        = flag.String("kitchen", "", "Name of the kitchen to enable for processing orders")
	maxConcurrentItems = flag.Int("max-concurrent-items", -1, "Maximum number of items the kitchen can process in parallel (0 = unconstrained, -1 = take from config)")
	inputPath          = flag.String("input", "", "Path to the JSON file containing orders to be processed")
	outputPath         = flag.String("output", "", "Path for the output directory containing the stats page")
	configFile         = flag.String("config", "", "Path to the yaml configuration file (optional)")
	metricsPort        = flag.Int("metrics-port", -1, "Metrics server port (0 = disabled, -1 = take from config)")
)

func main() {
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg := config.Default()
	if *configFile != "" {
		loaded, err := config.Load(*configFile)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to load configuration")
		}
		cfg = loaded
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		logger = logger.Level(level)
	}

	kitchen := *kitchenName
	if kitchen == "" {
		kitchen = cfg.Kitchen.Name
	}
	maxItems := *maxConcurrentItems
	if maxItems < 0 {
		maxItems = cfg.Kitchen.MaxConcurrentItems
	}
	if kitchen == "" || *inputPath == "" || *outputPath == "" {
		logger.Fatal().Msg("missing required argument: -kitchen, -input and -output must be set (see -help)")
	}

	logger.Info().Str("kitchen", kitchen).Msg("configuring kitchen")
	menusByKitchenName, err := config.LoadKitchenMenus(cfg.Kitchen.CatalogPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load kitchen catalog")
	}
	k, err := config.BuildKitchen(menusByKitchenName, kitchen, maxItems)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build kitchen")
	}
	capacity := "INF"
	if k.MaxConcurrentItems > 0 {
		capacity = fmt.Sprintf("%d", k.MaxConcurrentItems)
	}
	menuNames := make([]string, 0, len(k.Menus))
	for _, menu := range k.Menus {
		menuNames = append(menuNames, menu.Name)
	}
	logger.Info().
		Strs("menus", menuNames).
		Str("max_concurrent_items", capacity).
		Msgf("kitchen %s has been launched", k.Name)

	orders, err := config.LoadOrders(*inputPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load orders")
	}

	collector := monitoring.NewCollector()
	port := *metricsPort
	if port < 0 {
		port = 0
		if cfg.Metrics.Enabled {
			port = cfg.Metrics.Port
		}
	}
	if port > 0 {
		go startMetricsServer(logger, collector, port)
	}

	proc, err := processor.New(k, models.FirstComeFirstServe, logger, collector)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to set up the order processor")
	}
	result, err := proc.Run(orders)
	if err != nil {
		logger.Fatal().Err(err).Msg("order processing aborted")
	}

	logger.Info().Msg("creating stats page")
	page := charts.NewStatsPage(k.Name, k.MaxConcurrentItems, *outputPath)
	if err := page.Render(result.Completed, result.Rejected.CurrentNumOrders()); err != nil {
		logger.Fatal().Err(err).Msg("failed to render stats page")
	}
	logger.Info().
		Str("stats_page", filepath.Join(*outputPath, charts.StatsPageFileName)).
		Int("completed_orders", result.Completed.CurrentNumOrders()).
		Int("rejected_orders", result.Rejected.CurrentNumOrders()).
		Int("total_revenue_cents", result.Completed.TotalRevenue()).
		Msg("application is complete")
}

func startMetricsServer(logger zerolog.Logger, collector *monitoring.Collector, port int) {
	gin.SetMode(gin.ReleaseMode)
	metricsRouter := gin.New()
	metricsRouter.GET("/metrics", gin.WrapH(collector.Handler()))

	metricsServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: metricsRouter,
	}

	logger.Info().Int("port", port).Msg("starting metrics server")
	if err := metricsServer.ListenAndServe(); err != http.ErrServerClosed {
		logger.Error().Err(err).Msg("metrics server error")
	}
}
