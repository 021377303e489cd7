package main

import (
	"log"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/skillswap/interviewer-match/api"
	"github.com/skillswap/interviewer-match/config"
	"github.com/skillswap/interviewer-match/index"
	"github.com/skillswap/interviewer-match/internal/analytics"
	"github.com/skillswap/interviewer-match/internal/logger"
	"github.com/skillswap/interviewer-match/internal/matching"
	"github.com/skillswap/interviewer-match/internal/pool"
	"github.com/skillswap/interviewer-match/internal/textutil"
	"github.com/skillswap/interviewer-match/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the matching HTTP server",
	Run: func(cmd *cobra.Command, _ []string) {
		serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("port", "p", "8080", "port to run the server on")
	serveCmd.Flags().String("data-dir", "./match_data", "directory for pool snapshots and analytics data")

	if err := viper.BindPFlag("port", serveCmd.Flags().Lookup("port")); err != nil {
		log.Fatalf("binding port flag: %v", err)
	}
	if err := viper.BindPFlag("data-dir", serveCmd.Flags().Lookup("data-dir")); err != nil {
		log.Fatalf("binding data-dir flag: %v", err)
	}
}

func serve() {
	zapLogger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	settings := matchingSettings(zapLogger)
	dataDir := viper.GetString("data-dir")

	interviewerStore := store.NewInterviewerStore()
	tokenIndex := index.NewTokenIndex()
	stemmer := textutil.NewStemmer(settings.Stemmer)

	poolService, err := pool.NewService(interviewerStore, tokenIndex, stemmer, zapLogger, dataDir)
	if err != nil {
		zapLogger.Fatal("creating the pool service", zap.Error(err))
	}

	engine := matching.NewEngine(settings, zapLogger)
	searchService, err := matching.NewService(interviewerStore, tokenIndex, engine, zapLogger)
	if err != nil {
		zapLogger.Fatal("creating the search service", zap.Error(err))
	}

	analyticsService := analytics.NewService(poolService, zapLogger, dataDir)

	if !viper.GetBool("debug") {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	api.SetupRoutes(router, api.NewAPI(poolService, searchService, analyticsService, zapLogger))

	port := viper.GetString("port")
	zapLogger.Info("starting the matching server",
		zap.String("port", port),
		zap.String("data_dir", dataDir),
		zap.String("stemmer", settings.Stemmer),
		zap.Int("pool_size", poolService.PoolSize()))

	if err := router.Run(":" + port); err != nil {
		zapLogger.Fatal("running the server", zap.Error(err))
	}
}

// matchingSettings builds the engine settings from the "matching" config
// section, fills in defaults, and refuses to start on conflicting values.
func matchingSettings(zapLogger *zap.Logger) config.MatchingSettings {
	var settings config.MatchingSettings
	if sub := viper.Sub("matching"); sub != nil {
		if err := sub.Unmarshal(&settings); err != nil {
			zapLogger.Fatal("parsing matching settings", zap.Error(err))
		}
	}
	settings.ApplyDefaults()

	if conflicts := settings.Validate(); len(conflicts) > 0 {
		zapLogger.Fatal("invalid matching settings",
			zap.String("conflicts", strings.Join(conflicts, "; ")))
	}
	return settings
}
