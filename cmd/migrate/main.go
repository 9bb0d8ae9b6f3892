package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/lexwire/lexwire/app/cfg"
	"github.com/lexwire/lexwire/app/config"
	"github.com/lexwire/lexwire/app/database"
	"github.com/lexwire/lexwire/app/migrator"
	"github.com/lexwire/lexwire/app/mongo"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}
	if appCfg.MongoURI == "" {
		log.Fatal("MONGODB_URI is required for the migration job")
	}

	setupLogging(appCfg.Debug)

	// run owns every resource so deferred releases fire on all exit
	// paths, including fatal ones.
	if err := run(appCfg); err != nil {
		slog.Error("Migration run failed", "error", err)
		os.Exit(1)
	}
}

func run(appCfg *cfg.Cfg) error {
	siteConfig, err := config.Load(appCfg.SiteConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load site configuration: %w", err)
	}

	runLog, err := migrator.OpenRunLog(appCfg.MigrationLogPath)
	if err != nil {
		return fmt.Errorf("failed to open migration log: %w", err)
	}
	defer runLog.Close()

	slog.Info("Starting migration run", "run_id", runLog.RunID(), "log", appCfg.MigrationLogPath)

	db, err := database.NewConnection(
		appCfg.DBHost, appCfg.DBPort, appCfg.DBUser,
		appCfg.DBPassword, appCfg.DBName)
	if err != nil {
		runLog.Logger().Error("Destination connection failed", "error", err)
		return fmt.Errorf("failed to connect to destination database: %w", err)
	}
	defer db.Close()

	version, dirty, err := database.RunMigrations(db)
	if err != nil {
		runLog.Logger().Error("Destination schema migration failed", "error", err)
		return fmt.Errorf("failed to run destination migrations: %w", err)
	}
	slog.Info("Destination schema ready", "version", version, "dirty", dirty)

	source, err := mongo.Connect(appCfg.MongoURI, appCfg.MongoDB)
	if err != nil {
		runLog.Logger().Error("Source connection failed", "error", err)
		return fmt.Errorf("failed to connect to source database: %w", err)
	}
	defer source.Close()

	runner := migrator.NewRunner(
		source,
		database.NewArticleRepository(db),
		database.NewSubscriberRepository(db),
		runLog.Logger(),
	)
	runner.ArticlesCollection = siteConfig.Migration.ArticlesCollection
	runner.SubscribersCollection = siteConfig.Migration.SubscribersCollection

	report, err := runner.Run(context.Background())
	if report != nil {
		logSummary(report)
	}
	if err != nil {
		return err
	}

	slog.Info("Migration run complete", "run_id", runLog.RunID())
	return nil
}

func logSummary(report *migrator.Report) {
	slog.Info("Article summary",
		"migrated", report.Articles.Migrated, "failed", report.Articles.Failed)
	slog.Info("Subscriber summary",
		"migrated", report.Subscribers.Migrated, "failed", report.Subscribers.Failed)
}

func setupLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})))
}
