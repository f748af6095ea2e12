package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/username/shift-tracker/internal/calendar"
	"github.com/username/shift-tracker/internal/classify"
	"github.com/username/shift-tracker/internal/config"
	"github.com/username/shift-tracker/internal/ledger"
	"github.com/username/shift-tracker/internal/storage"
)

var (
	configPath string
	logger     *zap.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "shift-tracker",
		Short: "Work shift tracker for security guards",
		Long:  "Record work shifts and classify their hours (normal, night, holiday) under Spanish security-guard conventions, with monthly overtime summaries and report export",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg, err := config.Load(configPath)
			if err == nil && cfg.Log.File != "" {
				logger, err = initFileLogger(cfg.Log.File, cfg.Log.Level)
				if err != nil {
					initLogger() // Fallback to console
				}
			} else {
				initLogger() // Default console logger
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path")

	rootCmd.AddCommand(
		addCmd(),
		editCmd(),
		deleteCmd(),
		listCmd(),
		historyCmd(),
		reclassifyCmd(),
		reportCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app bundles the wired application components for a single command run
type app struct {
	cfg      *config.Config
	cal      calendar.Calendar
	manager  *ledger.Manager
	shutdown func()
}

func initializeApp() (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.ExpandEnvVars()

	cal := buildCalendar(cfg)

	dbFile := cfg.Storage.GetDatabaseFile()
	if err := os.MkdirAll(filepath.Dir(dbFile), 0o700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	store, err := storage.Open(dbFile, logger)
	if err != nil {
		return nil, err
	}

	classifier := classify.NewClassifier(cal)
	manager := ledger.NewManager(store, classifier, logger)

	return &app{
		cfg:     cfg,
		cal:     cal,
		manager: manager,
		shutdown: func() {
			if err := store.Close(); err != nil {
				logger.Warn("Failed to close database", zap.Error(err))
			}
		},
	}, nil
}

func buildCalendar(cfg *config.Config) calendar.Calendar {
	national := calendar.NewDefaultCalendar()

	if cfg.Calendar.HolidaysFile == "" {
		return national
	}

	regional := calendar.NewFileCalendar(cfg.Calendar.HolidaysFile, logger)
	composite := calendar.NewCompositeCalendar(logger, national, regional)

	if err := composite.LoadFiles(); err != nil {
		logger.Warn("Failed to load holidays file, continuing with built-in list",
			zap.Error(err))
		return national
	}

	return composite
}

// parseMonth parses a YYYY-MM month flag; empty means the current month
func parseMonth(s string) (int, time.Month, error) {
	if s == "" {
		now := time.Now()
		return now.Year(), now.Month(), nil
	}
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q: expected YYYY-MM", s)
	}
	return t.Year(), t.Month(), nil
}

func initLogger() {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
}

func initFileLogger(logFile string, level string) (*zap.Logger, error) {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100,  // MB
		MaxBackups: 3,    // Keep max 3 old log files
		MaxAge:     28,   // days
		Compress:   true, // Compress old logs with gzip
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		zapLevel,
	)

	return zap.New(core), nil
}
