package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/ib-77/railway/pkg/api"
	"github.com/ib-77/railway/pkg/logging"
	"github.com/ib-77/railway/pkg/repository"
	"github.com/ib-77/railway/pkg/rop/batch"
	"github.com/ib-77/railway/pkg/signup"
)

var version = "dev"

const configEnv = "SIGNUP_CONFIG"

const (
	_ = iota
	exitNoInput
	exitDotenvError
	exitLoggingFailed
	exitLoadConfigurationFileFailed
	exitBuildPipelineFailed
	exitSignupFailed
)

var (
	configFile  string
	minLength   int
	workers     int
	loggingType string
	logLevel    string
	showVersion bool
)

func init() {
	flag.StringVar(
		&configFile,
		"config",
		"",
		"pipeline YAML file (falls back to $"+configEnv+", then the default signup pipeline)")
	flag.IntVar(
		&minLength,
		"min-length",
		api.DefaultMinLength,
		"minimum email length for the default pipeline")
	flag.IntVar(
		&workers,
		"workers",
		1,
		"number of concurrent pipeline runs")
	flag.StringVar(
		&loggingType,
		"logging-type",
		logging.Tint,
		"logging type: "+strings.Join(logging.Types(), ", "))
	flag.StringVar(
		&logLevel,
		"log-level",
		"warn",
		"logging level: debug, info, warn, error")
	flag.BoolVar(
		&showVersion,
		"version",
		false,
		"print version and exit")
}

func main() {
	flag.Parse()

	if showVersion {
		fmt.Println(version)
		os.Exit(0)
	}

	if err := logging.Initialize(loggingType, logLevel); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitLoggingFailed)
	}

	includeEnv()

	emails := flag.Args()
	if len(emails) == 0 {
		slog.Error("no email addresses given", "usage", "signup [flags] email...")
		os.Exit(exitNoInput)
	}

	pipeline := loadPipeline()

	repo := newRepository()
	signup.Seed(pipeline, repo)

	run, err := signup.FromConfig(pipeline, repo, slog.Default())
	if err != nil {
		slog.Error("failed to build pipeline", "error", err)
		os.Exit(exitBuildPipelineFailed)
	}

	failed := 0
	for _, res := range batch.Run(context.Background(), emails, run, workers) {
		if res.IsFailure() {
			failed++
		}
		fmt.Println(signup.Message(res))
	}

	if failed > 0 {
		slog.Info("some signups failed", "failed", failed, "total", len(emails))
		os.Exit(exitSignupFailed)
	}
}

// newRepository picks a concurrency-safe repository when runs overlap.
func newRepository() repository.Repository {
	if workers > 1 {
		return repository.NewSyncSet()
	}
	return repository.NewSet()
}

func loadPipeline() *api.Pipeline {
	if configFile == "" {
		configFile = os.Getenv(configEnv)
	}

	if configFile == "" {
		p := api.Default(minLength)
		if err := p.Validate(); err != nil {
			slog.Error("invalid default pipeline", "error", err)
			os.Exit(exitLoadConfigurationFileFailed)
		}
		return p
	}

	p, err := api.LoadPipeline(configFile)
	if err != nil {
		slog.Error("failed to load pipeline file", "filename", configFile, "error", err)
		os.Exit(exitLoadConfigurationFileFailed)
	}
	slog.Debug("pipeline loaded", "filename", p.FilePath, "steps", len(p.Steps))
	return p
}

func includeEnv() {
	err := godotenv.Load()
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Error("failed to load .env", "error", err)
			os.Exit(exitDotenvError)
		}
		slog.Debug("no .env file found")
	} else {
		slog.Debug("using .env file")
	}
}
