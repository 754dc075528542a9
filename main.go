package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"readmegen/config"
	"readmegen/internal/llm"
	"readmegen/logging"
)

const version = "0.2.0"

func main() {
	dir := flag.String("dir", ".", "repository root to document")
	model := flag.String("model", "", "override the configured model id")
	provider := flag.String("provider", "", "generation backend: gemini or ollama")
	initConfig := flag.Bool("init-config", false, "write the default "+config.DefaultFile+" and exit")
	showVersion := flag.Bool("version", false, "print the version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("readmegen " + version)
		return
	}

	if *initConfig {
		if err := config.WriteDefault(config.DefaultFile); err != nil {
			logrus.Fatalf("Error writing default configuration: %v", err)
		}
		fmt.Println("Wrote " + config.DefaultFile)
		return
	}

	if err := config.LoadConfig(); err != nil {
		logrus.Fatalf("Error loading configuration: %v", err)
	}
	cfg := config.AppConfig
	logging.InitLogger(cfg.Logging)

	if *provider != "" {
		cfg.Provider = *provider
	}
	if *model != "" {
		cfg.Gemini.Model = *model
		cfg.Ollama.Model = *model
	}

	_ = godotenv.Load()

	ctx := context.Background()
	client, err := buildClient(ctx, cfg)
	if err != nil {
		logrus.Fatalf("Error initializing generation client: %v", err)
	}

	logrus.Info("Starting README generation process")
	engine := NewEngine(cfg, client, *dir)
	if err := engine.Run(ctx); err != nil {
		logrus.Fatalf("Run aborted: %v", err)
	}
}

// buildClient selects the generation backend from configuration. The Gemini
// credential comes from the process environment and is handed to the client
// explicitly.
func buildClient(ctx context.Context, cfg *config.Config) (llm.Client, error) {
	switch cfg.Provider {
	case "", "gemini":
		return llm.NewGeminiClient(ctx, os.Getenv("GEMINI_API_KEY"), cfg.Gemini.Model)
	case "ollama":
		return llm.NewOllamaClient(cfg.Ollama.Host, cfg.Ollama.Model)
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
}
