package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"readmegen/config"
	"readmegen/internal/files"
	"readmegen/internal/gitfiles"
	"readmegen/internal/llm"
	"readmegen/internal/output"
	"readmegen/internal/prompt"
)

// Engine orchestrates one generation run over a repository.
type Engine struct {
	cfg    *config.Config
	client llm.Client
	dir    string

	// listTracked is swapped out in tests so runs do not need a git
	// repository on disk.
	listTracked func(ctx context.Context, dir string) ([]string, error)
}

// NewEngine creates an Engine for the repository at dir.
func NewEngine(cfg *config.Config, client llm.Client, dir string) *Engine {
	return &Engine{
		cfg:         cfg,
		client:      client,
		dir:         dir,
		listTracked: gitfiles.ListTracked,
	}
}

// Run executes the full sequence: backup, enumerate, read, assemble,
// generate, write. The first failing step aborts the rest; nothing is
// retried.
func (e *Engine) Run(ctx context.Context) error {
	outPath := filepath.Join(e.dir, e.cfg.Generator.Output)
	bakPath := filepath.Join(e.dir, e.cfg.Generator.Backup)

	logrus.Infof("1. Backing up existing %s...", e.cfg.Generator.Output)
	if err := output.Backup(outPath, bakPath); err != nil {
		return fmt.Errorf("backup failed: %w", err)
	}

	logrus.Info("2. Listing tracked files...")
	paths, err := e.listTracked(ctx, e.dir)
	if err != nil {
		return fmt.Errorf("failed to list tracked files: %w", err)
	}

	logrus.Info("3. Reading the codebase...")
	tracked := files.CollectAll(ctx, e.dir, paths, e.cfg.Generator.Workers)
	logrus.Infof("Processed %d files from the codebase", len(tracked))

	logrus.Infof("4. Calling %s to generate the document...", e.client.Name())
	doc, err := e.client.Generate(ctx, prompt.Build(tracked))
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	logrus.Infof("5. Writing %s...", e.cfg.Generator.Output)
	if err := output.Write(outPath, doc); err != nil {
		return fmt.Errorf("failed to write %s: %w", e.cfg.Generator.Output, err)
	}

	logrus.Infof("%s has been successfully updated", e.cfg.Generator.Output)
	return nil
}
