package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/csheth/litshelf/internal/aicache"
	"github.com/csheth/litshelf/internal/bookmarks"
	"github.com/csheth/litshelf/internal/config"
	"github.com/csheth/litshelf/internal/library"
	"github.com/csheth/litshelf/internal/llm"
	"github.com/csheth/litshelf/internal/logging"
)

// app bundles the stores and services every subcommand needs. Construction
// is fail-soft: a missing corpus or bookmark file yields empty stores, not
// an error, matching the interactive browser's behaviour.
type app struct {
	cfg       *config.Config
	logger    zerolog.Logger
	library   *library.Store
	bookmarks *bookmarks.Store
	metadata  *bookmarks.MetadataStore
	cache     *aicache.Cache
	llm       llm.Client
}

func newApp() (*app, error) {
	logger := logging.New(os.Stderr, verbose)

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if dataDir != "" {
		cfg.Rebase(dataDir)
	}

	lib := library.Load(cfg.LibraryFile)
	logger.Debug().Int("papers", lib.Len()).Str("file", cfg.LibraryFile).Msg("corpus loaded")

	meta := bookmarks.NewMetadataStore(cfg.MetadataFile)
	bm := bookmarks.NewStore(cfg.BookmarksFile, meta)
	cache := aicache.New(cfg.SummaryCacheFile, cfg.RecommendationsFile)

	client, err := llm.New(llm.Config{
		Provider: cfg.LLM.Provider,
		Model:    cfg.LLM.Model,
		Endpoint: cfg.LLM.Endpoint,
		APIKey:   os.Getenv("OPENAI_API_KEY"),
	})
	if err != nil {
		logger.Warn().Err(err).Msg("LLM client unavailable, AI features disabled")
		client = nil
	}
	if client != nil {
		logger.Debug().Str("provider", client.Name()).Msg("LLM client ready")
	}

	return &app{
		cfg:       cfg,
		logger:    logger,
		library:   lib,
		bookmarks: bm,
		metadata:  meta,
		cache:     cache,
		llm:       client,
	}, nil
}

// resolvePaperArg builds the app and resolves a CLI paper-ID argument,
// exiting with ExitNotFound when the ID is not in the corpus.
func resolvePaperArg(arg string) (*app, int, library.Paper, error) {
	app, err := newApp()
	if err != nil {
		return nil, 0, library.Paper{}, err
	}
	id, err := strconv.Atoi(arg)
	if err != nil {
		return nil, 0, library.Paper{}, fmt.Errorf("invalid paper ID %q", arg)
	}
	paper, ok := app.library.ByID(id)
	if !ok {
		return nil, 0, library.Paper{}, exitNotFound(id)
	}
	return app, id, paper, nil
}
