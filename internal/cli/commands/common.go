package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/campusd-dev/campusd/internal/config"
	"github.com/campusd-dev/campusd/internal/logger"
	"github.com/campusd-dev/campusd/internal/shell/api"
	"github.com/campusd-dev/campusd/internal/shell/session"
	"github.com/campusd-dev/campusd/internal/shell/storage"
	"github.com/campusd-dev/campusd/internal/validate"
)

// Shell bundles the pieces every command needs: the session store, the
// API client, credential storage, and the form validator.
type Shell struct {
	Config  *config.ShellConfig
	Store   *session.Store
	API     *api.Client
	Storage storage.Store
	Forms   *validate.FormValidator
	Log     zerolog.Logger
}

// NewShell wires the shell from environment configuration. The session
// store hydrates from storage here, before any command runs.
func NewShell() (*Shell, error) {
	cfg, err := config.LoadShell()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(cfg.Logging.Level, cfg.Logging.Format)
	log := logger.GetLogger()

	store, err := newStorage(cfg)
	if err != nil {
		return nil, err
	}

	apiClient := api.New(cfg.APIBaseURL)

	return &Shell{
		Config:  cfg,
		Store:   session.New(apiClient, store, log),
		API:     apiClient,
		Storage: store,
		Forms:   validate.NewFormValidator(),
		Log:     log,
	}, nil
}

func newStorage(cfg *config.ShellConfig) (storage.Store, error) {
	switch cfg.StorageBackend {
	case "", "keyring":
		return storage.NewKeyring(), nil
	case "file":
		return storage.NewFile(cfg.CredentialsPath)
	default:
		return nil, fmt.Errorf("unknown storage backend %q (use keyring or file)", cfg.StorageBackend)
	}
}

// FlushStatus prints the store's transient status, if any, and
// acknowledges it so it is not surfaced twice.
func (s *Shell) FlushStatus() {
	snap := s.Store.Snapshot()
	switch snap.Status.Kind {
	case session.StatusError:
		fmt.Printf("✗ %s\n", snap.Status.Message)
		s.Store.AcknowledgeError()
	case session.StatusInfo:
		fmt.Printf("✓ %s\n", snap.Status.Message)
		s.Store.AcknowledgeMessage()
	}
}

// cmdContext returns the context commands run under.
func cmdContext() context.Context {
	return context.Background()
}

// printFieldErrors renders form validation errors, one per line.
func printFieldErrors(errs map[string]string) {
	for field, msg := range errs {
		fmt.Printf("  %s: %s\n", field, msg)
	}
}
