package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hance08/findpayments/internal/config"
	"github.com/hance08/findpayments/internal/diavgeia"
	"github.com/hance08/findpayments/internal/service"
)

type App struct {
	Service *service.Service
	Client  *diavgeia.Client
}

// NewApp validates config, builds the registry client and services, then return App entity
func NewApp(cfg *config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client := diavgeia.NewClient(diavgeia.ClientOptions{
		BaseURL:   cfg.API.BaseURL,
		UserAgent: cfg.API.UserAgent,
		Timeout:   cfg.API.Timeout,
	})

	svc, err := service.NewService(client, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &App{
		Service: svc,
		Client:  client,
	}, nil
}

// AppDataDir is where the config file lives unless --config says otherwise.
func AppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, ".findpayments"), nil
	}

	return filepath.Join(configDir, "findpayments"), nil
}
