package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// ErrInvalidConfig wraps every semantic validation failure in Load.
var ErrInvalidConfig = errors.New("invalid configuration")

// Load reads the first env file found among envFilePath into the process
// environment, then builds and validates App from it. Each path is looked up
// in the working directory and its parents, so tests in nested packages
// share the repository's env file. Missing files are not an error.
func Load(envFilePath ...string) (*App, error) {
	logger := slog.Default()
	logger.Info("Loading environment variables")

	// If no specific paths provided, try default .env
	if len(envFilePath) == 0 {
		logger.Debug("No environment file specified, trying default .env")
		if err := godotenv.Load(); err != nil {
			logger.Warn("No .env file found in current directory")
		}
		return loadFromEnv()
	}

	// Try each provided path until we find a valid one
	for _, path := range envFilePath {
		logger.Debug("Looking for environment file", "path", path)
		foundPath, err := findEnvFile(path)
		if err != nil {
			logger.Debug("Environment file not found", "path", path, "error", err)
			continue
		}

		logger.Info("Loading environment from file", "path", foundPath)
		if err := godotenv.Load(foundPath); err != nil {
			logger.Error("Failed to load environment file", "path", foundPath, "error", err)
			continue
		}

		return loadFromEnv()
	}

	logger.Info("No valid environment files found, using default .env")
	if err := godotenv.Load(); err != nil {
		logger.Warn("No .env file found in current directory")
	}
	return loadFromEnv()
}

// findEnvFile walks up from the working directory until name exists.
func findEnvFile(name string) (string, error) {
	if name == "" {
		name = ".env"
	}
	if filepath.IsAbs(name) {
		if _, err := os.Stat(name); err != nil {
			return "", err
		}
		return name, nil
	}
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%s: %w", name, os.ErrNotExist)
		}
		dir = parent
	}
}

func loadFromEnv() (*App, error) {
	var cfg App
	err := envconfig.Process("", &cfg)
	if err != nil {
		return nil, err
	}

	if cfg.Env == "" {
		cfg.Env = "development"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := slog.Default()
	logger.Info("App config loaded",
		"env", cfg.Env,
		"rate_limit_max_requests", cfg.RateLimit.MaxRequests,
		"rate_limit_window", cfg.RateLimit.Window,
		"db", maskValue(cfg.DB.Url),
		"auth_strategy", cfg.Auth.Strategy,
		"auth_jwt_expiry", cfg.Auth.Jwt.Expiry,
		"paystack_key", maskValue(cfg.Gateways.Paystack.SecretKey),
		"stripe_key", maskValue(cfg.Gateways.Stripe.ApiKey),
		"mock_gateway", cfg.Gateways.Mock.Enabled,
		"verify_max_attempts", cfg.Verification.MaxAttempts,
		"sweep_sla", cfg.Reconciliation.SweepSLA,
		"sweep_interval", cfg.Reconciliation.SweepInterval,
	)
	return &cfg, nil
}

// Validate checks cross-field constraints envconfig cannot express.
func (c *App) Validate() error {
	v := c.Verification
	if v.MaxAttempts < 1 {
		return fmt.Errorf("%w: VERIFICATION_MAX_ATTEMPTS must be >= 1, got %d", ErrInvalidConfig, v.MaxAttempts)
	}
	if v.InitialBackoff <= 0 || v.MaxBackoff < v.InitialBackoff {
		return fmt.Errorf("%w: verification backoff %s..%s", ErrInvalidConfig, v.InitialBackoff, v.MaxBackoff)
	}
	r := c.Reconciliation
	if r.AmountTolerance != 0 {
		return fmt.Errorf("%w: RECONCILIATION_AMOUNT_TOLERANCE must be 0, amounts are matched exactly", ErrInvalidConfig)
	}
	if r.WebhookTimeout > 0 && v.HTTPTimeout > 0 && v.RetryBudget() > r.WebhookTimeout {
		return fmt.Errorf("%w: verification retry budget %s exceeds RECONCILIATION_WEBHOOK_TIMEOUT %s",
			ErrInvalidConfig, v.RetryBudget(), r.WebhookTimeout)
	}
	if r.SweepSLA <= 0 || r.SweepInterval <= 0 {
		return fmt.Errorf("%w: sweep SLA and interval must be positive", ErrInvalidConfig)
	}
	if r.SweepBatchSize < 1 || r.SweepWorkers < 1 {
		return fmt.Errorf("%w: sweep batch size and workers must be >= 1", ErrInvalidConfig)
	}
	return nil
}

func maskValue(key string) string {
	if len(key) <= 6 {
		return "****"
	}
	return key[:2] + "****" + key[len(key)-4:]
}
