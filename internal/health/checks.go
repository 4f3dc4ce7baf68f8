package health

import (
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/shopity/internal/config"
	"github.com/hellofresh/health-go/v5"
	healthHttp "github.com/hellofresh/health-go/v5/checks/http"
	"github.com/hellofresh/health-go/v5/checks/postgres"
	healthRedis "github.com/hellofresh/health-go/v5/checks/redis"
)

const componentVersion = "1.0.0"

// Checks reports the storage backend selected by the config and whether the
// commerce backend answers.
func Checks(cfg *config.Config) []health.Config {

	checks := []health.Config{
		{
			Name:      "commerce-api",
			Timeout:   5 * time.Second,
			SkipOnErr: true,
			Check: healthHttp.New(healthHttp.Config{
				URL:            cfg.CommerceAPI.BaseURL,
				RequestTimeout: 5 * time.Second,
			}),
		},
	}

	switch cfg.Storage.Driver {
	case config.StorageDriverPostgres:
		checks = append(checks, health.Config{
			Name:      "database",
			Timeout:   3 * time.Second,
			SkipOnErr: false,
			Check: postgres.New(postgres.Config{
				DSN: cfg.Database.GetDSN(),
			}),
		})
	case config.StorageDriverRedis:
		checks = append(checks, health.Config{
			Name:      "redis",
			Timeout:   2 * time.Second,
			SkipOnErr: false,
			Check: healthRedis.New(healthRedis.Config{
				DSN: cfg.RedisConnect.GetDSN(),
			}),
		})
	}

	return checks
}

func NewHealthHandler(cfg *config.Config) (*health.Health, error) {

	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    cfg.Tracing.ServiceName,
			Version: componentVersion,
		}),
		health.WithSystemInfo(),
		health.WithChecks(Checks(cfg)...),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}
