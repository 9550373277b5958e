package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks cross-field constraints that tags cannot express.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port out of range: %d", c.Server.Port))
	}
	if c.Server.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("server.shutdown_timeout must be positive"))
	}

	if strings.TrimSpace(c.Database.DSN) == "" {
		errs = append(errs, errors.New("database.dsn is required"))
	}
	if c.Database.MinConns > c.Database.MaxConns {
		errs = append(errs, fmt.Errorf("database.min_conns (%d) exceeds max_conns (%d)",
			c.Database.MinConns, c.Database.MaxConns))
	}

	if c.Stream.MinInterval <= 0 {
		errs = append(errs, errors.New("stream.min_interval must be positive"))
	}
	if c.Stream.DefaultInterval < c.Stream.MinInterval {
		errs = append(errs, fmt.Errorf("stream.default_interval (%s) below min_interval (%s)",
			c.Stream.DefaultInterval, c.Stream.MinInterval))
	}

	if c.GraphQL.ComplexityLimit < 0 {
		errs = append(errs, errors.New("graphql.complexity_limit cannot be negative"))
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("log.format must be json or text, got %q", c.Log.Format))
	}

	return errors.Join(errs...)
}
