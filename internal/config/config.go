package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string
	PostgresMaxConns int

	HTTPPort           string
	CORSAllowedOrigins []string
	LogLevel           string

	// DefaultUserID is the acting identity when demo data is not seeded.
	DefaultUserID   int64
	SeedDemoData    bool
	OperatorWorkers int

	// Events are disabled when AMQPURL is empty.
	AMQPURL      string
	AMQPExchange string
}

func ProcessEnvironmentVariables() (*Config, error) {
	// A .env file is optional; real environment variables win over it.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		PostgresAddress:    "localhost",
		PostgresPort:       "5433",
		PostgresDB:         "postgres",
		PostgresUsername:   "postgres",
		PostgresPassword:   "testpassword",
		PostgresMaxConns:   10,
		HTTPPort:           "9446",
		CORSAllowedOrigins: []string{"*"},
		LogLevel:           "info",
		DefaultUserID:      1,
		SeedDemoData:       true,
		OperatorWorkers:    1,
		AMQPExchange:       "finanzas",
	}

	setString(&env.PostgresAddress, "POSTGRES_ADDRESS")
	setString(&env.PostgresPort, "POSTGRES_PORT")
	setString(&env.PostgresDB, "POSTGRES_DB")
	setString(&env.PostgresUsername, "POSTGRES_USERNAME")
	setString(&env.PostgresPassword, "POSTGRES_PASSWORD")
	setString(&env.HTTPPort, "HTTP_PORT")
	setString(&env.LogLevel, "LOG_LEVEL")
	setString(&env.AMQPURL, "AMQP_URL")
	setString(&env.AMQPExchange, "AMQP_EXCHANGE")

	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); len(origins) != 0 {
		env.CORSAllowedOrigins = splitList(origins)
	}

	var errs []error
	if err := setInt(&env.PostgresMaxConns, "POSTGRES_MAX_CONNS"); err != nil {
		errs = append(errs, err)
	}
	if err := setInt(&env.OperatorWorkers, "OPERATOR_WORKERS"); err != nil {
		errs = append(errs, err)
	}
	if value := os.Getenv("DEFAULT_USER_ID"); len(value) != 0 {
		id, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("DEFAULT_USER_ID: %w", err))
		} else {
			env.DefaultUserID = id
		}
	}
	if value := os.Getenv("SEED_DEMO_DATA"); len(value) != 0 {
		seed, err := strconv.ParseBool(value)
		if err != nil {
			errs = append(errs, fmt.Errorf("SEED_DEMO_DATA: %w", err))
		} else {
			env.SeedDemoData = seed
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return &env, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var problems []string

	ports := []struct{ name, value string }{
		{"HTTP_PORT", c.HTTPPort},
		{"POSTGRES_PORT", c.PostgresPort},
	}
	for _, port := range ports {
		if p, err := strconv.Atoi(port.value); err != nil {
			problems = append(problems, fmt.Sprintf("invalid %s '%s': must be a number", port.name, port.value))
		} else if p < 1 || p > 65535 {
			problems = append(problems, fmt.Sprintf("invalid %s %d: must be between 1 and 65535", port.name, p))
		}
	}

	if c.DefaultUserID < 1 {
		problems = append(problems, fmt.Sprintf("invalid default user id %d: must be positive", c.DefaultUserID))
	}
	if c.OperatorWorkers < 1 {
		problems = append(problems, fmt.Sprintf("invalid operator workers %d: must be at least 1", c.OperatorWorkers))
	}
	if c.PostgresMaxConns < 1 {
		problems = append(problems, fmt.Sprintf("invalid postgres max conns %d: must be at least 1", c.PostgresMaxConns))
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		problems = append(problems, fmt.Sprintf("invalid log level '%s'", c.LogLevel))
	}

	if c.AMQPURL != "" {
		if parsedURL, err := url.Parse(c.AMQPURL); err != nil {
			problems = append(problems, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsedURL.Scheme != "amqp" && parsedURL.Scheme != "amqps" {
			problems = append(problems, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsedURL.Scheme))
		}
		if c.AMQPExchange == "" {
			problems = append(problems, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}

func (c *Config) PostgresURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.PostgresUsername, c.PostgresPassword),
		Host:     c.PostgresAddress + ":" + c.PostgresPort,
		Path:     "/" + c.PostgresDB,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

func setString(target *string, key string) {
	if value := os.Getenv(key); len(value) != 0 {
		*target = value
	}
}

func setInt(target *int, key string) error {
	value := os.Getenv(key)
	if len(value) == 0 {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*target = i
	return nil
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
