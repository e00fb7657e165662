package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"os"
	"strconv"

	"laundry/internal/adapters/in/http"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/jobs"

	"github.com/joho/godotenv"
)

const (
	defaultHTTPPort    = "5000"
	defaultDBPort      = "5432"
	defaultDBSslMode   = "disable"
	defaultServiceName = "laundry"
)

type Config struct {
	HTTPPort       string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSslMode      string
	IdentityHeader string
	EmptyResult    queries.EmptyResultPolicy
	HealthSchedule string
	OTLPEndpoint   string
	ServiceName    string
	LogLevel       string
}

// LoadConfig reads the environment, first merging a .env file from the
// working directory when one exists. Variables already set win over the file.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("error loading .env file: %w", err)
	}
	return ConfigFromEnv(os.Getenv)
}

// ConfigFromEnv applies defaults and validates required values.
func ConfigFromEnv(getenv func(string) string) (Config, error) {
	config := Config{
		HTTPPort:       valueOr(getenv("HTTP_PORT"), defaultHTTPPort),
		DBHost:         getenv("DB_HOST"),
		DBPort:         valueOr(getenv("DB_PORT"), defaultDBPort),
		DBUser:         getenv("DB_USER"),
		DBPassword:     getenv("DB_PASSWORD"),
		DBName:         getenv("DB_NAME"),
		DBSslMode:      valueOr(getenv("DB_SSLMODE"), defaultDBSslMode),
		IdentityHeader: valueOr(getenv("IDENTITY_HEADER"), http.DefaultIdentityHeader),
		HealthSchedule: valueOr(getenv("HEALTH_CHECK_SCHEDULE"), jobs.DefaultHealthSchedule),
		OTLPEndpoint:   getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		ServiceName:    valueOr(getenv("OTEL_SERVICE_NAME"), defaultServiceName),
		LogLevel:       valueOr(getenv("LOG_LEVEL"), "info"),
	}

	policy, err := emptyResultPolicy(getenv)
	if err != nil {
		return Config{}, err
	}
	config.EmptyResult = policy

	var errs []error
	for name, value := range map[string]string{
		"DB_HOST": config.DBHost,
		"DB_USER": config.DBUser,
		"DB_NAME": config.DBName,
	} {
		if value == "" {
			errs = append(errs, fmt.Errorf("%s is required", name))
		}
	}
	if _, err := strconv.ParseUint(config.HTTPPort, 10, 16); err != nil {
		errs = append(errs, fmt.Errorf("HTTP_PORT %q is not a valid port", config.HTTPPort))
	}
	if err := errors.Join(errs...); err != nil {
		return Config{}, err
	}

	return config, nil
}

// DSN renders the Postgres connection URL understood by lib/pq and
// golang-migrate alike.
func (c Config) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     net.JoinHostPort(c.DBHost, c.DBPort),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": {c.DBSslMode}}.Encode(),
	}
	return u.String()
}

// ListenAddress binds on every interface.
func (c Config) ListenAddress() string {
	return net.JoinHostPort("0.0.0.0", c.HTTPPort)
}

// emptyResultPolicy reads EMPTY_RESULT_POLICY (list|not_found), falling back
// to the boolean EMPTY_RESULT_AS_NOT_FOUND. Setting both is rejected.
func emptyResultPolicy(getenv func(string) string) (queries.EmptyResultPolicy, error) {
	named := getenv("EMPTY_RESULT_POLICY")
	flag := getenv("EMPTY_RESULT_AS_NOT_FOUND")

	switch {
	case named != "" && flag != "":
		return 0, errors.New("EMPTY_RESULT_POLICY and EMPTY_RESULT_AS_NOT_FOUND are mutually exclusive")
	case named != "":
		policy, err := queries.ParseEmptyResultPolicy(named)
		if err != nil {
			return 0, fmt.Errorf("EMPTY_RESULT_POLICY: %w", err)
		}
		return policy, nil
	case flag != "":
		notFound, err := strconv.ParseBool(flag)
		if err != nil {
			return 0, fmt.Errorf("EMPTY_RESULT_AS_NOT_FOUND: %w", err)
		}
		return queries.PolicyFromFlag(notFound), nil
	default:
		return queries.EmptyAsNotFound, nil
	}
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
