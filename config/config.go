// Package config provides configuration management for the to-do service.
// It handles loading and validation of configuration values from environment
// variables, with support for required variables, default values, and
// collective error reporting: every problem found during loading is gathered
// into one error so a misconfigured deployment fails fast with a full report.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// DBConfig represents configuration for the database connection pool.
type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	MaxSize  int
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port string // Port for the HTTP server
}

// AppConfig is the top-level configuration structure for the application.
type AppConfig struct {
	DB     *DBConfig
	Server *ServerConfig
}

// getRequiredEnv returns the value of a required environment variable,
// appending to the errors slice if it is not set.
func getRequiredEnv(key string, errors *[]string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		*errors = append(*errors, fmt.Sprintf("missing required environment variable: %s", key))
		return ""
	}
	return value
}

// getOptionalEnv returns the value of an environment variable, or the default
// when the variable is not set.
func getOptionalEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getOptionalEnvInt parses an optional environment variable as an int.
// Uses defaultValue if not set; appends an error if parsing fails.
func getOptionalEnvInt(key string, defaultValue int, errors *[]string) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		*errors = append(*errors, fmt.Sprintf("invalid value for %s: expected integer, got '%s': %v", key, valueStr, err))
		return defaultValue
	}
	return valueInt
}

// parseAndValidatePoolSize converts a pool-size value to an integer and clamps
// it between 1 and 100, appending an error when parsing or validation fails.
func parseAndValidatePoolSize(valueStr string, varName string, errors *[]string) int {
	size, err := strconv.Atoi(valueStr)
	if err != nil {
		*errors = append(*errors, fmt.Sprintf("invalid pool size for %s: expected integer, got '%s': %v", varName, valueStr, err))
		return 5
	}

	if size < 1 {
		*errors = append(*errors, fmt.Sprintf("pool size for %s (%d) is less than minimum 1, clamping to 1", varName, size))
		size = 1
	}
	if size > 100 {
		*errors = append(*errors, fmt.Sprintf("pool size for %s (%d) is greater than maximum 100, clamping to 100", varName, size))
		size = 100
	}
	return size
}

// LoadConfig creates and returns an AppConfig by reading and validating
// environment variables. It collects all errors encountered during loading and
// returns a single aggregated error if any exist.
//
// DB_PASSWORD is required and must be non-empty: a connection string built
// with an empty password would fail in a far less obvious way at the first
// query, so startup aborts here instead.
func LoadConfig() (*AppConfig, error) {
	var errors []string

	dbUser := getRequiredEnv("DB_USER", &errors)
	dbPassword := getRequiredEnv("DB_PASSWORD", &errors)
	dbName := getRequiredEnv("DB_NAME", &errors)
	dbHost := getOptionalEnv("DB_HOST", "localhost")
	dbPort := getOptionalEnvInt("DB_PORT", 5432, &errors)

	if _, exists := os.LookupEnv("DB_PASSWORD"); exists && dbPassword == "" {
		errors = append(errors, "DB_PASSWORD must not be empty")
	}

	poolSize := 10
	if poolSizeStr, exists := os.LookupEnv("DB_POOL_SIZE"); exists {
		poolSize = parseAndValidatePoolSize(poolSizeStr, "DB_POOL_SIZE", &errors)
	}

	dbConfig := &DBConfig{
		Host:     dbHost,
		Port:     dbPort,
		User:     dbUser,
		Password: dbPassword,
		DBName:   dbName,
		MaxSize:  poolSize,
	}

	// Server port is kept as a string because it is only ever interpolated
	// into a listen address.
	serverConfig := &ServerConfig{
		Port: getOptionalEnv("PORT", "8080"),
	}

	if len(errors) > 0 {
		return nil, fmt.Errorf("configuration errors:\n- %s", strings.Join(errors, "\n- "))
	}

	return &AppConfig{
		DB:     dbConfig,
		Server: serverConfig,
	}, nil
}
