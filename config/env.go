// Package config resolves process configuration from built-in defaults
// overridden by a .env file and the process environment. It is read once at
// startup; the resulting Config is passed explicitly to every component that
// needs it instead of living in package globals.
package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	defaultMongoURL     = "mongodb://localhost:27017"
	defaultDBName       = "cafedelights"
	defaultJWTSecret    = "change-me-in-production"
	defaultAppPort      = "8080"
	defaultAppEnv       = "local"
	defaultMaxBodyBytes = 4 << 20
)

// Config is the resolved process configuration.
type Config struct {
	MongoURL     string
	DBName       string
	JWTSecret    string
	CORSOrigins  []string
	AppPort      string
	AppEnv       string
	LogMongo     bool // mirror structured logs into the logs collection
	MaxBodyBytes int64
}

// Load resolves configuration from defaults, ".env" in the working directory
// (if present), and finally the process environment.
func Load() (*Config, error) {
	return load(".env")
}

func load(envPath string) (*Config, error) {
	values := defaultValues()

	if err := mergeDotEnv(envPath, values); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	}
	mergeEnviron(values)

	maxBody, err := strconv.ParseInt(values["MAX_BODY_BYTES"], 10, 64)
	if err != nil || maxBody <= 0 {
		maxBody = defaultMaxBodyBytes
	}

	return &Config{
		MongoURL:     values["MONGO_URL"],
		DBName:       values["DB_NAME"],
		JWTSecret:    values["JWT_SECRET"],
		CORSOrigins:  splitOrigins(values["CORS_ORIGINS"]),
		AppPort:      values["APP_PORT"],
		AppEnv:       values["APP_ENV"],
		LogMongo:     isTruthy(values["LOG_MONGO"]),
		MaxBodyBytes: maxBody,
	}, nil
}

func defaultValues() map[string]string {
	return map[string]string{
		"MONGO_URL":      defaultMongoURL,
		"DB_NAME":        defaultDBName,
		"JWT_SECRET":     defaultJWTSecret,
		"CORS_ORIGINS":   "*",
		"APP_PORT":       defaultAppPort,
		"APP_ENV":        defaultAppEnv,
		"LOG_MONGO":      "",
		"MAX_BODY_BYTES": strconv.Itoa(defaultMaxBodyBytes),
	}
}

func mergeDotEnv(path string, out map[string]string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		idx := strings.IndexByte(line, '=')
		if idx <= 0 {
			continue
		}

		key := strings.ToUpper(strings.TrimSpace(line[:idx]))
		value := strings.TrimSpace(line[idx+1:])
		value = strings.Trim(value, `"'`)
		if key == "" {
			continue
		}
		out[key] = value
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	return nil
}

// mergeEnviron lets real environment variables win over .env values.
func mergeEnviron(out map[string]string) {
	for key := range out {
		if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
			out[key] = strings.TrimSpace(v)
		}
	}
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return origins
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
