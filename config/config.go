// Package config loads environment files and exposes the server's
// runtime settings.
package config

import (
	"log/slog"
	"net"
	"os"

	"github.com/subosito/gotenv"
)

// LoadEnv layers config/envs/.env.<env> onto the process environment.
// A missing file is not an error; OS variables win in that case.
func LoadEnv(env string) {
	envFile := "config/envs/.env." + env
	if err := gotenv.Load(envFile); err != nil {
		slog.Warn("No .env file found, using OS environment",
			slog.String("file", envFile))
	}
}

// ServerConfig holds the HTTP bind address parts.
type ServerConfig struct {
	Host string
	Port string
}

// GetServerConfig reads HOST and PORT from the environment, keeping the
// loopback defaults when neither is set.
func GetServerConfig() ServerConfig {
	return ServerConfig{
		Host: getEnv("HOST", "127.0.0.1"),
		Port: getEnv("PORT", "8000"),
	}
}

// Addr joins host and port into a form net/http can listen on.
func (c ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}
