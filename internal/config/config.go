// Package config は環境変数からサーバー設定を読み込みます。
// 何も設定されていない場合は 127.0.0.1:8080 で検証なしの既定動作になります。
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"go-inmem-todo/backend/internal/logging"
)

const (
	DefaultAddr           = "127.0.0.1:8080"
	DefaultMaxTitleLength = 1024
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "text"
)

// Config はサーバー全体の設定です。
type Config struct {
	Addr           string
	ValidateTitles bool
	MaxTitleLength int
	LogLevel       string
	LogFormat      string
	GinMode        string
}

// Default は環境変数がない場合の設定を返します。
func Default() Config {
	return Config{
		Addr:           DefaultAddr,
		ValidateTitles: false,
		MaxTitleLength: DefaultMaxTitleLength,
		LogLevel:       DefaultLogLevel,
		LogFormat:      DefaultLogFormat,
		GinMode:        gin.ReleaseMode,
	}
}

// LoadDotEnv は .env ファイルがあれば読み込みます。ファイルがなくてもエラーにはしません。
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	var existing []string
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			existing = append(existing, p)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("load env file: %w", err)
	}
	return nil
}

// FromEnv は環境変数から設定を組み立てます。
// 解釈できない値は既定値に戻し、その内容を warnings として返します。
func FromEnv() (Config, []string) {
	cfg := Default()
	var warnings []string

	if v := strings.TrimSpace(os.Getenv("TODO_ADDR")); v != "" {
		cfg.Addr = v
	}

	if v := strings.TrimSpace(os.Getenv("TODO_VALIDATE_TITLES")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("TODO_VALIDATE_TITLES=%q is not a boolean, using %t", v, cfg.ValidateTitles))
		} else {
			cfg.ValidateTitles = b
		}
	}

	if v := strings.TrimSpace(os.Getenv("TODO_MAX_TITLE_LENGTH")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			warnings = append(warnings, fmt.Sprintf("TODO_MAX_TITLE_LENGTH=%q is not a non-negative integer, using %d", v, cfg.MaxTitleLength))
		} else {
			cfg.MaxTitleLength = n
		}
	}

	if v := strings.TrimSpace(os.Getenv("TODO_LOG_LEVEL")); v != "" {
		if logging.ValidLevel(v) {
			cfg.LogLevel = strings.ToLower(v)
		} else {
			warnings = append(warnings, fmt.Sprintf("TODO_LOG_LEVEL=%q is unknown, using %s", v, cfg.LogLevel))
		}
	}

	if v := strings.TrimSpace(os.Getenv("TODO_LOG_FORMAT")); v != "" {
		if logging.ValidFormat(v) {
			cfg.LogFormat = strings.ToLower(v)
		} else {
			warnings = append(warnings, fmt.Sprintf("TODO_LOG_FORMAT=%q is unknown, using %s", v, cfg.LogFormat))
		}
	}

	if v := strings.TrimSpace(os.Getenv(gin.EnvGinMode)); v != "" {
		switch v {
		case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
			cfg.GinMode = v
		default:
			warnings = append(warnings, fmt.Sprintf("%s=%q is unknown, using %s", gin.EnvGinMode, v, cfg.GinMode))
		}
	}

	return cfg, warnings
}
