package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Mode string

const (
	ModeDebug   Mode = "debug"
	ModeRelease Mode = "release"
)

type Config struct {
	Mode      Mode
	HTTPAddr  string
	PublicURL string

	LogLevel string
	LogFile  string // empty: stderr only

	CORSOrigins []string

	RateLimitRPS   float64
	RateLimitBurst int

	ShutdownTimeout time.Duration

	// AssetsDir holds the compiled quiz host (formative.wasm, wasm_exec.js).
	AssetsDir string

	ArchiveDriver string // sqlite|postgres
	ArchiveDSN    string
	ReportDir     string
}

// Load reads .env if present and then the process environment.
func Load() Config {
	_ = godotenv.Load()
	return FromEnv()
}

func FromEnv() Config {
	mode := Mode(os.Getenv("MODE"))
	if mode == "" {
		mode = ModeRelease
	}
	level := "info"
	if mode == ModeDebug {
		level = "debug"
	}
	return Config{
		Mode:            mode,
		HTTPAddr:        envOr("HTTP_ADDR", ":8080"),
		PublicURL:       strings.TrimSuffix(os.Getenv("PUBLIC_URL"), "/"),
		LogLevel:        envOr("LOG_LEVEL", level),
		LogFile:         os.Getenv("LOG_FILE"),
		CORSOrigins:     csvOr("CORS_ORIGINS", "http://localhost:8080"),
		RateLimitRPS:    envFloat("RATE_LIMIT_RPS", 20),
		RateLimitBurst:  envInt("RATE_LIMIT_BURST", 40),
		ShutdownTimeout: envDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		AssetsDir:       envOr("ASSETS_DIR", "./web"),
		ArchiveDriver:   envOr("ARCHIVE_DRIVER", "sqlite"),
		ArchiveDSN:      envOr("ARCHIVE_DSN", "file:responses.db?_pragma=busy_timeout(5000)"),
		ReportDir:       envOr("REPORT_DIR", "./reports"),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func envBool(k string, def bool) bool {
	switch os.Getenv(k) {
	case "1", "true", "TRUE", "yes", "YES":
		return true
	case "0", "false", "FALSE", "no", "NO":
		return false
	default:
		return def
	}
}

func envInt(k string, def int) int {
	n, err := strconv.Atoi(os.Getenv(k))
	if err != nil {
		return def
	}
	return n
}

func envFloat(k string, def float64) float64 {
	f, err := strconv.ParseFloat(os.Getenv(k), 64)
	if err != nil {
		return def
	}
	return f
}

func envDuration(k string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(k))
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Debug reports whether verbose development behaviour is enabled.
func (c Config) Debug() bool { return c.Mode == ModeDebug || envBool("DEBUG", false) }
