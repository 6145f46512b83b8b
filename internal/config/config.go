package config

import (
	"bufio"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	HTTPAddr        string
	FixedLogo       string
	LogoPool        string
	LogoPoolFile    string
	ImgDir          string
	SessionSecret   string
	SessionTTLHours int
	ShuffleSeed     uint32
	LogLevel        string
	LogFormat       string
}

func Load() Config {
	loadDotEnv(".env")
	cfg := Config{
		HTTPAddr:        getEnv("HTTP_ADDR", ":8080"),
		FixedLogo:       getEnv("FIXED_LOGO", "/img/logo.png"),
		LogoPool:        getEnv("LOGO_POOL", ""),
		LogoPoolFile:    getEnv("LOGO_POOL_FILE", ""),
		ImgDir:          getEnv("IMG_DIR", "./img"),
		SessionSecret:   getEnv("SESSION_SECRET", "change-me"),
		SessionTTLHours: getEnvInt("SESSION_TTL_HOURS", 168),
		ShuffleSeed:     getEnvUint32("SHUFFLE_SEED", 0),
		LogLevel:        strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat:       strings.ToLower(getEnv("LOG_FORMAT", "json")),
	}
	if cfg.SessionTTLHours < 1 {
		cfg.SessionTTLHours = 1
	}
	return cfg
}

// WeakSecret reports whether the session secret was left at its default.
func (c Config) WeakSecret() bool {
	s := strings.TrimSpace(c.SessionSecret)
	return s == "" || s == "change-me"
}

func getEnv(key, def string) string {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	return val
}

func loadDotEnv(path string) {
	file, err := os.Open(path)
	if err != nil {
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		val := strings.TrimSpace(parts[1])
		val = strings.Trim(val, "\"")
		if key == "" {
			continue
		}
		if os.Getenv(key) == "" {
			_ = os.Setenv(key, val)
		}
	}
}

func getEnvInt(key string, def int) int {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return def
	}
	return parsed
}

// getEnvUint32 falls back to def for negative or out-of-range values.
func getEnvUint32(key string, def uint32) uint32 {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	parsed, err := strconv.ParseUint(strings.TrimSpace(val), 10, 32)
	if err != nil {
		return def
	}
	return uint32(parsed)
}
