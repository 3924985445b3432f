package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	ModeMock   = "mock"
	ModeRemote = "remote"
)

// Config selects the backend strategy once at startup and carries the
// environment the client and the mock server share.
type Config struct {
	Mode        string // "mock" or "remote"
	APIBaseURL  string
	ListenAddr  string
	JWTSecret   string
	LogPath     string
	SessionFile string // non-empty enables the persistent "remember me" store

	KioskStationID string

	OTPResendCooldown time.Duration
	OTPTTL            time.Duration
}

// Load reads .env (if present) and environment variables with defaults.
func Load() Config {
	// Load .env (if present)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found – relying on env vars")
	}

	return Config{
		Mode:        getEnv("BACKEND_MODE", ModeMock),
		APIBaseURL:  getEnv("API_BASE_URL", "http://localhost:8080"),
		ListenAddr:  getEnv("LISTEN_ADDR", "0.0.0.0:8080"),
		JWTSecret:   getEnv("JWT_SECRET", "supersecret"),
		LogPath:     getEnv("LOG_PATH", "./logs/app.log"),
		SessionFile: getEnv("SESSION_FILE", ""),

		KioskStationID: getEnv("KIOSK_STATION_ID", ""),

		OTPResendCooldown: time.Duration(getEnvInt("OTP_RESEND_COOLDOWN_SECONDS", 60)) * time.Second,
		OTPTTL:            time.Duration(getEnvInt("OTP_TTL_SECONDS", 300)) * time.Second,
	}
}

// getEnv reads an environment variable or returns the provided default
func getEnv(key, defaultValue string) string {
	if v, exists := os.LookupEnv(key); exists {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultValue
}
