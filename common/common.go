package common

import (
	"log"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	// TestProjectID is the project used by tests and local development.
	TestProjectID = "goldleaf-storefront-dev"

	productionProject = "goldleaf-storefront"
)

var (
	ProjectID string

	GAEService string

	GAEVersion string

	Env string

	// Production flag indicating if app is running the production backend
	Production bool

	// IsLocalhost flag indicating if app is running on localhost
	IsLocalhost bool
)

func initEnvVariables() {
	ProjectID = GetEnv("GOOGLE_CLOUD_PROJECT", TestProjectID)

	IsLocalhost = gin.Mode() != gin.ReleaseMode
	GAEService = GetEnv("GAE_SERVICE", "invoices")
	GAEVersion = GetEnv("GAE_VERSION", "localhost")

	if value := os.Getenv("FIRESTORE_EMULATOR_HOST"); value != "" {
		log.Printf("Using Firestore Emulator: %s", value)
	}

	if ProjectID == productionProject && !IsLocalhost {
		Env = "production"
		Production = true

		return
	}

	Env = "development"
	Production = false
}

func init() {
	initEnvVariables()
}

func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}

// GetEnvInt returns the integer value of an environment variable, or fallback when unset or malformed.
func GetEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("invalid integer value for %s: %q, using %d", key, value, fallback)
		return fallback
	}

	return n
}

// GetEnvBool returns the boolean value of an environment variable, or fallback when unset or malformed.
func GetEnvBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}

	b, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("invalid boolean value for %s: %q, using %t", key, value, fallback)
		return fallback
	}

	return b
}
