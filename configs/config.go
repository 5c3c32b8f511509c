package configs

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver  string
	DBSource  string
	Port      string
	JWTSecret string
	JWTTTL    time.Duration

	UploadDir          string
	Location           *time.Location
	MapsResolveTimeout time.Duration
	TrackingBaseURL    string
	CORSOrigins        []string

	AdminEmail    string
	AdminPassword string
	StaffEmail    string
	StaffPassword string
	SeedDemo      bool
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("ℹ️ no .env file, using process environment")
	}

	return &Config{
		DBDriver:           getEnv("DB_DRIVER", "sqlite"),
		DBSource:           getEnv("DB_SOURCE", "dashboard.db"),
		Port:               getEnv("PORT", "8000"),
		JWTSecret:          getEnv("JWT_SECRET", "changeme"),
		JWTTTL:             getDuration("JWT_TTL", 24*time.Hour),
		UploadDir:          getEnv("UPLOAD_DIR", "./public"),
		Location:           loadLocation(getEnv("APP_TIMEZONE", "Asia/Jakarta")),
		MapsResolveTimeout: getDuration("MAPS_RESOLVE_TIMEOUT", 5*time.Second),
		TrackingBaseURL:    getEnv("TRACKING_BASE_URL", "https://kojain.store/track/"),
		CORSOrigins:        splitList(getEnv("CORS_ORIGINS", "*")),
		AdminEmail:         getEnv("ADMIN_EMAIL", ""),
		AdminPassword:      getEnv("ADMIN_PASSWORD", ""),
		StaffEmail:         getEnv("STAFF_EMAIL", ""),
		StaffPassword:      getEnv("STAFF_PASSWORD", ""),
		SeedDemo:           getBool("SEED_DEMO", false),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("⚠️ invalid %s=%q, using %s", key, v, fallback)
		return fallback
	}
	return d
}

func getBool(key string, fallback bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// loadLocation falls back to a fixed WIB offset when tzdata is unavailable.
func loadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("⚠️ unknown timezone %q, using UTC+7", name)
		return time.FixedZone("WIB", 7*60*60)
	}
	return loc
}
