package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/greatestleague/dashboard-api/internal/domain/league"
	"github.com/greatestleague/dashboard-api/internal/platform/logging"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv         string
	ServiceName    string
	ServiceVersion string
	HTTPAddr       string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration

	CORSAllowedOrigins []string

	CacheEnabled bool
	CacheTTL     time.Duration

	DataDir              string
	MatchupsFile         string
	RegularStandingsFile string
	FinalStandingsFile   string
	TeamAliasesFile      string

	ScrapeEnabled           bool
	ScrapeBaseURL           string
	ScrapeTimeout           time.Duration
	ScrapeMaxRetries        int
	ScrapeRequestsPerSecond float64

	League league.Settings

	PprofEnabled bool
	PprofAddr    string

	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration

	LogLevel logging.Level
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	cacheEnabled, err := strconv.ParseBool(getEnv("CACHE_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_ENABLED: %w", err)
	}
	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "60s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_TTL: %w", err)
	}
	if cacheTTL <= 0 {
		return Config{}, fmt.Errorf("CACHE_TTL must be > 0")
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	scrapeEnabled, err := strconv.ParseBool(getEnv("SCRAPE_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SCRAPE_ENABLED: %w", err)
	}
	scrapeBaseURL := strings.TrimSpace(getEnv("SCRAPE_BASE_URL", "https://fantasy.nfl.com"))
	if scrapeEnabled && scrapeBaseURL == "" {
		return Config{}, fmt.Errorf("SCRAPE_BASE_URL is required when SCRAPE_ENABLED=true")
	}
	scrapeTimeout, err := time.ParseDuration(getEnv("SCRAPE_TIMEOUT", "20s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SCRAPE_TIMEOUT: %w", err)
	}
	if scrapeTimeout <= 0 {
		return Config{}, fmt.Errorf("SCRAPE_TIMEOUT must be > 0")
	}
	scrapeMaxRetries, err := getEnvAsInt("SCRAPE_MAX_RETRIES", 0)
	if err != nil {
		return Config{}, fmt.Errorf("parse SCRAPE_MAX_RETRIES: %w", err)
	}
	if scrapeMaxRetries < 0 {
		return Config{}, fmt.Errorf("SCRAPE_MAX_RETRIES must be >= 0")
	}
	scrapeRPS, err := getEnvAsFloat("SCRAPE_REQUESTS_PER_SECOND", 2.0)
	if err != nil {
		return Config{}, fmt.Errorf("parse SCRAPE_REQUESTS_PER_SECOND: %w", err)
	}
	if scrapeRPS <= 0 {
		return Config{}, fmt.Errorf("SCRAPE_REQUESTS_PER_SECOND must be > 0")
	}

	leagueSettings, err := loadLeagueSettings()
	if err != nil {
		return Config{}, err
	}

	dataDir := strings.TrimSpace(getEnv("DATA_DIR", "data"))
	if dataDir == "" {
		return Config{}, fmt.Errorf("DATA_DIR cannot be empty")
	}

	cfg := Config{
		AppEnv:                     appEnv,
		ServiceName:                getEnv("APP_SERVICE_NAME", "dashboard-api"),
		ServiceVersion:             getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                   getEnv("APP_HTTP_ADDR", ":8080"),
		ReadTimeout:                readTimeout,
		WriteTimeout:               writeTimeout,
		CORSAllowedOrigins:         splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		CacheEnabled:               cacheEnabled,
		CacheTTL:                   cacheTTL,
		DataDir:                    dataDir,
		MatchupsFile:               getEnv("MATCHUPS_FILE", filepath.Join(dataDir, "matchups.csv")),
		RegularStandingsFile:       getEnv("REGULAR_STANDINGS_FILE", filepath.Join(dataDir, "regular_standings.csv")),
		FinalStandingsFile:         getEnv("FINAL_STANDINGS_FILE", filepath.Join(dataDir, "final_standings.csv")),
		TeamAliasesFile:            strings.TrimSpace(getEnv("TEAM_ALIASES_FILE", "")),
		ScrapeEnabled:              scrapeEnabled,
		ScrapeBaseURL:              scrapeBaseURL,
		ScrapeTimeout:              scrapeTimeout,
		ScrapeMaxRetries:           scrapeMaxRetries,
		ScrapeRequestsPerSecond:    scrapeRPS,
		League:                     leagueSettings,
		PprofEnabled:               pprofEnabled,
		PprofAddr:                  pprofAddr,
		PyroscopeEnabled:           pyroscopeEnabled,
		PyroscopeServerAddress:     pyroscopeServerAddress,
		PyroscopeAuthToken:         strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:     strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword: strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:        pyroscopeUploadRate,
		LogLevel:                   parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	return cfg, nil
}

func loadLeagueSettings() (league.Settings, error) {
	settings := league.DefaultSettings()
	settings.ID = strings.TrimSpace(getEnv("LEAGUE_ID", settings.ID))
	if settings.ID == "" {
		return league.Settings{}, fmt.Errorf("LEAGUE_ID cannot be empty")
	}
	settings.Name = getEnv("LEAGUE_NAME", settings.Name)

	ints := []struct {
		key      string
		dst      *int
		minValue int
	}{
		{"LEAGUE_CURRENT_SEASON", &settings.CurrentSeason, 1},
		{"LEAGUE_COMPLETED_SEASON_CUTOFF", &settings.CompletedSeasonCutoff, 1},
		{"LEAGUE_FINAL_WEEK", &settings.FinalWeek, 1},
		{"LEAGUE_SIZE", &settings.LeagueSize, 2},
		{"LEAGUE_PLAYOFF_SPOTS", &settings.PlayoffSpots, 1},
		{"LEAGUE_MIN_RIVALRY_GAMES", &settings.MinRivalryGames, 1},
		{"LEAGUE_MIN_CONSISTENCY_GAMES", &settings.MinConsistencyGames, 1},
		{"LEAGUE_MIN_CLOSE_GAMES", &settings.MinCloseGames, 1},
		{"LEAGUE_PERFECT_SEASON_MIN_WINS", &settings.PerfectSeasonMinWins, 1},
	}
	for _, item := range ints {
		value, err := getEnvAsInt(item.key, *item.dst)
		if err != nil {
			return league.Settings{}, fmt.Errorf("parse %s: %w", item.key, err)
		}
		if value < item.minValue {
			return league.Settings{}, fmt.Errorf("%s must be >= %d", item.key, item.minValue)
		}
		*item.dst = value
	}

	floats := []struct {
		key string
		dst *float64
	}{
		{"LEAGUE_CLOSE_GAME_MARGIN", &settings.CloseGameMargin},
		{"LEAGUE_HIGH_SCORE_LOSS_MIN", &settings.HighScoreLossMin},
		{"LEAGUE_LOW_SCORE_WIN_MAX", &settings.LowScoreWinMax},
	}
	for _, item := range floats {
		value, err := getEnvAsFloat(item.key, *item.dst)
		if err != nil {
			return league.Settings{}, fmt.Errorf("parse %s: %w", item.key, err)
		}
		if value <= 0 {
			return league.Settings{}, fmt.Errorf("%s must be > 0", item.key)
		}
		*item.dst = value
	}

	if settings.PlayoffSpots >= settings.LeagueSize {
		return league.Settings{}, fmt.Errorf("LEAGUE_PLAYOFF_SPOTS must be smaller than LEAGUE_SIZE")
	}
	if settings.CompletedSeasonCutoff > settings.CurrentSeason {
		return league.Settings{}, fmt.Errorf("LEAGUE_COMPLETED_SEASON_CUTOFF cannot exceed LEAGUE_CURRENT_SEASON")
	}

	return settings, nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func getEnvAsFloat(key string, fallback float64) (float64, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
