package contract

import (
	"fmt"
	"maps"
	"strings"
	"time"

	"github.com/joycemanzada/mlbscore/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit = 30
	MaxResultLimit     = 100
	DefaultPrecision   = 1
	DefaultChartLimit  = 10
	DefaultCacheTTL    = time.Hour
	DefaultHTTPTimeout = 30 * time.Second
	MinSeason          = 1901
)

// Default source endpoints. The season is substituted at validation time.
const (
	DefaultStandingsURLFormat = "https://statsapi.mlb.com/api/v1/standings?leagueId=103,104&season=%d&standingsTypes=regularSeason"
	DefaultXFIPURLFormat      = "https://www.fangraphs.com/leaders-legacy.aspx?pos=all&stats=pit&lg=all&type=1&season=%d"
	DefaultWRCPlusURLFormat   = "https://www.fangraphs.com/leaders-legacy.aspx?pos=all&stats=bat&lg=all&type=8&season=%d"
	DefaultBullpenURLFormat   = "https://www.fangraphs.com/leaders-legacy.aspx?pos=all&stats=rel&lg=all&type=1&season=%d"
)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// Config holds the runtime configuration for the scoring pipeline.
// This struct remains the "final, validated" config.
type Config struct {
	Season      int
	ResultLimit int
	ChartLimit  int
	Precision   int
	Output      schema.OutputMode
	OutputFile  string
	Width       int // Terminal width override (0 = auto-detect)
	UseColors   bool

	Seed     int64 // Sampler seed for enrichment metrics (0 = time-derived)
	Timeout  time.Duration
	CacheTTL time.Duration

	StandingsURL string
	Sources      []LeaderboardSource // The three leaderboard sources, in join order

	// Weights is the final weight map, computed from defaults + config overrides.
	Weights map[schema.MetricKey]float64

	CacheBackend   schema.DatabaseBackend
	CacheDBConnect string // Please use env var as this is plaintext

	HistoryBackend   schema.DatabaseBackend
	HistoryDBConnect string // Please use env var as this is plaintext

	// TeamA and TeamB are set from matchup positional arguments.
	TeamA string
	TeamB string
}

// WeightsRawInput holds weight overrides from the YAML config file.
// Use float64 pointers so absent fields fall back to defaults.
type WeightsRawInput struct {
	XFIP        *float64 `mapstructure:"xfip"`
	WRCPlus     *float64 `mapstructure:"wrc_plus"`
	BullpenXFIP *float64 `mapstructure:"bullpen_xfip"`
	WHIP        *float64 `mapstructure:"whip"`
	OPSVsHand   *float64 `mapstructure:"ops_vs_hand"`
	KRate       *float64 `mapstructure:"k_rate"`
	DRS         *float64 `mapstructure:"drs"`
	RunDiff     *float64 `mapstructure:"run_diff"`
	LastTen     *float64 `mapstructure:"last_ten"`
	RestTravel  *float64 `mapstructure:"rest_travel"`
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// --- Fields from rootCmd.PersistentFlags() ---
	Season           int    `mapstructure:"season"`
	Limit            int    `mapstructure:"limit"`
	Precision        int    `mapstructure:"precision"`
	Output           string `mapstructure:"output"`
	OutputFile       string `mapstructure:"output-file"`
	Width            int    `mapstructure:"width"`
	Color            string `mapstructure:"color"`
	Seed             int64  `mapstructure:"seed"`
	Timeout          string `mapstructure:"timeout"`
	CacheTTL         string `mapstructure:"cache-ttl"`
	StandingsURL     string `mapstructure:"standings-url"`
	XFIPURL          string `mapstructure:"xfip-url"`
	WRCPlusURL       string `mapstructure:"wrc-url"`
	BullpenURL       string `mapstructure:"bullpen-url"`
	CacheBackend     string `mapstructure:"cache-backend"`
	CacheDBConnect   string `mapstructure:"cache-db-connect"`
	HistoryBackend   string `mapstructure:"history-backend"`
	HistoryDBConnect string `mapstructure:"history-db-connect"`

	// --- Fields from chartCmd.Flags() ---
	Top int `mapstructure:"top"`

	// --- Weight overrides from config file ---
	Weights WeightsRawInput `mapstructure:"weights"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Sources != nil {
		clone.Sources = make([]LeaderboardSource, len(c.Sources))
		copy(clone.Sources, c.Sources)
	}
	if c.Weights != nil {
		clone.Weights = make(map[schema.MetricKey]float64, len(c.Weights))
		maps.Copy(clone.Weights, c.Weights)
	}
	return &clone
}

// ApplySeason updates the season and regenerates the default source URLs.
// Custom URL overrides are discarded since they are season-specific.
func (c *Config) ApplySeason(season int) {
	c.Season = season
	c.StandingsURL = fmt.Sprintf(DefaultStandingsURLFormat, season)
	c.Sources = buildLeaderboardSources(season, &ConfigRawInput{})
}

// ProcessAndValidate turns raw input into the final validated Config.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	// 1. Season
	season := input.Season
	if season == 0 {
		season = time.Now().Year()
	}
	if season < MinSeason || season > time.Now().Year()+1 {
		return fmt.Errorf("season %d is out of range (%d..%d)", season, MinSeason, time.Now().Year()+1)
	}
	cfg.Season = season

	// 2. Limits and precision
	if input.Limit <= 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be between 1 and %d", MaxResultLimit)
	}
	cfg.ResultLimit = input.Limit
	cfg.ChartLimit = input.Top
	if cfg.ChartLimit <= 0 {
		cfg.ChartLimit = DefaultChartLimit
	}
	cfg.Precision = min(max(input.Precision, 1), 3)

	// 3. Output mode
	output := schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[output]; !ok {
		return fmt.Errorf("invalid output mode: %s. Must be text, csv, or json", input.Output)
	}
	cfg.Output = output
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width

	// 4. Colors
	useColors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid color setting: %w", err)
	}
	cfg.UseColors = useColors

	// 5. Durations
	cfg.Timeout = DefaultHTTPTimeout
	if input.Timeout != "" {
		d, err := time.ParseDuration(input.Timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout: %w", err)
		}
		cfg.Timeout = d
	}
	cfg.CacheTTL = DefaultCacheTTL
	if input.CacheTTL != "" {
		d, err := time.ParseDuration(input.CacheTTL)
		if err != nil {
			return fmt.Errorf("invalid cache-ttl: %w", err)
		}
		if d < 0 {
			return fmt.Errorf("cache-ttl cannot be negative")
		}
		cfg.CacheTTL = d
	}

	cfg.Seed = input.Seed

	// 6. Source URLs with per-season defaults
	cfg.StandingsURL = input.StandingsURL
	if cfg.StandingsURL == "" {
		cfg.StandingsURL = fmt.Sprintf(DefaultStandingsURLFormat, season)
	}
	cfg.Sources = buildLeaderboardSources(season, input)

	// 7. Weights: defaults merged with config-file overrides
	weights, err := computeWeights(&input.Weights)
	if err != nil {
		return err
	}
	cfg.Weights = weights

	// 8. Backends
	cacheBackend, err := parseBackend(input.CacheBackend, schema.SQLiteBackend)
	if err != nil {
		return fmt.Errorf("invalid cache-backend: %w", err)
	}
	if err := ValidateDatabaseConnectionString(cacheBackend, input.CacheDBConnect); err != nil {
		return err
	}
	cfg.CacheBackend = cacheBackend
	cfg.CacheDBConnect = input.CacheDBConnect

	historyBackend, err := parseBackend(input.HistoryBackend, schema.NoneBackend)
	if err != nil {
		return fmt.Errorf("invalid history-backend: %w", err)
	}
	if err := ValidateDatabaseConnectionString(historyBackend, input.HistoryDBConnect); err != nil {
		return err
	}
	cfg.HistoryBackend = historyBackend
	cfg.HistoryDBConnect = input.HistoryDBConnect

	return nil
}

// buildLeaderboardSources returns the three leaderboard sources in join order,
// honoring URL overrides from config.
func buildLeaderboardSources(season int, input *ConfigRawInput) []LeaderboardSource {
	xfipURL := input.XFIPURL
	if xfipURL == "" {
		xfipURL = fmt.Sprintf(DefaultXFIPURLFormat, season)
	}
	wrcURL := input.WRCPlusURL
	if wrcURL == "" {
		wrcURL = fmt.Sprintf(DefaultWRCPlusURLFormat, season)
	}
	bullpenURL := input.BullpenURL
	if bullpenURL == "" {
		bullpenURL = fmt.Sprintf(DefaultBullpenURLFormat, season)
	}

	return []LeaderboardSource{
		{URL: xfipURL, Metric: schema.MetricXFIP, StatHeader: "xFIP"},
		{URL: wrcURL, Metric: schema.MetricWRCPlus, StatHeader: "wRC+"},
		{URL: bullpenURL, Metric: schema.MetricBullpenXFIP, StatHeader: "xFIP"},
	}
}

// computeWeights merges the default weight map with any config-file overrides.
// Negative weights are rejected; a zero weight removes the metric from scoring.
func computeWeights(raw *WeightsRawInput) (map[schema.MetricKey]float64, error) {
	weights := schema.GetDefaultWeights()

	overrides := map[schema.MetricKey]*float64{
		schema.MetricXFIP:        raw.XFIP,
		schema.MetricWRCPlus:     raw.WRCPlus,
		schema.MetricBullpenXFIP: raw.BullpenXFIP,
		schema.MetricWHIP:        raw.WHIP,
		schema.MetricOPSVsHand:   raw.OPSVsHand,
		schema.MetricKRate:       raw.KRate,
		schema.MetricDRS:         raw.DRS,
		schema.MetricRunDiff:     raw.RunDiff,
		schema.MetricLastTen:     raw.LastTen,
		schema.MetricRestTravel:  raw.RestTravel,
	}
	for key, value := range overrides {
		if value == nil {
			continue
		}
		if *value < 0 {
			return nil, fmt.Errorf("weight for %s cannot be negative: %g", key, *value)
		}
		if *value == 0 {
			delete(weights, key)
			continue
		}
		weights[key] = *value
	}
	return weights, nil
}

// parseBackend resolves a backend string, falling back to a default when empty.
func parseBackend(s string, fallback schema.DatabaseBackend) (schema.DatabaseBackend, error) {
	if s == "" {
		return fallback, nil
	}
	backend := schema.DatabaseBackend(strings.ToLower(s))
	if _, ok := schema.ValidDatabaseBackends[backend]; !ok {
		return "", fmt.Errorf("unsupported backend: %s. Must be sqlite, mysql, postgresql, or none", s)
	}
	return backend, nil
}

// ProfileConfig holds profiling configuration.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// ProcessProfilingConfig enables profiling when a prefix is set.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}

// ValidateDatabaseConnectionString performs basic validation for database backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("mysql backend requires a connection string (user:password@tcp(host:port)/dbname)")
		}
		if !strings.Contains(connStr, "@") {
			return fmt.Errorf("mysql connection string looks malformed: expected user:password@tcp(host:port)/dbname")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("postgresql backend requires a connection string (host=... port=... user=... dbname=...)")
		}
	case schema.SQLiteBackend, schema.NoneBackend:
		// SQLite falls back to the default file path; none ignores the string.
	}
	return nil
}
