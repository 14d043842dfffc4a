package schema

// Custom string types for type safety.
type (
	// MetricKey identifies one weighted metric in the composite score.
	MetricKey string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for caching and history.
	DatabaseBackend string
)

// All weighted metrics.
const (
	MetricXFIP        MetricKey = "xfip"
	MetricWRCPlus     MetricKey = "wrc_plus"
	MetricBullpenXFIP MetricKey = "bullpen_xfip"
	MetricWHIP        MetricKey = "whip"
	MetricOPSVsHand   MetricKey = "ops_vs_hand"
	MetricKRate       MetricKey = "k_rate"
	MetricDRS         MetricKey = "drs"
	MetricRunDiff     MetricKey = "run_diff"
	MetricLastTen     MetricKey = "last_ten"
	MetricRestTravel  MetricKey = "rest_travel"
)

// All output modes supported.
const (
	TextOut OutputMode = "text" // default
	CSVOut  OutputMode = "csv"
	JSONOut OutputMode = "json"
)

// All cache/history backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// AllMetricKeys lists every weighted metric in presentation order.
var AllMetricKeys = []MetricKey{
	MetricXFIP,
	MetricWRCPlus,
	MetricBullpenXFIP,
	MetricWHIP,
	MetricOPSVsHand,
	MetricKRate,
	MetricDRS,
	MetricRunDiff,
	MetricLastTen,
	MetricRestTravel,
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut: {},
	CSVOut:  {},
	JSONOut: {},
}

// ValidDatabaseBackends lists all valid cache/history backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// LowerIsBetter marks metrics where a smaller raw value normalizes toward 1.
// Everything else is higher-is-better, except MetricLastTen which has its own
// win-percentage rule.
var LowerIsBetter = map[MetricKey]bool{
	MetricXFIP:        true,
	MetricBullpenXFIP: true,
	MetricWHIP:        true,
	MetricKRate:       true,
	MetricRestTravel:  true,
}

// MetricDisplayNames maps metric keys to the labels used in tables and charts.
var MetricDisplayNames = map[MetricKey]string{
	MetricXFIP:        "xFIP",
	MetricWRCPlus:     "wRC+",
	MetricBullpenXFIP: "Bullpen xFIP",
	MetricWHIP:        "WHIP",
	MetricOPSVsHand:   "OPS vs Hand",
	MetricKRate:       "K%",
	MetricDRS:         "DRS",
	MetricRunDiff:     "Run Diff",
	MetricLastTen:     "L10 Record",
	MetricRestTravel:  "Rest/Travel",
}

// DisplayName returns the presentation label for a metric key.
func (k MetricKey) DisplayName() string {
	if name, ok := MetricDisplayNames[k]; ok {
		return name
	}
	return string(k)
}

// GetDefaultWeights returns the default weight for every metric. The weights
// sum to 100, so a team that leads every column scores 100.
func GetDefaultWeights() map[MetricKey]float64 {
	return map[MetricKey]float64{
		MetricXFIP:        20,
		MetricWRCPlus:     15,
		MetricBullpenXFIP: 10,
		MetricWHIP:        10,
		MetricOPSVsHand:   10,
		MetricKRate:       7,
		MetricDRS:         6,
		MetricRunDiff:     7,
		MetricLastTen:     7,
		MetricRestTravel:  8,
	}
}
