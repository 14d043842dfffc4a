package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/joycemanzada/mlbscore/schema"
)

// Color variables for console output.
var (
	EliteColor   = color.New(color.FgGreen, color.Bold) // eliteColor marks the top tier.
	StrongColor  = color.New(color.FgCyan, color.Bold)  // strongColor marks clear contenders.
	AverageColor = color.New(color.FgYellow)            // averageColor marks the middle of the pack.
	WeakColor    = color.New(color.FgRed)               // weakColor marks the bottom tier.
)

// GetColorLabel returns a colored strength label for console output (table).
// It uses schema.GetPlainLabel to determine the string, then applies the color.
func GetColorLabel(score float64) string {
	text := schema.GetPlainLabel(score)

	switch text {
	case "Elite":
		return EliteColor.Sprint(text)
	case "Strong":
		return StrongColor.Sprint(text)
	case "Average":
		return AverageColor.Sprint(text)
	default: // "Weak"
		return WeakColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on the
// provided file path. It falls back to os.Stdout when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetCacheDBFilePath returns the path to the SQLite DB file for fetch-cache storage.
func GetCacheDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".mlbscore_cache.db"
	}
	return filepath.Join(homeDir, ".mlbscore_cache.db")
}

// GetHistoryDBFilePath returns the path to the SQLite DB file for run-history storage.
func GetHistoryDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".mlbscore_history.db"
	}
	return filepath.Join(homeDir, ".mlbscore_history.db")
}

// TruncateName truncates a team name to a maximum width with ellipsis suffix.
// Requires maxWidth > 3 so there is room for the ellipsis and some content.
func TruncateName(name string, maxWidth int) string {
	runes := []rune(name)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return name
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
