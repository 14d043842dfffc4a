package outwriter

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteChart(t *testing.T) {
	cfg := tableConfig()
	fmtFloat, _ := createFormatters(cfg.Precision)

	var buf bytes.Buffer
	err := writeChart(rankedFixture(), cfg, fmtFloat, 90*time.Millisecond, &buf)
	require.NoError(t, err)

	out := buf.String()
	lines := strings.Split(out, "\n")

	assert.Contains(t, lines[0], " 1. New York Yankees")
	assert.Contains(t, lines[0], "84.2")
	assert.Contains(t, lines[0], "(Elite)")
	assert.Contains(t, lines[1], " 2. Colorado Rockies")
	assert.Contains(t, lines[1], "(Weak)")
	assert.Contains(t, out, "Top 2 teams for the 2025 season")

	// The leader gets the full bar, the trailer a proportionally shorter one.
	topBars := strings.Count(lines[0], "█")
	lowBars := strings.Count(lines[1], "█")
	assert.Equal(t, maxBarWidth, topBars)
	assert.Less(t, lowBars, topBars)
	assert.Greater(t, lowBars, 0)
}

func TestWriteChart_Empty(t *testing.T) {
	cfg := tableConfig()
	fmtFloat, _ := createFormatters(cfg.Precision)

	var buf bytes.Buffer
	err := writeChart(nil, cfg, fmtFloat, time.Millisecond, &buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No teams to chart")
}
