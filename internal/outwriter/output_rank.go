package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/joycemanzada/mlbscore/internal/contract"
	"github.com/joycemanzada/mlbscore/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintRankResults outputs the ranked teams, dispatching based on the output format configured.
func PrintRankResults(ranked []schema.RankedTeamScore, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeRankJSONResults(ranked, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeRankCSVResults(ranked, cfg, fmtFloat, intFmt); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRankTable(ranked, cfg, fmtFloat, intFmt, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeRankJSONResults handles opening the file and calling the JSON writer.
func writeRankJSONResults(ranked []schema.RankedTeamScore, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, ranked)
	}, "Wrote JSON")
}

// writeRankCSVResults handles opening the file and calling the CSV writer.
func writeRankCSVResults(ranked []schema.RankedTeamScore, cfg *contract.Config, fmtFloat func(float64) string, intFmt string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{
			"rank",
			"team",
			"score",
			"label",
			"xfip",
			"wrc_plus",
			"bullpen_xfip",
			"whip",
			"ops_vs_hand",
			"k_rate",
			"drs",
			"run_diff",
			"last_ten",
			"rest_travel",
		}
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			return writeCSVResultsForRanks(csvWriter, ranked, fmtFloat, intFmt)
		})
	}, "Wrote CSV")
}

// writeRankTable generates and writes the human-readable table.
func writeRankTable(ranked []schema.RankedTeamScore, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{"Rank", "Team", "Score", "Label", "xFIP", "wRC+", "BP xFIP", "Diff", "L10"}
	table.Header(headers)

	// 2. Configure alignment for a minimal numeric look
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	label := schema.GetPlainLabel
	if cfg.UseColors {
		label = contract.GetColorLabel
	}
	var data [][]string
	for _, r := range ranked {
		row := []string{
			strconv.Itoa(r.Rank), // Rank
			contract.TruncateName(r.Name, GetMaxTableNameWidth(cfg)), // Team
			fmtFloat(r.Score),                       // Score
			label(r.Score),                          // Label
			formatJoined(r.XFIP, fmtFloat),          // xFIP
			formatJoined(r.WRCPlus, fmtFloat),       // wRC+
			formatJoined(r.BullpenXFIP, fmtFloat),   // Bullpen xFIP
			fmt.Sprintf(intFmt, r.RunDifferential),  // Run differential
			r.LastTen,                               // Last ten record
		}
		data = append(data, row)
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Showing top %d teams for the %d season\n", len(ranked), cfg.Season); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Scoring completed in %v. Cache backend: %s\n", duration, cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}

// writeCSVResultsForRanks writes the ranked teams in CSV format.
func writeCSVResultsForRanks(w *csv.Writer, ranked []schema.RankedTeamScore, fmtFloat func(float64) string, intFmt string) error {
	csvJoined := func(v *float64) string {
		if v == nil {
			return ""
		}
		return fmtFloat(*v)
	}
	for _, r := range ranked {
		rec := []string{
			strconv.Itoa(r.Rank),                   // Rank
			r.Name,                                 // Team
			fmtFloat(r.Score),                      // Score
			r.Label,                                // Label
			csvJoined(r.XFIP),                      // xFIP
			csvJoined(r.WRCPlus),                   // wRC+
			csvJoined(r.BullpenXFIP),               // Bullpen xFIP
			fmtFloat(r.WHIP),                       // WHIP
			fmtFloat(r.OPSVsHand),                  // OPS vs hand
			fmtFloat(r.KRate),                      // K rate
			fmt.Sprintf(intFmt, r.DRS),             // DRS
			fmt.Sprintf(intFmt, r.RunDifferential), // Run differential
			r.LastTen,                              // Last ten record
			fmt.Sprintf(intFmt, r.RestTravel),      // Rest and travel burden
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}
