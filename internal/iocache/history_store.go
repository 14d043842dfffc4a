package iocache

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/joycemanzada/mlbscore/internal/contract"
	"github.com/joycemanzada/mlbscore/schema"
)

// Table names for the run-history store.
const (
	runsTable       = "score_runs"
	teamScoresTable = "team_scores"
)

// HistoryStoreImpl records scoring runs and per-team scores in a SQL backend.
type HistoryStoreImpl struct {
	db      *sql.DB
	backend schema.DatabaseBackend
}

var _ contract.HistoryStore = &HistoryStoreImpl{} // Compile-time check

// NewHistoryStore initializes and returns a new HistoryStore based on the backend type.
func NewHistoryStore(backend schema.DatabaseBackend, connStr string) (contract.HistoryStore, error) {
	if backend == schema.NoneBackend {
		// Return a no-op store for disabled history tracking
		return &HistoryStoreImpl{db: nil, backend: backend}, nil
	}

	db, _, err := openBackend(backend, connStr, contract.GetHistoryDBFilePath())
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s database: %w", backend, err)
	}

	for _, query := range getHistorySchemaQueries(backend) {
		if _, err := db.Exec(query); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to create history tables: %w", err)
		}
	}

	return &HistoryStoreImpl{db: db, backend: backend}, nil
}

// getHistorySchemaQueries returns the CREATE TABLE queries for the backend.
func getHistorySchemaQueries(backend schema.DatabaseBackend) []string {
	var runs string
	switch backend {
	case schema.MySQLBackend:
		runs = fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id BIGINT AUTO_INCREMENT PRIMARY KEY,
				start_time BIGINT NOT NULL,
				end_time BIGINT,
				season INT NOT NULL,
				total_teams INT NOT NULL DEFAULT 0,
				params TEXT
			);
		`, quoteTableName(runsTable, backend))
	case schema.PostgreSQLBackend:
		runs = fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id BIGSERIAL PRIMARY KEY,
				start_time BIGINT NOT NULL,
				end_time BIGINT,
				season INTEGER NOT NULL,
				total_teams INTEGER NOT NULL DEFAULT 0,
				params TEXT
			);
		`, quoteTableName(runsTable, backend))
	default: // SQLite
		runs = fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id INTEGER PRIMARY KEY AUTOINCREMENT,
				start_time INTEGER NOT NULL,
				end_time INTEGER,
				season INTEGER NOT NULL,
				total_teams INTEGER NOT NULL DEFAULT 0,
				params TEXT
			);
		`, quoteTableName(runsTable, backend))
	}

	scoreType := "REAL"
	teamType := "TEXT"
	if backend == schema.MySQLBackend {
		scoreType = "DOUBLE"
		teamType = "VARCHAR(128)"
	} else if backend == schema.PostgreSQLBackend {
		scoreType = "DOUBLE PRECISION"
	}
	scores := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			run_id BIGINT NOT NULL,
			team %s NOT NULL,
			scored_at BIGINT NOT NULL,
			score %s NOT NULL,
			run_diff INTEGER NOT NULL,
			last_ten %s NOT NULL,
			xfip %s,
			wrc_plus %s,
			bullpen_xfip %s,
			label %s NOT NULL,
			PRIMARY KEY (run_id, team)
		);
	`, quoteTableName(teamScoresTable, backend), teamType, scoreType, teamType, scoreType, scoreType, scoreType, teamType)

	return []string{runs, scores}
}

// placeholders returns n parameter placeholders joined by commas for the backend.
func (hs *HistoryStoreImpl) placeholders(n int) []string {
	out := make([]string, n)
	for i := range n {
		if hs.backend == schema.PostgreSQLBackend {
			out[i] = fmt.Sprintf("$%d", i+1)
		} else {
			out[i] = "?"
		}
	}
	return out
}

// BeginRun creates a new scoring run and returns its unique ID.
func (hs *HistoryStoreImpl) BeginRun(startTime time.Time, season int, params map[string]any) (int64, error) {
	if hs.db == nil {
		return 0, nil
	}

	var paramsJSON *string
	if params != nil {
		if data, err := json.Marshal(params); err == nil {
			s := string(data)
			paramsJSON = &s
		}
	}

	table := quoteTableName(runsTable, hs.backend)
	ph := hs.placeholders(3)

	if hs.backend == schema.PostgreSQLBackend {
		query := fmt.Sprintf(`INSERT INTO %s (start_time, season, params) VALUES (%s, %s, %s) RETURNING run_id`,
			table, ph[0], ph[1], ph[2])
		var runID int64
		if err := hs.db.QueryRow(query, startTime.Unix(), season, paramsJSON).Scan(&runID); err != nil {
			return 0, fmt.Errorf("failed to begin run: %w", err)
		}
		return runID, nil
	}

	query := fmt.Sprintf(`INSERT INTO %s (start_time, season, params) VALUES (%s, %s, %s)`,
		table, ph[0], ph[1], ph[2])
	result, err := hs.db.Exec(query, startTime.Unix(), season, paramsJSON)
	if err != nil {
		return 0, fmt.Errorf("failed to begin run: %w", err)
	}
	runID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run ID: %w", err)
	}
	return runID, nil
}

// EndRun updates the scoring run with completion data.
func (hs *HistoryStoreImpl) EndRun(runID int64, endTime time.Time, totalTeams int) error {
	if hs.db == nil {
		return nil
	}

	table := quoteTableName(runsTable, hs.backend)
	ph := hs.placeholders(3)
	query := fmt.Sprintf(`UPDATE %s SET end_time = %s, total_teams = %s WHERE run_id = %s`,
		table, ph[0], ph[1], ph[2])
	if _, err := hs.db.Exec(query, endTime.Unix(), totalTeams, runID); err != nil {
		return fmt.Errorf("failed to end run %d: %w", runID, err)
	}
	return nil
}

// RecordTeamScore stores one team's final score for a run.
func (hs *HistoryStoreImpl) RecordTeamScore(runID int64, score schema.TeamScore) error {
	if hs.db == nil {
		return nil
	}

	table := quoteTableName(teamScoresTable, hs.backend)
	ph := hs.placeholders(10)
	query := fmt.Sprintf(`INSERT INTO %s (run_id, team, scored_at, score, run_diff, last_ten, xfip, wrc_plus, bullpen_xfip, label)
		VALUES (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s)`,
		table, ph[0], ph[1], ph[2], ph[3], ph[4], ph[5], ph[6], ph[7], ph[8], ph[9])

	_, err := hs.db.Exec(query,
		runID,
		score.Name,
		time.Now().Unix(),
		score.Score,
		score.RunDifferential,
		score.LastTen,
		score.XFIP,
		score.WRCPlus,
		score.BullpenXFIP,
		schema.GetPlainLabel(score.Score),
	)
	if err != nil {
		return fmt.Errorf("failed to record score for %s: %w", score.Name, err)
	}
	return nil
}

// ListRuns returns all stored runs, newest first.
func (hs *HistoryStoreImpl) ListRuns() ([]schema.RunRecord, error) {
	if hs.db == nil {
		return nil, nil
	}

	table := quoteTableName(runsTable, hs.backend)
	query := fmt.Sprintf(`SELECT run_id, start_time, end_time, season, total_teams, params FROM %s ORDER BY run_id DESC`, table)
	rows, err := hs.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []schema.RunRecord
	for rows.Next() {
		var rec schema.RunRecord
		var startUnix int64
		var endUnix sql.NullInt64
		var params sql.NullString
		if err := rows.Scan(&rec.RunID, &startUnix, &endUnix, &rec.Season, &rec.TotalTeams, &params); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		rec.StartTime = time.Unix(startUnix, 0)
		if endUnix.Valid {
			end := time.Unix(endUnix.Int64, 0)
			rec.EndTime = &end
		}
		if params.Valid {
			rec.Params = &params.String
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// ListTeamScores returns all stored per-team score rows.
func (hs *HistoryStoreImpl) ListTeamScores() ([]schema.TeamScoreRecord, error) {
	if hs.db == nil {
		return nil, nil
	}

	table := quoteTableName(teamScoresTable, hs.backend)
	query := fmt.Sprintf(`SELECT run_id, team, scored_at, score, run_diff, last_ten, xfip, wrc_plus, bullpen_xfip, label FROM %s ORDER BY run_id, team`, table)
	rows, err := hs.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list team scores: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []schema.TeamScoreRecord
	for rows.Next() {
		var rec schema.TeamScoreRecord
		var scoredUnix int64
		if err := rows.Scan(&rec.RunID, &rec.Team, &scoredUnix, &rec.Score, &rec.RunDiff, &rec.LastTen, &rec.XFIP, &rec.WRCPlus, &rec.BullpenFIP, &rec.Label); err != nil {
			return nil, fmt.Errorf("failed to scan team score: %w", err)
		}
		rec.ScoredAt = time.Unix(scoredUnix, 0)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// GetStatus returns status information about the history store.
func (hs *HistoryStoreImpl) GetStatus() (schema.HistoryStatus, error) {
	status := schema.HistoryStatus{
		Backend:    string(hs.backend),
		Connected:  hs.db != nil,
		TableSizes: make(map[string]int64),
	}

	if hs.db == nil {
		return status, nil
	}

	runs := quoteTableName(runsTable, hs.backend)
	scores := quoteTableName(teamScoresTable, hs.backend)

	row := hs.db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", runs))
	if err := row.Scan(&status.TotalRuns); err != nil {
		return status, fmt.Errorf("failed to count runs: %w", err)
	}
	status.TableSizes[runsTable] = int64(status.TotalRuns)

	var totalScores int64
	row = hs.db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", scores))
	if err := row.Scan(&totalScores); err != nil {
		return status, fmt.Errorf("failed to count team scores: %w", err)
	}
	status.TableSizes[teamScoresTable] = totalScores
	status.TotalTeamsScored = int(totalScores)

	if status.TotalRuns == 0 {
		return status, nil
	}

	var lastID, lastStart, oldestStart int64
	row = hs.db.QueryRow(fmt.Sprintf("SELECT MAX(run_id), MAX(start_time), MIN(start_time) FROM %s", runs))
	if err := row.Scan(&lastID, &lastStart, &oldestStart); err != nil {
		return status, fmt.Errorf("failed to get run times: %w", err)
	}
	status.LastRunID = lastID
	status.LastRunTime = time.Unix(lastStart, 0)
	status.OldestRunTime = time.Unix(oldestStart, 0)

	return status, nil
}

// Close closes the underlying DB connection.
func (hs *HistoryStoreImpl) Close() error {
	if hs.db != nil {
		return hs.db.Close()
	}
	return nil
}
