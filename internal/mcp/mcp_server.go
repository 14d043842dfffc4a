// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/joycemanzada/mlbscore/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the mlbscore MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.CacheManager) *server.MCPServer {
	s := server.NewMCPServer(
		"MLB Scoring Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: rank_teams ---
	s.AddTool(mcp.NewTool("rank_teams",
		mcp.WithDescription("Score and rank all MLB teams for a season using standings and leaderboard data."),
		mcp.WithNumber("season", mcp.Description("Season year to score (defaults to the configured season).")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of results returned.")),
		mcp.WithNumber("seed", mcp.Description("Sampler seed for reproducible scouting metrics (0 = random).")),
	), h.handleRankTeams)

	// --- 2. Tool: compare_teams ---
	s.AddTool(mcp.NewTool("compare_teams",
		mcp.WithDescription("Compare two MLB teams metric by metric using their score breakdowns."),
		mcp.WithString("team_a", mcp.Description("First team name, as it appears in the standings."), mcp.Required()),
		mcp.WithString("team_b", mcp.Description("Second team name, as it appears in the standings."), mcp.Required()),
		mcp.WithNumber("season", mcp.Description("Season year to score (defaults to the configured season).")),
		mcp.WithNumber("seed", mcp.Description("Sampler seed for reproducible scouting metrics (0 = random).")),
	), h.handleCompareTeams)

	return s
}

// StartMCPServer starts the mlbscore MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.CacheManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
