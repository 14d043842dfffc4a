package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/joycemanzada/mlbscore/core"
	"github.com/joycemanzada/mlbscore/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.CacheManager
}

func (h *toolHandler) handleRankTeams(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if s := request.GetInt("season", 0); s > 0 {
		cfg.ApplySeason(s)
	}
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = l
	}
	if seed := request.GetInt("seed", 0); seed != 0 {
		cfg.Seed = int64(seed)
	}

	ranked, err := core.GetRankResults(ctx, cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("scoring failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(ranked, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleCompareTeams(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.TeamA = request.GetString("team_a", "")
	cfg.TeamB = request.GetString("team_b", "")
	if cfg.TeamA == "" || cfg.TeamB == "" {
		return mcp.NewToolResultError("team_a and team_b are required"), nil
	}
	if s := request.GetInt("season", 0); s > 0 {
		cfg.ApplySeason(s)
	}
	if seed := request.GetInt("seed", 0); seed != 0 {
		cfg.Seed = int64(seed)
	}

	matchup, err := core.GetMatchupResults(ctx, cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("comparison failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(matchup, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
