package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/huangsam/techdebt/core"
	"github.com/huangsam/techdebt/internal/contract"
	"github.com/huangsam/techdebt/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
}

// reportPayload is the tool result of get_tech_debt_report.
type reportPayload struct {
	Thresholds   schema.Thresholds    `json:"thresholds"`
	Repositories []schema.RepoSummary `json:"repositories"`
	Skipped      []string             `json:"skipped,omitempty"`
}

// thresholdsFrom overrides the base thresholds with request arguments.
func (h *toolHandler) thresholdsFrom(request mcp.CallToolRequest) (schema.Thresholds, error) {
	th := h.baseCfg.Thresholds
	th.CommitPct = request.GetFloat("commit_pct", th.CommitPct)
	th.ChurnPct = request.GetFloat("churn_pct", th.ChurnPct)
	return th, contract.ValidateThresholds(th)
}

func (h *toolHandler) handleGetTechDebtReport(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	inputPath := strings.TrimSpace(request.GetString("input_path", ""))
	if inputPath == "" {
		return mcp.NewToolResultError("input_path is required"), nil
	}
	th, err := h.thresholdsFrom(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid thresholds: %v", err)), nil
	}

	report, err := core.GetTechDebtReport(core.WithSuppressHeader(ctx), inputPath, th)
	if err != nil && len(report.Repositories) == 0 {
		return mcp.NewToolResultError(fmt.Sprintf("classification failed: %v", err)), nil
	}

	payload := reportPayload{Thresholds: th, Repositories: report.Repositories}
	if err != nil {
		payload.Skipped = strings.Split(err.Error(), "\n")
	}
	jsonData, _ := json.MarshalIndent(payload, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetClassificationCriteria(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	th, err := h.thresholdsFrom(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid thresholds: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(core.BuildCriteriaRenderModel(th), "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
