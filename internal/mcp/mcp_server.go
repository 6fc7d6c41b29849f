// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/techdebt/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the Tech Debt MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"Tech Debt Classification Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{baseCfg: baseCfg}

	// --- 1. Tool: get_tech_debt_report ---
	s.AddTool(mcp.NewTool("get_tech_debt_report",
		mcp.WithDescription("Classify high tech debt files per era from an exported history graph document."),
		mcp.WithString("input_path", mcp.Description("Path to the graph JSON document (one repository or an array)."), mcp.Required()),
		mcp.WithNumber("commit_pct", mcp.Description("Commit share threshold in percent. Defaults to the server setting.")),
		mcp.WithNumber("churn_pct", mcp.Description("Churn share threshold in percent. Defaults to the server setting.")),
	), h.handleGetTechDebtReport)

	// --- 2. Tool: get_classification_criteria ---
	s.AddTool(mcp.NewTool("get_classification_criteria",
		mcp.WithDescription("Describe the criteria and thresholds used to flag tech debt files."),
		mcp.WithNumber("commit_pct", mcp.Description("Commit share threshold in percent.")),
		mcp.WithNumber("churn_pct", mcp.Description("Churn share threshold in percent.")),
	), h.handleGetClassificationCriteria)

	return s
}

// StartMCPServer starts the Tech Debt MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config) error {
	s := NewMCPServer(baseCfg)
	return server.ServeStdio(s)
}
