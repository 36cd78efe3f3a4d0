package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cast"

	"github.com/doeshing/gemsearch/internal/domain"
)

const (
	toolSearch        = "gemini_search"
	toolClearCache    = "clear_cache"
	toolSearchHistory = "search_history"
)

func (s *Server) registerTools() {
	s.mcp.AddTool(mcp.NewTool(toolSearch,
		mcp.WithDescription("Search the web through the Gemini CLI and return the answer text. Results are cached for an hour per exact query."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description(fmt.Sprintf("Search query, 1 to %d characters", domain.MaxQueryLength)),
		),
		mcp.WithBoolean("use_cache",
			mcp.DefaultBool(true),
			mcp.Description("Serve a cached result when available and store fresh results"),
		),
	), s.handleSearch)

	s.mcp.AddTool(mcp.NewTool(toolClearCache,
		mcp.WithDescription("Remove one cached query, or every cached result when no query is given."),
		mcp.WithString("query", mcp.Description("Exact query to remove; omit to clear the whole cache")),
	), s.handleClearCache)

	s.mcp.AddTool(mcp.NewTool(toolSearchHistory,
		mcp.WithDescription("List recent searches, most recent first."),
		mcp.WithNumber("limit",
			mcp.DefaultNumber(domain.DefaultHistoryLimit),
			mcp.Min(1),
			mcp.Max(domain.MaxHistory),
			mcp.Description("Maximum number of records to return"),
		),
		mcp.WithBoolean("include_errors",
			mcp.DefaultBool(false),
			mcp.Description("Include failed searches"),
		),
	), s.handleSearchHistory)
}

func (s *Server) handleSearch(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	query := cast.ToString(args["query"])
	useCache := boolArg(args, "use_cache", true)

	result, err := s.search.Execute(query, useCache)
	if err != nil {
		return mcp.NewToolResultError(renderError(err)), nil
	}
	return mcp.NewToolResultText(result), nil
}

func (s *Server) handleClearCache(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := cast.ToString(req.GetArguments()["query"])
	if query == "" {
		n := s.search.ClearCache()
		return mcp.NewToolResultText(fmt.Sprintf("Cleared %d cached result(s).", n)), nil
	}
	if s.search.ClearCacheEntry(query) {
		return mcp.NewToolResultText(fmt.Sprintf("Removed cached result for %q.", query)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("No cached result for %q.", query)), nil
}

func (s *Server) handleSearchHistory(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	limit := domain.DefaultHistoryLimit
	if v, ok := args["limit"]; ok {
		limit = cast.ToInt(v)
	}
	if limit < 1 {
		limit = 1
	}
	if limit > domain.MaxHistory {
		limit = domain.MaxHistory
	}

	records := s.search.RecentHistory(limit, boolArg(args, "include_errors", false))
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode history: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

// renderError shows the "<Kind>: <detail>" message followed by a remediation hint.
func renderError(err error) string {
	return err.Error() + "\n\nHint: " + domain.Hint(domain.KindOf(err))
}

func boolArg(args map[string]any, key string, fallback bool) bool {
	v, ok := args[key]
	if !ok || v == nil {
		return fallback
	}
	return cast.ToBool(v)
}
