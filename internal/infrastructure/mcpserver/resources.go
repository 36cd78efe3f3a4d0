package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/doeshing/gemsearch/internal/domain"
)

const (
	uriCacheStatus = "search://cache/status"
	uriHistory     = "search://history"
	uriStats       = "search://stats"
	mimeJSON       = "application/json"
)

// statsView is the payload of the stats resource.
type statsView struct {
	History         domain.HistoryStats `json:"history"`
	CacheEntries    int                 `json:"cache_entries"`
	CacheTTLMinutes float64             `json:"cache_ttl_minutes"`
}

func (s *Server) registerResources() {
	s.mcp.AddResource(mcp.NewResource(uriCacheStatus, "Cache status",
		mcp.WithResourceDescription("Cached queries with their age and expiry"),
		mcp.WithMIMEType(mimeJSON),
	), s.readCacheStatus)

	s.mcp.AddResource(mcp.NewResource(uriHistory, "Search history",
		mcp.WithResourceDescription(fmt.Sprintf("The %d most recent searches, failures included", domain.DefaultHistoryResourceLimit)),
		mcp.WithMIMEType(mimeJSON),
	), s.readHistory)

	s.mcp.AddResource(mcp.NewResource(uriStats, "Search statistics",
		mcp.WithResourceDescription("Success, failure and cache hit counts"),
		mcp.WithMIMEType(mimeJSON),
	), s.readStats)
}

func (s *Server) readCacheStatus(_ context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return jsonContents(req.Params.URI, s.search.CacheStatus())
}

func (s *Server) readHistory(_ context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return jsonContents(req.Params.URI, s.search.RecentHistory(domain.DefaultHistoryResourceLimit, true))
}

func (s *Server) readStats(_ context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	status := s.search.CacheStatus()
	return jsonContents(req.Params.URI, statsView{
		History:         s.search.HistoryStats(),
		CacheEntries:    status.TotalEntries,
		CacheTTLMinutes: status.TTLMinutes,
	})
}

func jsonContents(uri string, v any) ([]mcp.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", uri, err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: mimeJSON,
			Text:     string(data),
		},
	}, nil
}
