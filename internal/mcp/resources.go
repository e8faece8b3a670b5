// ABOUTME: MCP resource implementations for the wellness log.
// ABOUTME: Provides wellness://recent, wellness://today, and wellness://summary resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/harperreed/wellness/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// wellness://recent - Last 10 entries
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "wellness://recent",
		Name:        "Recent Wellness Entries",
		Description: "Last 10 daily wellness entries",
		MIMEType:    "application/json",
	}, s.handleRecentResource)

	// wellness://today - Today's entry with derived scores
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "wellness://today",
		Name:        "Today's Wellness Entry",
		Description: "The entry logged for today, with activity score and subjective average",
		MIMEType:    "application/json",
	}, s.handleTodayResource)

	// wellness://summary - Dashboard with latest field values grouped by block
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "wellness://summary",
		Name:        "Wellness Summary Dashboard",
		Description: "Latest value for each tracked field, grouped by form block",
		MIMEType:    "application/json",
	}, s.handleSummaryResource)
}

func resourceResult(uri string, payload any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// scores returns the derived values for an entry, using nil for a missing
// subjective average so JSON renders null instead of NaN.
func scores(e *models.Entry) map[string]interface{} {
	out := map[string]interface{}{
		"activity_score": e.ActivityScore(),
	}
	if avg := e.SubjectiveAverage(); !math.IsNaN(avg) {
		out["subjective_average"] = avg
	} else {
		out["subjective_average"] = nil
	}
	return out
}

// Resource handlers

func (s *Server) handleRecentResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	entries, err := s.store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}

	models.SortEntries(entries)
	if len(entries) > 10 {
		entries = entries[len(entries)-10:]
	}

	// Newest first.
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}

	result := map[string]interface{}{
		"entries": entries,
		"count":   len(entries),
	}
	return resourceResult("wellness://recent", result)
}

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	today := time.Now().Format(models.DateFormat)

	e, err := s.store.Get(today)
	if err != nil {
		result := map[string]interface{}{
			"date":    today,
			"entry":   nil,
			"message": "Nothing logged today.",
		}
		return resourceResult("wellness://today", result)
	}

	result := map[string]interface{}{
		"date":   today,
		"entry":  e,
		"scores": scores(e),
	}
	return resourceResult("wellness://today", result)
}

func (s *Server) handleSummaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	entries, err := s.store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}
	models.SortEntries(entries)

	// Latest stored value per field, scanning newest to oldest.
	latest := make(map[string]map[string]string)
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		for _, name := range e.FieldNames() {
			if _, seen := latest[name]; seen {
				continue
			}
			v, _ := e.Get(name)
			latest[name] = map[string]string{
				"value": v,
				"date":  e.Date,
			}
		}
	}

	// Group by the schema's form blocks.
	blocks := make(map[string]interface{})
	for _, b := range s.doc.Blocks {
		section := make(map[string]interface{})
		for _, f := range b.Fields {
			if val, ok := latest[f.Name]; ok {
				section[f.Name] = val
			}
		}
		blocks[b.Title] = section
	}

	result := map[string]interface{}{
		"generated_at": time.Now().Format(time.RFC3339),
		"blocks":       blocks,
		"summary": map[string]int{
			"total_entries":  len(entries),
			"tracked_fields": len(latest),
		},
	}
	if len(entries) > 0 {
		newest := entries[len(entries)-1]
		result["latest_entry"] = map[string]interface{}{
			"date":   newest.Date,
			"scores": scores(newest),
		}
	}
	return resourceResult("wellness://summary", result)
}
