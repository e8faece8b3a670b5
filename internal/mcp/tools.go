// ABOUTME: MCP tool implementations for the wellness log.
// ABOUTME: Provides entry CRUD plus metric series and activity calendar queries.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/harperreed/wellness/internal/calendar"
	"github.com/harperreed/wellness/internal/models"
	"github.com/harperreed/wellness/internal/stats"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// log_entry
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_entry",
		Description: "Record or update the wellness entry for a date",
	}, s.handleLogEntry)

	// get_entry
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_entry",
		Description: "Get the wellness entry for a date",
	}, s.handleGetEntry)

	// list_entries
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_entries",
		Description: "List recent wellness entries, newest first",
	}, s.handleListEntries)

	// delete_entry
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_entry",
		Description: "Delete the wellness entry for a date",
	}, s.handleDeleteEntry)

	// metric_series
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "metric_series",
		Description: "Get a metric's daily series over the last week, month, or year",
	}, s.handleMetricSeries)

	// activity_calendar
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "activity_calendar",
		Description: "Get a calendar grid showing which days a metric was active",
	}, s.handleActivityCalendar)
}

// Tool input/output types

type logEntryInput struct {
	Date   string            `json:"date,omitempty" jsonschema:"Entry date (YYYY-MM-DD), defaults to today"`
	Fields map[string]string `json:"fields" jsonschema:"Field values keyed by schema field name"`
}

type entryOutput struct {
	Date    string            `json:"date"`
	Fields  map[string]string `json:"fields"`
	Message string            `json:"message"`
}

type getEntryInput struct {
	Date string `json:"date" jsonschema:"Entry date (YYYY-MM-DD)"`
}

type listEntriesInput struct {
	Limit int    `json:"limit,omitempty" jsonschema:"Max results (default 20)"`
	Since string `json:"since,omitempty" jsonschema:"Only entries on or after this date (YYYY-MM-DD)"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type metricSeriesInput struct {
	Metric string `json:"metric" jsonschema:"Field name or subjective_average"`
	Period string `json:"period,omitempty" jsonschema:"Lookback window: week, month, or year (default month)"`
}

type seriesPoint struct {
	Date         string  `json:"date"`
	Value        float64 `json:"value"`
	Interpolated bool    `json:"interpolated,omitempty"`
}

type seriesOutput struct {
	Metric string        `json:"metric"`
	Period string        `json:"period"`
	Points []seriesPoint `json:"points"`
}

type activityCalendarInput struct {
	Metric string `json:"metric" jsonschema:"Field name to check for activity"`
	Period string `json:"period,omitempty" jsonschema:"Grid layout: week, month, or year (default month)"`
	Year   int    `json:"year,omitempty" jsonschema:"Year to show, defaults to current"`
	Month  int    `json:"month,omitempty" jsonschema:"Month to show (1-12), defaults to current"`
}

type calendarCell struct {
	Date   string `json:"date"`
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Active bool   `json:"active"`
}

type calendarOutput struct {
	Metric string         `json:"metric"`
	Title  string         `json:"title"`
	Cells  []calendarCell `json:"cells"`
}

// Tool handlers

func (s *Server) handleLogEntry(ctx context.Context, req *mcp.CallToolRequest, input logEntryInput) (*mcp.CallToolResult, entryOutput, error) {
	date := input.Date
	if date == "" {
		date = time.Now().Format(models.DateFormat)
	}
	if !models.ValidDate(date) {
		return nil, entryOutput{}, fmt.Errorf("invalid date: %s", date)
	}
	if len(input.Fields) == 0 {
		return nil, entryOutput{}, fmt.Errorf("no fields given")
	}

	now := time.Now()
	normalized := make(map[string]string, len(input.Fields))
	for name, raw := range input.Fields {
		f, ok := s.doc.Field(name)
		if !ok {
			return nil, entryOutput{}, fmt.Errorf("unknown field: %s", name)
		}
		normalized[name] = f.Normalize(raw, now)
	}

	e, err := s.store.Upsert(date, normalized)
	if err != nil {
		return nil, entryOutput{}, fmt.Errorf("failed to save entry: %w", err)
	}

	return nil, entryOutput{
		Date:    e.Date,
		Fields:  normalized,
		Message: fmt.Sprintf("Logged %d field(s) for %s", len(normalized), e.Date),
	}, nil
}

func (s *Server) handleGetEntry(ctx context.Context, req *mcp.CallToolRequest, input getEntryInput) (*mcp.CallToolResult, any, error) {
	e, err := s.store.Get(input.Date)
	if err != nil {
		return nil, nil, fmt.Errorf("no entry for %s", input.Date)
	}
	return nil, e, nil
}

func (s *Server) handleListEntries(ctx context.Context, req *mcp.CallToolRequest, input listEntriesInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	entries, err := s.store.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list entries: %w", err)
	}

	if input.Since != "" {
		filtered := entries[:0]
		for _, e := range entries {
			if e.Date >= input.Since {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	}

	// Newest first, capped at the limit.
	models.SortEntries(entries)
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	if len(entries) > input.Limit {
		entries = entries[:input.Limit]
	}

	if len(entries) == 0 {
		return nil, map[string]interface{}{"message": "No entries found."}, nil
	}
	return nil, entries, nil
}

func (s *Server) handleDeleteEntry(ctx context.Context, req *mcp.CallToolRequest, input getEntryInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.store.Delete(input.Date); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete entry: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted entry: %s", input.Date),
	}, nil
}

func (s *Server) handleMetricSeries(ctx context.Context, req *mcp.CallToolRequest, input metricSeriesInput) (*mcp.CallToolResult, any, error) {
	period := stats.Period(input.Period)
	if input.Period == "" {
		period = stats.PeriodMonth
	}
	if !period.Valid() {
		return nil, nil, fmt.Errorf("unknown period: %s", input.Period)
	}

	entries, err := s.store.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load entries: %w", err)
	}

	series, err := stats.BuildSeries(entries, input.Metric, period, time.Now())
	if err != nil {
		if errors.Is(err, stats.ErrNoData) {
			return nil, map[string]interface{}{
				"message": fmt.Sprintf("No data for %s in the last %s.", input.Metric, period),
			}, nil
		}
		return nil, nil, err
	}

	out := seriesOutput{
		Metric: series.Metric,
		Period: string(series.Period),
	}
	for _, d := range series.Daily {
		if !d.Known {
			continue
		}
		out.Points = append(out.Points, seriesPoint{
			Date:         d.Date.Format(models.DateFormat),
			Value:        d.Value,
			Interpolated: d.Interpolated,
		})
	}
	return nil, out, nil
}

func (s *Server) handleActivityCalendar(ctx context.Context, req *mcp.CallToolRequest, input activityCalendarInput) (*mcp.CallToolResult, any, error) {
	period := stats.Period(input.Period)
	if input.Period == "" {
		period = stats.PeriodMonth
	}
	if !period.Valid() {
		return nil, nil, fmt.Errorf("unknown period: %s", input.Period)
	}

	now := time.Now()
	nav := calendar.CurrentNav(now)
	if input.Year != 0 {
		nav.Year = input.Year
	}
	if input.Month != 0 {
		if input.Month < 1 || input.Month > 12 {
			return nil, nil, fmt.Errorf("invalid month: %d", input.Month)
		}
		nav.Month = time.Month(input.Month)
	}

	entries, err := s.store.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load entries: %w", err)
	}
	active, found := calendar.Activities(entries, input.Metric)
	if !found {
		return nil, map[string]interface{}{
			"message": fmt.Sprintf("No data available for %s.", input.Metric),
		}, nil
	}

	var cells []calendar.Cell
	switch period {
	case stats.PeriodWeek:
		cells = calendar.WeekGrid(nav.WeekStart, active)
	case stats.PeriodYear:
		cells = calendar.YearGrid(nav.Year, active)
	default:
		cells = calendar.MonthGrid(nav.Year, nav.Month, active)
	}

	out := calendarOutput{
		Metric: input.Metric,
		Title:  nav.Title(period),
		Cells:  make([]calendarCell, 0, len(cells)),
	}
	for _, c := range cells {
		out.Cells = append(out.Cells, calendarCell{
			Date:   c.Date.Format(models.DateFormat),
			Row:    c.Row,
			Col:    c.Col,
			Active: c.Active,
		})
	}
	return nil, out, nil
}
