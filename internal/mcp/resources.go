// ABOUTME: MCP resource implementations for the training store.
// ABOUTME: Provides ferro://today and ferro://summary resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/bmonteiro/ferro/internal/analytics"
)

func (s *Server) registerResources() {
	// ferro://today - meals, water, and sessions logged today
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "ferro://today",
		Name:        "Today's Training Data",
		Description: "Meals, water, and sessions logged today, with macro targets",
		MIMEType:    "application/json",
	}, s.handleTodayResource)

	// ferro://summary - progress dashboard
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "ferro://summary",
		Name:        "Progress Summary",
		Description: "Streak, level, weekly muscle volume, and recent sessions",
		MIMEType:    "application/json",
	}, s.handleSummaryResource)
}

// Resource handlers

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	today := time.Now().Format("2006-01-02")

	meals, err := s.store.MealsOn(today)
	if err != nil {
		return nil, fmt.Errorf("failed to list meals: %w", err)
	}
	stats, err := s.store.DailyStats(today)
	if err != nil {
		return nil, fmt.Errorf("failed to read daily stats: %w", err)
	}
	profile, err := s.store.Profile()
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	result := map[string]any{
		"date":     today,
		"meals":    meals,
		"water_ml": stats.Water,
		"consumed": analytics.DayTotals(meals),
		"targets":  analytics.Targets(profile),
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "ferro://today",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleSummaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	logs, err := s.store.Logs()
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	recent := logs
	if len(recent) > 10 {
		recent = recent[:10]
	}

	now := time.Now()
	xp := analytics.XP(logs)
	level := analytics.Level(xp)

	result := map[string]any{
		"generated_at":    now.Format(time.RFC3339),
		"total_sessions":  len(logs),
		"streak_days":     analytics.Streak(logs, now),
		"xp":              xp,
		"level":           level.Name,
		"weekly_volume":   analytics.MuscleVolume(logs, now),
		"recent_sessions": recent,
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "ferro://summary",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
