package service

import (
	"encoding/json"
	"strings"

	"github.com/ntloc/EduPulse/internal/dto"
)

// insightPayload is the expected response shape. Two synonym field names have
// been observed for the improvement-area list, so both are decoded and the
// first non-empty one wins.
type insightPayload struct {
	Summary             string `json:"summary"`
	ImprovementAreas    []any  `json:"improvementAreas"`
	AreasForImprovement []any  `json:"areasForImprovement"`
}

// insightParseStrategy attempts to recover a structured payload from the raw
// response. Strategies are total: they report failure instead of erroring.
type insightParseStrategy func(raw string) (*insightPayload, bool)

var insightParseStrategies = []insightParseStrategy{
	parseInsightJSON,
	parseEmbeddedInsightJSON,
}

// parseInsightResponse runs the strategy ladder over the untrusted response
// body. When no strategy succeeds the whole text becomes the summary, so a
// service that ignored the structure instruction still yields a usable
// result.
func parseInsightResponse(raw string) dto.InsightDTO {
	var payload *insightPayload
	for _, parse := range insightParseStrategies {
		if p, ok := parse(raw); ok {
			payload = p
			break
		}
	}
	if payload == nil {
		payload = &insightPayload{Summary: raw}
	}

	entries := payload.ImprovementAreas
	if len(entries) == 0 {
		entries = payload.AreasForImprovement
	}
	areas := sanitizeAreas(entries)

	summary := strings.TrimSpace(payload.Summary)
	if summary == "" {
		summary = summaryMissing
	}
	if len(areas) == 0 {
		areas = []string{areaNone}
	}

	return dto.InsightDTO{Summary: summary, ImprovementAreas: areas}
}

func parseInsightJSON(raw string) (*insightPayload, bool) {
	var payload insightPayload
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &payload); err != nil {
		return nil, false
	}
	return &payload, true
}

// parseEmbeddedInsightJSON extracts the first brace-balanced substring and
// parses only that. Covers responses that wrap the object in prose or
// markdown fences.
func parseEmbeddedInsightJSON(raw string) (*insightPayload, bool) {
	start := strings.Index(raw, "{")
	if start == -1 {
		return nil, false
	}
	depth := 0
	for i := start; i < len(raw); i++ {
		switch raw[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return parseInsightJSON(raw[start : i+1])
			}
		}
	}
	return nil, false
}

// sanitizeAreas keeps only non-empty strings, trimmed, deduplicated in
// first-seen order.
func sanitizeAreas(entries []any) []string {
	seen := make(map[string]struct{}, len(entries))
	areas := make([]string, 0, len(entries))
	for _, entry := range entries {
		s, ok := entry.(string)
		if !ok {
			continue
		}
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		areas = append(areas, s)
	}
	return areas
}
