package http

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// sanitizeInput removes potentially dangerous characters and trims whitespace.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	result := strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
	return result
}

// generateRequestID creates a unique request ID for tracing.
func generateRequestID() string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		return fmt.Sprintf("req_%d", time.Now().UnixNano())
	}
	return "req_" + hex.EncodeToString(bytes)
}

// parseChartFilters extracts the chart's year and month filters from query
// parameters. Absent, "all" or unparseable values mean "no filter" (zero).
func parseChartFilters(query url.Values) (year, month int) {
	if v := strings.TrimSpace(query.Get("year")); v != "" && v != "all" {
		if y, err := strconv.Atoi(v); err == nil && y > 0 {
			year = y
		}
	}
	if v := strings.TrimSpace(query.Get("month")); v != "" && v != "all" {
		if m, err := strconv.Atoi(v); err == nil && m >= 1 && m <= 12 {
			month = m
		}
	}
	return year, month
}

// recordIDFromRequest extracts the target record id from a mutation request.
// Row actions post form-encoded bodies; DELETE requests carry the id in the
// query string.
func recordIDFromRequest(r *http.Request) string {
	if err := r.ParseForm(); err != nil {
		return ""
	}
	if id := sanitizeInput(r.Form.Get("id")); id != "" {
		return id
	}
	return sanitizeInput(r.URL.Query().Get("id"))
}
