// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"strings"
	"testing"
)

func TestParseMethodRequest(t *testing.T) {
	valid := map[string]any{
		"account":   "horns&hoofs",
		"login":     "h&f",
		"token":     "deadbeef",
		"method":    "online_score",
		"arguments": map[string]any{"phone": "79175002040"},
	}

	req, err := ParseMethodRequest(valid)
	if err != nil {
		t.Fatalf("ParseMethodRequest() error = %v", err)
	}
	if req.Login != "h&f" || req.Method != "online_score" {
		t.Errorf("parsed envelope = %+v", req)
	}
	if req.Arguments["phone"] != "79175002040" {
		t.Errorf("arguments not carried through: %v", req.Arguments)
	}
	if req.IsAdmin() {
		t.Error("IsAdmin() = true for non-admin login")
	}
}

func TestParseMethodRequestNulls(t *testing.T) {
	// Null account, login and token normalize to ""
	req, err := ParseMethodRequest(map[string]any{
		"account":   nil,
		"login":     nil,
		"token":     nil,
		"method":    "online_score",
		"arguments": nil,
	})
	if err != nil {
		t.Fatalf("ParseMethodRequest() error = %v", err)
	}
	if req.Account != "" || req.Login != "" || req.Token != "" {
		t.Errorf("null fields = %+v, want empty strings", req)
	}
	if req.Arguments != nil {
		t.Errorf("null arguments = %v, want nil map", req.Arguments)
	}
}

func TestParseMethodRequestInvalid(t *testing.T) {
	tests := []struct {
		name       string
		body       map[string]any
		wantFields []string
	}{
		{
			"empty body",
			map[string]any{},
			[]string{"login", "token", "arguments", "method"},
		},
		{
			"null method",
			map[string]any{
				"login": "h&f", "token": "x", "arguments": map[string]any{}, "method": nil,
			},
			[]string{"method"},
		},
		{
			"wrong types",
			map[string]any{
				"login": float64(1), "token": "x", "arguments": "not a map", "method": "m",
			},
			[]string{"login", "arguments"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMethodRequest(tt.body)
			if err == nil {
				t.Fatal("ParseMethodRequest() succeeded, want error")
			}
			lines := strings.Split(err.Error(), "\n")
			if len(lines) != len(tt.wantFields) {
				t.Fatalf("got %d error lines, want %d: %q", len(lines), len(tt.wantFields), err.Error())
			}
			for i, field := range tt.wantFields {
				if !strings.Contains(lines[i], "'"+field+"'") {
					t.Errorf("line %d = %q, want field %q", i, lines[i], field)
				}
			}
		})
	}
}

func TestIsAdmin(t *testing.T) {
	admin, err := ParseMethodRequest(map[string]any{
		"login": "admin", "token": "x", "arguments": map[string]any{}, "method": "m",
	})
	if err != nil {
		t.Fatalf("ParseMethodRequest() error = %v", err)
	}
	if !admin.IsAdmin() {
		t.Error("IsAdmin() = false for admin login")
	}
}

func TestParseOnlineScoreRequestValid(t *testing.T) {
	tests := []struct {
		name string
		args map[string]any
	}{
		{"phone and email", map[string]any{"phone": "79175002040", "email": "x@y.com"}},
		{"phone as number", map[string]any{"phone": float64(79175002040), "email": "x@y.com"}},
		{"names", map[string]any{"first_name": "a", "last_name": "b"}},
		{"gender and birthday", map[string]any{"gender": float64(1), "birthday": "01.01.2000"}},
		{"zero gender counts as supplied", map[string]any{"gender": float64(0), "birthday": "01.01.2000"}},
		{"everything", map[string]any{
			"phone": "79175002040", "email": "x@y.com",
			"first_name": "a", "last_name": "b",
			"gender": float64(1), "birthday": "01.01.2000",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseOnlineScoreRequest(tt.args); err != nil {
				t.Errorf("ParseOnlineScoreRequest() error = %v", err)
			}
		})
	}
}

func TestParseOnlineScoreRequestInvalid(t *testing.T) {
	tests := []struct {
		name string
		args map[string]any
	}{
		{"empty", map[string]any{}},
		{"all null", map[string]any{
			"phone": nil, "email": nil, "first_name": nil,
			"last_name": nil, "gender": nil, "birthday": nil,
		}},
		{"incomplete pairs", map[string]any{"phone": "79175002040", "first_name": "a"}},
		{"bad phone", map[string]any{"phone": "89175002040", "email": "x@y.com"}},
		{"bad email", map[string]any{"phone": "79175002040", "email": "xy.com"}},
		{"bad birthday", map[string]any{"gender": float64(1), "birthday": "31.02.2022"}},
		{"bad gender", map[string]any{"gender": float64(9), "birthday": "01.01.2000"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseOnlineScoreRequest(tt.args); err == nil {
				t.Error("ParseOnlineScoreRequest() succeeded, want error")
			}
		})
	}
}

func TestParseOnlineScoreRequestNormalizesPhone(t *testing.T) {
	req, err := ParseOnlineScoreRequest(map[string]any{
		"phone": float64(79175002040), "email": "x@y.com",
	})
	if err != nil {
		t.Fatalf("ParseOnlineScoreRequest() error = %v", err)
	}
	if req.Phone == nil || *req.Phone != "79175002040" {
		t.Errorf("Phone = %v, want 79175002040", req.Phone)
	}
	if req.Gender != nil || req.Birthday != nil {
		t.Error("absent fields not nil")
	}
}

func TestParseClientsInterestsRequest(t *testing.T) {
	valid := map[string]any{
		"client_ids": []any{float64(1), float64(2), float64(3)},
		"date":       "12.12.2023",
	}
	req, err := ParseClientsInterestsRequest(valid)
	if err != nil {
		t.Fatalf("ParseClientsInterestsRequest() error = %v", err)
	}
	if len(req.ClientIDs) != 3 {
		t.Errorf("ClientIDs = %v, want 3 entries", req.ClientIDs)
	}
	if req.Date == nil || *req.Date != "12.12.2023" {
		t.Errorf("Date = %v, want 12.12.2023", req.Date)
	}

	invalid := []map[string]any{
		{},
		{"client_ids": []any{}},
		{"client_ids": []any{float64(1), "2"}},
		{"client_ids": "1,2"},
		{"client_ids": nil},
		{"client_ids": []any{float64(1)}, "date": "XXX"},
	}
	for _, args := range invalid {
		if _, err := ParseClientsInterestsRequest(args); err == nil {
			t.Errorf("ParseClientsInterestsRequest(%v) succeeded, want error", args)
		}
	}
}
