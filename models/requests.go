// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"errors"

	"scoring-api/schema"
)

// The three request schemas are fixed tables defined once at package init.

var methodRequestSchema = schema.MustNew("MethodRequest", []schema.NamedField{
	{Name: "account", Field: schema.Char(false, true)},
	{Name: "login", Field: schema.Char(true, true)},
	{Name: "token", Field: schema.Char(true, true)},
	{Name: "arguments", Field: schema.Arguments(true, true)},
	{Name: "method", Field: schema.Char(true, false)},
}, nil)

var onlineScoreSchema = schema.MustNew("OnlineScoreRequest", []schema.NamedField{
	{Name: "first_name", Field: schema.Char(false, true)},
	{Name: "last_name", Field: schema.Char(false, true)},
	{Name: "email", Field: schema.Email(false, true)},
	{Name: "phone", Field: schema.Phone(false, true)},
	{Name: "birthday", Field: schema.BirthDay(false, true)},
	{Name: "gender", Field: schema.Gender(false, true)},
}, onlineScorePairs)

var clientsInterestsSchema = schema.MustNew("ClientsInterestsRequest", []schema.NamedField{
	{Name: "client_ids", Field: schema.ClientIDs(true, false)},
	{Name: "date", Field: schema.Date(false, true)},
}, nil)

// onlineScorePairs requires at least one fully supplied field pair.
func onlineScorePairs(v schema.Values) error {
	pairs := [][2]string{
		{"phone", "email"},
		{"first_name", "last_name"},
		{"gender", "birthday"},
	}
	for _, p := range pairs {
		if v[p[0]] != nil && v[p[1]] != nil {
			return nil
		}
	}
	return errors.New(
		"at least one pair of (phone, email), (first_name, last_name), (gender, birthday) must be provided")
}

// MethodRequest is the outer request envelope: auth and routing metadata plus
// an opaque arguments payload. Null account, login and token come out as "".
type MethodRequest struct {
	Account   string
	Login     string
	Token     string
	Arguments map[string]any
	Method    string
}

// IsAdmin reports whether the caller authenticates with the admin digest.
func (r *MethodRequest) IsAdmin() bool { return r.Login == AdminLogin }

// ParseMethodRequest validates a decoded request body against the envelope
// schema. The error, if any, lists every invalid field.
func ParseMethodRequest(body map[string]any) (*MethodRequest, error) {
	values, err := methodRequestSchema.Instantiate(body)
	if err != nil {
		return nil, err
	}
	req := &MethodRequest{
		Account: values.StringOr("account", ""),
		Login:   values.StringOr("login", ""),
		Token:   values.StringOr("token", ""),
		Method:  values.StringOr("method", ""),
	}
	if m, ok := values["arguments"].(map[string]any); ok {
		req.Arguments = m
	}
	return req, nil
}

// OnlineScoreRequest is the validated online_score payload. Nil pointers mean
// the field was absent or null; phone is normalized to its decimal string.
type OnlineScoreRequest struct {
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
	Birthday  *string
	Gender    *int
}

// ParseOnlineScoreRequest validates online_score arguments.
func ParseOnlineScoreRequest(args map[string]any) (*OnlineScoreRequest, error) {
	values, err := onlineScoreSchema.Instantiate(args)
	if err != nil {
		return nil, err
	}
	req := &OnlineScoreRequest{
		FirstName: stringPtr(values["first_name"]),
		LastName:  stringPtr(values["last_name"]),
		Email:     stringPtr(values["email"]),
		Birthday:  stringPtr(values["birthday"]),
	}
	if v := values["phone"]; v != nil {
		s := schema.DecimalString(v)
		req.Phone = &s
	}
	if g, ok := schema.IntValue(values["gender"]); ok {
		req.Gender = &g
	}
	return req, nil
}

// ClientsInterestsRequest is the validated clients_interests payload.
type ClientsInterestsRequest struct {
	ClientIDs []any // numbers, in the order supplied
	Date      *string
}

// ParseClientsInterestsRequest validates clients_interests arguments.
func ParseClientsInterestsRequest(args map[string]any) (*ClientsInterestsRequest, error) {
	values, err := clientsInterestsSchema.Instantiate(args)
	if err != nil {
		return nil, err
	}
	return &ClientsInterestsRequest{
		ClientIDs: values["client_ids"].([]any),
		Date:      stringPtr(values["date"]),
	}, nil
}

func stringPtr(v any) *string {
	if s, ok := v.(string); ok {
		return &s
	}
	return nil
}
