// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Status codes

const (
	OK             = 200
	BadRequest     = 400
	Forbidden      = 403
	NotFound       = 404
	InvalidRequest = 422
	InternalError  = 500
)

// StatusText maps failure codes to their default response message.
var StatusText = map[int]string{
	BadRequest:     "Bad Request",
	Forbidden:      "Forbidden",
	NotFound:       "Not Found",
	InvalidRequest: "Invalid Request",
	InternalError:  "Internal Server Error",
}

// Method names

const (
	MethodOnlineScore      = "online_score"
	MethodClientsInterests = "clients_interests"
)

// AdminLogin is the login that selects the hourly admin digest.
const AdminLogin = "admin"

// Response types

type SuccessResponse struct {
	Response any `json:"response"`
	Code     int `json:"code"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

type ScoreResponse struct {
	Score float64 `json:"score"`
}
