// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the request schemas, response types and status
vocabulary of the scoring API.

# Request Schemas

Three fixed schemas, built on the schema package:

  - MethodRequest: the outer envelope (account, login, token, arguments, method)
  - OnlineScoreRequest: online_score arguments, with the field-pair rule
  - ClientsInterestsRequest: clients_interests arguments

Each has a Parse function that validates a decoded JSON map and returns a
typed struct, or an error naming every invalid field:

	req, err := models.ParseMethodRequest(body)

# Status Codes

The closed status vocabulary and its default messages:

	200 OK
	400 Bad Request
	403 Forbidden
	404 Not Found
	422 Invalid Request
	500 Internal Server Error

# Wire Types

	SuccessResponse: {"response": ..., "code": 200}
	ErrorResponse:   {"error": ..., "code": N}
	ScoreResponse:   {"score": N}
*/
package models
