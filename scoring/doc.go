// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package scoring implements the two business computations.

Score is a deterministic function of the validated online_score payload,
cached in the store for an hour under "uid:" + md5 of the name, phone and
birthday fields:

	score, err := scoring.Score(ctx, st, payload)

Interests reads the stored interest list for a client id ("i:<id>" keys,
JSON string arrays); absent clients yield an empty list:

	list, err := scoring.Interests(ctx, st, "1")
*/
package scoring
