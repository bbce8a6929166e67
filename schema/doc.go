// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package schema implements the declarative field validation engine.

# Fields

A Field is an immutable template: a set of accepted kinds, a required flag,
a nullable flag, and an optional check hook. Validation is an explicit call
that returns a value or an error, never a panic:

	f := schema.Phone(false, true)
	v, err := f.Set("79175002040")

Supplying no value at all is distinct from supplying null. Schema lookup
substitutes the absent-sentinel schema.Missing for keys that were never sent;
a required field rejects it, an optional one stores nil.

# Built-in Fields

  - Char: any string
  - Email: string containing "@"
  - Arguments: any JSON object
  - Phone: string or integer, 11 decimal digits starting with 7
  - Date: DD.MM.YYYY, must be a real calendar date
  - BirthDay: Date at most 70 years in the past
  - Gender: integer 0, 1 or 2
  - ClientIDs: non-empty list of numbers

# Schemas

A Schema is a fixed ordered table of named fields, registered once at package
init, plus an optional cross-field rule:

	var req = schema.MustNew("MyRequest", []schema.NamedField{
		{Name: "login", Field: schema.Char(true, true)},
	}, nil)

	values, err := req.Instantiate(decodedBody)

Instantiate collects one FieldError per invalid field and returns them all in
a single SchemaError ("Invalid '<name>' field: <reason>" per line). The
cross-field rule only runs when every field passed individually.
*/
package schema
