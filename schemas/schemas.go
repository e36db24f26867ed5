// Package schemas embeds the JSON Schemas for colcheck configuration files.
package schemas

import _ "embed"

// ChecksSchemaJSON is the JSON Schema for declarative check definition files.
//
//go:embed checks.schema.json
var ChecksSchemaJSON string
