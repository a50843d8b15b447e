// Package configs holds the game data files and the JSON schemas that validate them.
package configs

import "embed"

// Schemas contains every *.schema.json file under schemas/
//
//go:embed schemas/*.json
var Schemas embed.FS

// SchemaDir is the directory of Schemas that holds the schema files
const SchemaDir = "schemas"
