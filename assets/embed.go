// Package assets embeds the game data: maps, character stats and the
// tactic and item tables.
package assets

import "embed"

// FS holds maps/*.json, stats/*.json, tactics.yaml and items.yaml.
//
//go:embed maps/*.json stats/*.json tactics.yaml items.yaml
var FS embed.FS
