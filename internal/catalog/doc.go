// Package catalog loads and validates TOML item catalogs.
//
// # Overview
//
// A catalog is the data source behind every selection session: a titled set
// of display categories plus the items that reference them. Items carry the
// physical attributes the selection presets render (weight, volume, stack
// count), an optional preferred quick key, and a source that routes them to
// the carried, gear, or ground column.
//
// # TOML Format
//
// Example catalog:
//
//	title = "Field kit"
//
//	[[categories]]
//	id = "tools"
//	name = "TOOLS"
//	rank = 20
//
//	[[items]]
//	id = "rope_30ft"
//	name = "rope (30 ft)"
//	category = "tools"
//	count = 1
//	weight_g = 2100
//	volume_ml = 1600
//	source = "gear"
//	origin = "backpack"
//
// Optional item fields and their defaults:
//
//   - count: defaults to 1
//   - key: preferred quick key, unset by default
//   - source: "carried" (default), "gear", or "ground"
//   - origin: container or surface name, used to derive side-column
//     categories such as "TOOLS (backpack)"
//   - essential: marks items a drop session refuses to part with
//
// # Validation
//
// Load rejects catalogs with duplicate category or item IDs, items that
// reference an unknown category, negative counts, negative weights or
// volumes, and unknown sources. The selection engine trusts the catalog it
// is handed, so nothing invalid may pass this boundary.
//
// # Defaults
//
// Load("") returns the built-in demo catalog, so the tool runs without any
// file on disk. Explicit paths support tilde expansion; a named file that
// does not exist is an error rather than a silent fallback.
package catalog
