package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrMethod     = "method"
	AttrPath       = "path"
	AttrStatus     = "status"
	AttrProvider   = "provider"
	AttrLeague     = "league"
	AttrKind       = "kind"
	AttrProvenance = "provenance"
	AttrCacheHit   = "cache_hit"
	AttrSkipped    = "skipped"
)
