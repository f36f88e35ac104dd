package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrMethod  = "method"
	AttrPath    = "path"
	AttrStatus  = "status"
	AttrOp      = "op"
	AttrResult  = "result"
	AttrBackend = "backend"
)

// Wishlist operation names and results.
const (
	OpSave   = "save"
	OpRemove = "remove"
	OpList   = "list"

	ResultOK    = "ok"
	ResultNoop  = "noop"
	ResultError = "error"
)
