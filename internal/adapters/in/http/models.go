package http

// Error is the body of every non-2xx response that is not a reconciliation outcome.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Health is the body of GET /health.
type Health struct {
	Status string `json:"status"`
}
