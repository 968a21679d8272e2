package models

// ErrorResponse is the body of every 4xx/5xx answer.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// DistributionResponse wraps a count split with the scope it was computed for.
type DistributionResponse struct {
	Data    []DistributionEntry `json:"data"`
	Filters *Filters            `json:"filters"`
}

type HealthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}
