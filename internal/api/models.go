package api

// TaskRequest is the body of create and update requests.
// Both fields are required; update is a full replacement.
type TaskRequest struct {
	Title       string `json:"title"       validate:"required,notblank"`
	Description string `json:"description" validate:"required,notblank"`
}

// HealthResponse is the body of the health endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}
