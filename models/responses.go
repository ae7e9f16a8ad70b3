package models

// ErrorResponse is the JSON body returned with every non-2xx API response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ServiceInfo describes the running service on GET /api/.
type ServiceInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}
