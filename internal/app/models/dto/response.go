package dto

// HealthResponse reports dependency status for /health
type HealthResponse struct {
	Status   string `json:"status" example:"ok"`
	Database bool   `json:"database" example:"true"`
	Redis    *bool  `json:"redis,omitempty" example:"true"`
}
