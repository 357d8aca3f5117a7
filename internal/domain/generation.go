package domain

import "time"

// GenerationStatus tracks the lifecycle of a generation record. The API only
// ever writes completed rows today; the pending value exists for the gallery
// poller and future async flows.
type GenerationStatus string

const (
	GenerationPending   GenerationStatus = "pending"
	GenerationCompleted GenerationStatus = "completed"
)

// Generation is one finished showcase image produced for a user.
type Generation struct {
	ID                string           `json:"id"`
	UserID            string           `json:"user_id"`
	OriginalImageURL  string           `json:"original_image_url"`
	GeneratedImageURL string           `json:"generated_image_url"`
	ModelType         string           `json:"model_type"`
	BackgroundType    string           `json:"background_type"`
	LightingStyle     string           `json:"lighting_style"`
	CameraAngle       string           `json:"camera_angle"`
	Mood              string           `json:"mood"`
	Status            GenerationStatus `json:"status"`
	CreatedAt         time.Time        `json:"created_at"`
}

// AdminStats aggregates platform-wide counters for the admin dashboard.
type AdminStats struct {
	TotalUsers         int `json:"total_users"`
	TotalGenerations   int `json:"total_generations"`
	CreditsOutstanding int `json:"credits_outstanding"`
}
