// ABOUTME: Wire types for the mediaforge backend API
// ABOUTME: Field names match the backend contract and must not be changed

package api

import "time"

// Generation status values as reported by the backend.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// Generation type values as recorded by the backend.
const (
	TypeImage             = "image"
	TypeBanner            = "banner"
	TypeLogo              = "logo"
	TypeBackgroundRemoval = "background_removal"
	TypeVideo             = "video"
	TypePresenterVideo    = "presenter_video"
	TypeVoiceover         = "voiceover"
)

// User is the backend's user profile representation
type User struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	FullName  string     `json:"full_name"`
	Credits   int        `json:"credits"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	AvatarURL string     `json:"avatar_url,omitempty"`
	Company   string     `json:"company,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// Token is the response from the login and refresh endpoints
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Generation is a single generation record
type Generation struct {
	ID           string     `json:"id"`
	UserID       string     `json:"user_id,omitempty"`
	Type         string     `json:"type"`
	Status       string     `json:"status"`
	Prompt       string     `json:"prompt,omitempty"`
	Settings     string     `json:"settings,omitempty"`
	OutputURL    string     `json:"output_url,omitempty"`
	ThumbnailURL string     `json:"thumbnail_url,omitempty"`
	CreditsUsed  int        `json:"credits_used"`
	ErrorMessage string     `json:"error_message,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
}

// Terminal reports whether the generation reached a final state
func (g *Generation) Terminal() bool {
	return g.Status == StatusCompleted || g.Status == StatusFailed
}

// RegisterRequest creates a new account
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

// ImageRequest generates a general image from a prompt
type ImageRequest struct {
	Prompt string `json:"prompt"`
	Size   string `json:"size,omitempty"`
	Style  string `json:"style,omitempty"`
}

// BannerRequest generates a social/marketing banner
type BannerRequest struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	Platform string `json:"platform"`
	Style    string `json:"style"`
}

// LogoRequest generates a brand logo
type LogoRequest struct {
	BrandName string   `json:"brand_name"`
	Industry  string   `json:"industry"`
	Style     string   `json:"style"`
	Colors    []string `json:"colors,omitempty"`
}

// RemoveBackgroundRequest strips the background from an image
type RemoveBackgroundRequest struct {
	ImageURL string `json:"image_url"`
}

// VideoRequest generates a video from a topic
type VideoRequest struct {
	Topic    string `json:"topic"`
	Script   string `json:"script,omitempty"`
	Duration int    `json:"duration,omitempty"`
	Style    string `json:"style,omitempty"`
	Voice    string `json:"voice,omitempty"`
}

// PresenterRequest generates an avatar presenter video
type PresenterRequest struct {
	Script     string `json:"script"`
	AvatarID   string `json:"avatar_id"`
	Background string `json:"background,omitempty"`
	VoiceID    string `json:"voice_id,omitempty"`
}

// VoiceoverRequest converts text to speech
type VoiceoverRequest struct {
	Text  string  `json:"text"`
	Voice string  `json:"voice,omitempty"`
	Speed float64 `json:"speed,omitempty"`
}

// ProfileUpdate patches the caller's own profile
type ProfileUpdate struct {
	FullName  string `json:"full_name,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
	Company   string `json:"company,omitempty"`
}

// AdminUserUpdate patches another user's account (admin only).
// Pointer fields distinguish "unset" from zero values.
type AdminUserUpdate struct {
	IsActive *bool   `json:"is_active,omitempty"`
	Role     *string `json:"role,omitempty"`
	Credits  *int    `json:"credits,omitempty"`
}

// CreditsAdjustment adds or removes credits from a user (admin only)
type CreditsAdjustment struct {
	Amount int    `json:"amount"`
	Reason string `json:"reason"`
}

// CreditsBalance is the response from /users/credits
type CreditsBalance struct {
	Credits int    `json:"credits"`
	UserID  string `json:"user_id"`
}

// HistoryPage is the paginated response from /users/history
type HistoryPage struct {
	Total int          `json:"total"`
	Items []Generation `json:"items"`
}

// UsageStats is the response from /users/stats
type UsageStats struct {
	TotalGenerations int            `json:"total_generations"`
	CreditsUsed      int            `json:"credits_used"`
	ByType           map[string]int `json:"by_type"`
}

// CreditsReceipt is the response from the admin credit adjustment endpoint
type CreditsReceipt struct {
	UserID     string `json:"user_id"`
	NewBalance int    `json:"new_balance"`
	Adjustment int    `json:"adjustment"`
	Reason     string `json:"reason"`
}

// DeleteReceipt is the response from the admin user delete endpoint
type DeleteReceipt struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

// Analytics is the platform-wide summary for admins
type Analytics struct {
	TotalUsers       int            `json:"total_users"`
	ActiveUsers      int            `json:"active_users"`
	TotalGenerations int            `json:"total_generations"`
	CreditsConsumed  int            `json:"credits_consumed"`
	PopularTypes     map[string]int `json:"popular_types"`
}

// HealthStatus is the response from the server-root health endpoint
type HealthStatus struct {
	Status string `json:"status"`
}
