package domain

import "time"

type User struct {
	ID                  int64     `json:"id"`
	Email               string    `json:"email" validate:"required,email"`
	PasswordHash        string    `json:"-"`
	Username            string    `json:"username"`
	Name                string    `json:"name"`
	Bio                 string    `json:"bio,omitempty"`
	AvatarURL           string    `json:"avatar_url,omitempty"`
	BrandColor          string    `json:"brand_color,omitempty"`
	DarkBrandColor      string    `json:"dark_brand_color,omitempty"`
	CompletedOnboarding bool      `json:"completed_onboarding"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

type Team struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}
