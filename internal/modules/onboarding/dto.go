package onboarding

import "github.com/luiisca/cal.com/internal/domain"

type SubmitRequest struct {
	Bio string `json:"bio" validate:"required"`
}

type SubmitResponse struct {
	RedirectURL string       `json:"redirectUrl"`
	User        *domain.User `json:"user"`
}

// UpdateProfileRequest is a partial update; omitted fields stay untouched.
type UpdateProfileRequest struct {
	Bio                 *string `json:"bio"`
	Avatar              *string `json:"avatar"`
	CompletedOnboarding *bool   `json:"completedOnboarding"`
}

// Tagged save outcomes, so callers can tell an avatar-only save from a
// profile save without a side-channel flag.
const (
	KindAvatarSaved  = "AVATAR_SAVED"
	KindProfileSaved = "PROFILE_SAVED"
)

type UpdateProfileResponse struct {
	Kind string       `json:"kind"`
	User *domain.User `json:"user"`
}
