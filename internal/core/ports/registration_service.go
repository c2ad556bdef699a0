package ports

import "context"

// Wizard step indices, in the order the screens appear.
const (
	StepCredentials = 0
	StepContact     = 1
	StepPreferences = 2
)

// RegistrationForm is the state the wizard accumulates across steps. Confirm
// is gateway-only (password confirmation) and never leaves the gateway.
type RegistrationForm struct {
	UserName             string   `json:"userName"`
	Email                string   `json:"email"`
	Password             string   `json:"password"`
	Confirm              string   `json:"confirm"`
	UserType             int      `json:"userType"`
	ProfileImageURL      string   `json:"profileImageUrl"`
	Street               string   `json:"street"`
	Number               string   `json:"number"`
	Complement           string   `json:"complement"`
	ZipCode              string   `json:"zipCode"`
	City                 string   `json:"city"`
	State                string   `json:"state"`
	Phone                string   `json:"phone"`
	UserProfessionalArea []string `json:"userProfessionalArea"`
}

// RegistrationService drives the multi-step signup wizard. ValidateStep
// gates forward navigation only; going back never re-validates, so the
// caller simply does not call it. Submit validates every step once more and
// posts the accumulated form to the backend.
type RegistrationService interface {
	ValidateStep(step int, form RegistrationForm) error
	Submit(ctx context.Context, form RegistrationForm) error
}
