package domain

import "time"

// Urgency labels used by the backend. High and immediate orders are surfaced
// differently in the dashboards.
const (
	UrgencyLow       = "Baixa"
	UrgencyMedium    = "Média"
	UrgencyHigh      = "Alta"
	UrgencyImmediate = "Imediata"
)

// ServiceProfessional is one professional who unlocked a service. The nested
// profile may be absent when the backend sends only the id.
type ServiceProfessional struct {
	ProfessionalID string `json:"professionalId"`
	Professional   *User  `json:"professional,omitempty"`
}

// Service is a posted service request (an "order" for clients, a "job" for
// professionals). Contact fields are only present once the requesting
// professional has unlocked the service. ProfessionalService is only present
// on the client's own services and lists who unlocked them.
type Service struct {
	ID                  string                `json:"id"`
	Title               string                `json:"title"`
	Description         string                `json:"description"`
	Category            string                `json:"category"`
	Urgency             string                `json:"urgency"`
	Address             string                `json:"address"`
	Status              string                `json:"status"`
	UserID              string                `json:"userId"`
	CreatedAt           time.Time             `json:"createdAt"`
	QuantProfessionals  int                   `json:"quantProfessionals"`
	ContactPhone        string                `json:"contactPhone,omitempty"`
	ContactEmail        string                `json:"contactEmail,omitempty"`
	ProfessionalService []ServiceProfessional `json:"professionalService,omitempty"`
}

// Urgent reports whether the request should be highlighted as pressing.
func (s *Service) Urgent() bool {
	return s.Urgency == UrgencyHigh || s.Urgency == UrgencyImmediate
}
