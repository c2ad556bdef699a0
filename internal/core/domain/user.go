package domain

import "time"

// Role values mirror the backend's numeric userType rendered as strings, the
// same form the session cookie carries.
const (
	RoleClient       = "1"
	RoleProfessional = "2"
)

// ProfessionalArea is one entry of the fixed area taxonomy.
type ProfessionalArea struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// UserProfessionalArea links a professional to one of their registered areas.
type UserProfessionalArea struct {
	ProfessionalArea ProfessionalArea `json:"professionalArea"`
}

// UnlockedService wraps a service a professional has already paid to unlock.
type UnlockedService struct {
	Service Service `json:"service"`
}

// User is the backend-owned profile record, retrieved verbatim. The gateway
// never mutates it locally; every change is a round trip.
type User struct {
	ID                    string                 `json:"id"`
	UserName              string                 `json:"userName"`
	Email                 string                 `json:"email"`
	Phone                 string                 `json:"phone,omitempty"`
	Street                string                 `json:"street,omitempty"`
	Number                string                 `json:"number,omitempty"`
	Complement            string                 `json:"complement,omitempty"`
	ZipCode               string                 `json:"zipCode,omitempty"`
	City                  string                 `json:"city,omitempty"`
	State                 string                 `json:"state,omitempty"`
	UserType              int                    `json:"userType"`
	ProfileImageURL       string                 `json:"profileImageUrl,omitempty"`
	Credits               int                    `json:"credits"`
	HasActiveSubscription bool                   `json:"hasActiveSubscription"`
	CreatedAt             time.Time              `json:"createdAt"`
	UserProfessionalArea  []UserProfessionalArea `json:"userProfessionalArea,omitempty"`
	ClientServices        []Service              `json:"clientServices,omitempty"`
	ProfessionalService   []UnlockedService      `json:"professionalService,omitempty"`
}

// Role renders the numeric userType in cookie form ("1"/"2"), empty when the
// backend sent something else.
func (u *User) Role() string {
	switch u.UserType {
	case 1:
		return RoleClient
	case 2:
		return RoleProfessional
	}
	return ""
}

// AreaNames returns the names of the professional's registered areas, in the
// order the backend reported them.
func (u *User) AreaNames() []string {
	if len(u.UserProfessionalArea) == 0 {
		return nil
	}
	names := make([]string, 0, len(u.UserProfessionalArea))
	for _, upa := range u.UserProfessionalArea {
		names = append(names, upa.ProfessionalArea.Name)
	}
	return names
}
