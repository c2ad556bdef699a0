package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/freelaverse/web-gateway/internal/core/domain"
	"github.com/freelaverse/web-gateway/internal/core/ports"
)

type RegistrationService struct {
	backend ports.BackendClient
	logger  zerolog.Logger
}

func NewRegistrationService(backend ports.BackendClient, logger zerolog.Logger) *RegistrationService {
	return &RegistrationService{backend: backend, logger: logger}
}

// ValidateStep gates forward navigation through the wizard. Each step only
// checks its own fields; a step index past the last one passes, matching the
// terminal screen.
func (s *RegistrationService) ValidateStep(step int, form ports.RegistrationForm) error {
	switch step {
	case ports.StepCredentials:
		if form.UserName == "" || form.Email == "" || form.Password == "" {
			return domain.Invalid("Preencha nome, e-mail e senha.")
		}
		if len(form.Password) < 8 {
			return domain.Invalid("A senha deve ter pelo menos 8 caracteres.")
		}
		if form.Password != form.Confirm {
			return domain.Invalid("As senhas não coincidem.")
		}
	case ports.StepContact:
		if form.Phone == "" || form.Street == "" || form.Number == "" ||
			form.ZipCode == "" || form.City == "" || form.State == "" {
			return domain.Invalid("Preencha telefone, endereço completo, CEP, cidade e estado.")
		}
	case ports.StepPreferences:
		if form.UserType != 1 && form.UserType != 2 {
			return domain.Invalid("Selecione o tipo de conta.")
		}
		if form.UserType == 2 && len(form.UserProfessionalArea) == 0 {
			return domain.Invalid("Adicione pelo menos uma área profissional.")
		}
	}
	return nil
}

// Submit re-validates every step and posts the accumulated form once.
// Clients never carry professional areas, whatever the wizard collected
// before the role was switched.
func (s *RegistrationService) Submit(ctx context.Context, form ports.RegistrationForm) error {
	for _, step := range []int{ports.StepCredentials, ports.StepContact, ports.StepPreferences} {
		if err := s.ValidateStep(step, form); err != nil {
			return err
		}
	}

	areas := form.UserProfessionalArea
	if form.UserType != 2 {
		areas = []string{}
	}

	input := ports.RegisterInput{
		UserName:             form.UserName,
		Email:                form.Email,
		Password:             form.Password,
		UserType:             form.UserType,
		ProfileImageURL:      form.ProfileImageURL,
		Street:               form.Street,
		Number:               form.Number,
		Complement:           form.Complement,
		ZipCode:              form.ZipCode,
		City:                 form.City,
		State:                form.State,
		Phone:                form.Phone,
		UserProfessionalArea: areas,
	}

	if err := s.backend.Register(ctx, input); err != nil {
		return err
	}

	s.logger.Info().Int("user_type", form.UserType).Msg("registration submitted")
	return nil
}
