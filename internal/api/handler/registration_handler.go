package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/freelaverse/web-gateway/internal/core/ports"
)

// RegistrationHandler drives the signup wizard. The browser keeps the
// accumulated form and posts it for per-step validation on every forward
// navigation; going back never hits the validate endpoint.
type RegistrationHandler struct {
	registration ports.RegistrationService
}

func NewRegistrationHandler(registration ports.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{registration: registration}
}

// ValidateStep gates one forward step of the wizard.
//
// @Summary      Validate a registration wizard step
// @Tags         registration
// @Accept       json
// @Param        step  path  int                     true  "Step index (0-2)"
// @Param        body  body  ports.RegistrationForm  true  "Accumulated form"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Router       /cadastro/steps/{step}/validate [post]
func (h *RegistrationHandler) ValidateStep(c echo.Context) error {
	step, err := strconv.Atoi(c.Param("step"))
	if err != nil || step < ports.StepCredentials || step > ports.StepPreferences {
		return echo.NewHTTPError(http.StatusBadRequest, "etapa inválida")
	}

	var form ports.RegistrationForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "payload inválido")
	}

	if err := h.registration.ValidateStep(step, form); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Submit posts the accumulated form once, at the terminal step.
//
// @Summary      Submit the registration
// @Tags         registration
// @Accept       json
// @Produce      json
// @Param        body  body      ports.RegistrationForm  true  "Accumulated form"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Router       /cadastro [post]
func (h *RegistrationHandler) Submit(c echo.Context) error {
	var form ports.RegistrationForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "payload inválido")
	}

	if err := h.registration.Submit(c.Request().Context(), form); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, messageResponse{
		Message: "Cadastro realizado com sucesso! Confirme seu email para fazer login.",
	})
}
