package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freelaverse/web-gateway/internal/core/ports"
)

// CatalogHandler serves the professional-area taxonomy consumed by the
// registration wizard's area picker.
type CatalogHandler struct {
	catalog ports.CatalogService
}

func NewCatalogHandler(catalog ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// Areas lists all professional areas.
//
// @Summary      Professional area taxonomy
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  domain.ProfessionalArea
// @Router       /areas [get]
func (h *CatalogHandler) Areas(c echo.Context) error {
	areas, err := h.catalog.Areas(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, areas)
}
