package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/freelaverse/web-gateway/internal/core/ports"
)

// ProfessionalHandler serves the professional dashboard screens: the
// opportunity feed, job detail with unlock, the unlocked list, and the
// account page.
type ProfessionalHandler struct {
	feed     ports.FeedService
	accounts ports.AccountService
}

func NewProfessionalHandler(feed ports.FeedService, accounts ports.AccountService) *ProfessionalHandler {
	return &ProfessionalHandler{feed: feed, accounts: accounts}
}

// Feed renders one page of the opportunity feed. The page holds
// currentPage/totalPages as mirrors of the last response and passes
// totalPages back so out-of-range requests are clamped before being sent.
//
// @Summary      Professional opportunity feed
// @Tags         professional
// @Produce      json
// @Param        page        query     int  false  "Page number (default 1)"
// @Param        totalPages  query     int  false  "Last known total pages, for clamping"
// @Success      200         {object}  ports.FeedPage
// @Router       /professional [get]
func (h *ProfessionalHandler) Feed(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page == 0 {
		page = 1
	}
	knownTotalPages, _ := strconv.Atoi(c.QueryParam("totalPages"))

	feed, err := h.feed.Opportunities(c.Request().Context(), sess.Token, page, knownTotalPages)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, feed)
}

// JobDetail renders one service request with its creator's public profile.
//
// @Summary      Job detail
// @Tags         professional
// @Produce      json
// @Param        id   path      string  true  "Service id"
// @Success      200  {object}  ports.JobDetail
// @Failure      404  {object}  map[string]string
// @Router       /professional/servico/{id} [get]
func (h *ProfessionalHandler) JobDetail(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	detail, err := h.feed.JobDetail(c.Request().Context(), sess.Token, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, detail)
}

// Unlock reveals the client contact for a service, spending credits or the
// active subscription backend-side.
//
// @Summary      Unlock a service's client contact
// @Tags         professional
// @Produce      json
// @Param        id   path      string  true  "Service id"
// @Success      200  {object}  ports.UnlockResult
// @Failure      402  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /professional/servico/{id}/desbloquear [post]
func (h *ProfessionalHandler) Unlock(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	result, err := h.feed.Unlock(c.Request().Context(), sess.Token, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// Unlocked lists the services this professional has already unlocked.
//
// @Summary      Unlocked services
// @Tags         professional
// @Produce      json
// @Success      200  {array}  domain.Service
// @Router       /professional/desbloqueados [get]
func (h *ProfessionalHandler) Unlocked(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	jobs, err := h.accounts.UnlockedJobs(c.Request().Context(), sess.Token)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, jobs)
}

// Account renders the professional account screen.
//
// @Summary      Professional account
// @Tags         professional
// @Produce      json
// @Success      200  {object}  domain.User
// @Router       /professional/conta [get]
func (h *ProfessionalHandler) Account(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	user, err := h.accounts.Profile(c.Request().Context(), sess.Token)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}
