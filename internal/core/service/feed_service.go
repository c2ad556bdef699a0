package service

import (
	"context"
	"fmt"
	"net/url"
	"regexp"

	"github.com/rs/zerolog"

	"github.com/freelaverse/web-gateway/internal/core/domain"
	"github.com/freelaverse/web-gateway/internal/core/ports"
)

// FeedPageSize is fixed: a 3x3 grid on the opportunity screen.
const FeedPageSize = 9

var nonDigits = regexp.MustCompile(`\D`)

type FeedService struct {
	backend ports.BackendClient
	logger  zerolog.Logger
}

func NewFeedService(backend ports.BackendClient, logger zerolog.Logger) *FeedService {
	return &FeedService{backend: backend, logger: logger}
}

// Opportunities returns one page of jobs filtered server-side by the
// professional's registered areas. Zero registered areas short-circuits to
// an empty page without a search call. The returned pagination fields mirror
// the backend response verbatim.
func (s *FeedService) Opportunities(ctx context.Context, token string, page, knownTotalPages int) (*ports.FeedPage, error) {
	user, err := s.backend.Me(ctx, token)
	if err != nil {
		return nil, err
	}

	areas := user.AreaNames()
	if len(areas) == 0 {
		return &ports.FeedPage{Areas: []string{}, Jobs: []domain.Service{}, Page: 1, TotalPages: 1}, nil
	}

	page = clampPage(page, knownTotalPages)

	result, err := s.backend.SearchServices(ctx, token, ports.SearchQuery{
		Categories: areas,
		Page:       page,
		PageSize:   FeedPageSize,
	})
	if err != nil {
		return nil, err
	}

	fp := &ports.FeedPage{
		Areas:      areas,
		Jobs:       result.Items,
		Total:      result.Total,
		Page:       result.Page,
		TotalPages: result.TotalPages,
	}
	if fp.Jobs == nil {
		fp.Jobs = []domain.Service{}
	}
	if fp.Page == 0 {
		fp.Page = page
	}
	if fp.TotalPages == 0 {
		fp.TotalPages = 1
	}
	return fp, nil
}

// JobDetail fetches the service plus its creator's public profile. A failed
// creator lookup degrades to the job alone; the screen renders without the
// contact block.
func (s *FeedService) JobDetail(ctx context.Context, token, serviceID string) (*ports.JobDetail, error) {
	job, err := s.backend.GetService(ctx, token, serviceID)
	if err != nil {
		return nil, err
	}

	detail := &ports.JobDetail{Job: *job}
	if job.UserID != "" {
		client, err := s.backend.GetUser(ctx, token, job.UserID)
		if err != nil {
			s.logger.Error().Err(err).Str("user_id", job.UserID).Msg("failed to load service creator")
		} else {
			detail.Client = client
			detail.WhatsAppURL = whatsAppURL(client, job)
		}
	}
	return detail, nil
}

// Unlock spends credits (or the active subscription) backend-side and
// relays the revealed contact.
func (s *FeedService) Unlock(ctx context.Context, token, serviceID string) (*ports.UnlockResult, error) {
	res, err := s.backend.UnlockService(ctx, token, serviceID)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("service_id", serviceID).Msg("service unlocked")
	return res, nil
}

// clampPage keeps the request inside the window the last response reported.
func clampPage(page, knownTotalPages int) int {
	if page < 1 {
		return 1
	}
	if knownTotalPages > 0 && page > knownTotalPages {
		return knownTotalPages
	}
	return page
}

func whatsAppURL(client *domain.User, job *domain.Service) string {
	if client.Phone == "" {
		return ""
	}
	digits := nonDigits.ReplaceAllString(client.Phone, "")
	text := fmt.Sprintf("Olá %s, vi seu pedido %q no Freelaverse e gostaria de conversar sobre!", client.UserName, job.Title)
	return "https://wa.me/" + digits + "?text=" + url.QueryEscape(text)
}
