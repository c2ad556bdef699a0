// Package backend implements the typed HTTP client for the remote
// Freelaverse REST API. Responses are decoded into tagged types at this
// boundary; nothing downstream handles raw JSON.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/freelaverse/web-gateway/internal/api/metrics"
	"github.com/freelaverse/web-gateway/internal/core/domain"
	"github.com/freelaverse/web-gateway/internal/core/ports"
)

const defaultTimeout = 15 * time.Second

// Client talks to the backend REST API rooted at baseURL.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// NewClient builds a Client. baseURL includes the API path suffix
// (e.g. http://localhost:5002/api). A timeout <= 0 falls back to the default.
func NewClient(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// errorEnvelope matches the backend's error body. Older endpoints use
// "error", newer ones "message".
type errorEnvelope struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (e errorEnvelope) text() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}

// do performs one round trip, timed under the given operation label. A
// non-2xx status is decoded into an UpstreamError carrying the backend's
// message when one is present; 5xx and transport failures wrap
// ErrBackendUnavailable.
func (c *Client) do(ctx context.Context, op, method, path, token string, body, out any) error {
	start := time.Now()
	err := c.roundTrip(ctx, method, path, token, body, out)
	metrics.BackendRequestDuration.WithLabelValues(op, outcome(err)).Observe(time.Since(start).Seconds())
	return err
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrBackendUnavailable):
		return "unavailable"
	default:
		return "upstream_error"
	}
}

func (c *Client) roundTrip(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", domain.ErrBackendUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.decodeError(method, path, resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode %s %s: %v", domain.ErrBackendUnavailable, method, path, err)
	}
	return nil
}

func (c *Client) decodeError(method, path string, resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var env errorEnvelope
	_ = json.Unmarshal(raw, &env)

	if resp.StatusCode >= 500 {
		c.log.Error().
			Int("status", resp.StatusCode).
			Str("method", method).
			Str("path", path).
			Msg("backend request failed")
		return fmt.Errorf("%w: %s %s returned %d", domain.ErrBackendUnavailable, method, path, resp.StatusCode)
	}

	return &domain.UpstreamError{StatusCode: resp.StatusCode, Message: env.text()}
}

// ── Auth ──────────────────────────────────────────────────────────────────────

func (c *Client) Register(ctx context.Context, input ports.RegisterInput) error {
	return c.do(ctx, "register", http.MethodPost, "/Auth/register", "", input, nil)
}

// loginEnvelope tolerates every response shape the backend has shipped:
// token under three names, userType numeric or string, flat or nested under
// "user".
type loginEnvelope struct {
	Token       string          `json:"token"`
	AccessToken string          `json:"accessToken"`
	AuthToken   string          `json:"authToken"`
	UserType    json.RawMessage `json:"userType"`
	Type        json.RawMessage `json:"type"`
	UserID      string          `json:"userId"`
	ID          string          `json:"id"`
	User        *struct {
		ID       string          `json:"id"`
		UserType json.RawMessage `json:"userType"`
		Type     json.RawMessage `json:"type"`
	} `json:"user"`
}

func (c *Client) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	body := map[string]string{"email": email, "password": password}

	var env loginEnvelope
	if err := c.do(ctx, "login", http.MethodPost, "/Auth/login", "", body, &env); err != nil {
		return nil, err
	}

	res := &ports.LoginResult{Token: firstNonEmpty(env.Token, env.AccessToken, env.AuthToken)}
	if res.Token == "" {
		return nil, fmt.Errorf("%w: login response carried no token", domain.ErrBackendUnavailable)
	}

	res.Role = firstNonEmpty(roleString(env.UserType), roleString(env.Type))
	res.UserID = firstNonEmpty(env.UserID, env.ID)
	if env.User != nil {
		res.Role = firstNonEmpty(res.Role, roleString(env.User.UserType), roleString(env.User.Type))
		res.UserID = firstNonEmpty(res.UserID, env.User.ID)
	}
	return res, nil
}

func (c *Client) ConfirmEmail(ctx context.Context, email, code string) (string, error) {
	body := map[string]string{"email": email, "code": code}

	var out struct {
		Message string `json:"message"`
	}
	if err := c.do(ctx, "confirm_email", http.MethodPost, "/Auth/confirm-email", "", body, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

func (c *Client) ResendConfirmationCode(ctx context.Context, email string) error {
	return c.do(ctx, "resend_code", http.MethodPost, "/Auth/resend-code", "", map[string]string{"email": email}, nil)
}

func (c *Client) RequestPasswordReset(ctx context.Context, email string) error {
	return c.do(ctx, "request_password_reset", http.MethodPost, "/Auth/request-password-reset", "", map[string]string{"email": email}, nil)
}

func (c *Client) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	body := map[string]string{"email": email, "code": code, "newPassword": newPassword}
	return c.do(ctx, "reset_password", http.MethodPost, "/Auth/reset-password", "", body, nil)
}

// ── Profiles ──────────────────────────────────────────────────────────────────

func (c *Client) Me(ctx context.Context, token string) (*domain.User, error) {
	var user domain.User
	if err := c.do(ctx, "me", http.MethodGet, "/Auth/me", token, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) GetUser(ctx context.Context, token, userID string) (*domain.User, error) {
	var user domain.User
	err := c.do(ctx, "get_user", http.MethodGet, "/Users/"+url.PathEscape(userID), token, nil, &user)
	if err != nil {
		if ue, ok := domain.AsUpstream(err); ok && ue.StatusCode == http.StatusNotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// ── Services ──────────────────────────────────────────────────────────────────

func (c *Client) CreateService(ctx context.Context, token string, input ports.CreateServiceInput) (*domain.Service, error) {
	var svc domain.Service
	if err := c.do(ctx, "create_service", http.MethodPost, "/Services", token, input, &svc); err != nil {
		return nil, err
	}
	return &svc, nil
}

func (c *Client) GetService(ctx context.Context, token, serviceID string) (*domain.Service, error) {
	var svc domain.Service
	err := c.do(ctx, "get_service", http.MethodGet, "/Services/"+url.PathEscape(serviceID), token, nil, &svc)
	if err != nil {
		if ue, ok := domain.AsUpstream(err); ok && ue.StatusCode == http.StatusNotFound {
			return nil, domain.ErrServiceNotFound
		}
		return nil, err
	}
	return &svc, nil
}

func (c *Client) SearchServices(ctx context.Context, token string, query ports.SearchQuery) (*ports.SearchResult, error) {
	params := url.Values{}
	for _, cat := range query.Categories {
		params.Add("categories", cat)
	}
	params.Set("page", strconv.Itoa(query.Page))
	params.Set("pageSize", strconv.Itoa(query.PageSize))

	var out ports.SearchResult
	if err := c.do(ctx, "search_services", http.MethodGet, "/Services/search?"+params.Encode(), token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteService(ctx context.Context, token, serviceID string) error {
	err := c.do(ctx, "delete_service", http.MethodDelete, "/Services/"+url.PathEscape(serviceID), token, nil, nil)
	if err != nil {
		if ue, ok := domain.AsUpstream(err); ok && ue.StatusCode == http.StatusNotFound {
			return domain.ErrServiceNotFound
		}
	}
	return err
}

func (c *Client) UnlockService(ctx context.Context, token, serviceID string) (*ports.UnlockResult, error) {
	var out ports.UnlockResult
	err := c.do(ctx, "unlock_service", http.MethodPost, "/Services/"+url.PathEscape(serviceID)+"/unlock", token, nil, &out)
	if err != nil {
		if ue, ok := domain.AsUpstream(err); ok && ue.StatusCode == http.StatusNotFound {
			return nil, domain.ErrServiceNotFound
		}
		return nil, err
	}
	return &out, nil
}

// ── Taxonomy ──────────────────────────────────────────────────────────────────

func (c *Client) ListProfessionalAreas(ctx context.Context) ([]domain.ProfessionalArea, error) {
	var areas []domain.ProfessionalArea
	if err := c.do(ctx, "list_areas", http.MethodGet, "/ProfessionalAreas", "", nil, &areas); err != nil {
		return nil, err
	}
	return areas, nil
}

// ── Payments ──────────────────────────────────────────────────────────────────

func (c *Client) CreatePixCharge(ctx context.Context, token string, input ports.PixChargeInput) (*domain.PixCharge, error) {
	var charge domain.PixCharge
	if err := c.do(ctx, "create_pix_charge", http.MethodPost, "/pix", token, input, &charge); err != nil {
		return nil, err
	}
	return &charge, nil
}

func (c *Client) CreateSubscriptionCheckout(ctx context.Context, token string) (*domain.SubscriptionCheckout, error) {
	var out domain.SubscriptionCheckout
	if err := c.do(ctx, "subscription_checkout", http.MethodPost, "/stripe/checkout", token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// roleString renders a userType field that may arrive as a JSON number or
// string into the cookie form ("1"/"2").
func roleString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var asNumber int
	if err := json.Unmarshal(raw, &asNumber); err == nil {
		return strconv.Itoa(asNumber)
	}
	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		return asString
	}
	return ""
}
