// Package amadeus implements the offer provider collaborator against the
// Amadeus self-service flight-offers search API.
package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/kevinjwwilliams/Automatic-BAY-NYC/internal/domain"
	"github.com/kevinjwwilliams/Automatic-BAY-NYC/internal/infrastructure/logger"
	"github.com/kevinjwwilliams/Automatic-BAY-NYC/internal/infrastructure/retry"
	"github.com/kevinjwwilliams/Automatic-BAY-NYC/internal/infrastructure/timeutil"
)

// ProviderName is the unique identifier for this provider.
const ProviderName = "amadeus"

const (
	tokenPath  = "/v1/security/oauth2/token"
	searchPath = "/v2/shopping/flight-offers"

	// tokenExpirySlack refreshes the cached token slightly before the
	// provider-reported expiry to avoid racing it.
	tokenExpirySlack = 30 * time.Second
)

// Config holds the adapter settings.
type Config struct {
	// ClientID and ClientSecret are the API credentials.
	ClientID     string
	ClientSecret string

	// BaseURL is the API root (test or production environment).
	BaseURL string

	// Timeout bounds each HTTP request.
	Timeout time.Duration

	// Retry controls backoff for transient failures. Zero value disables
	// retries beyond the initial attempt.
	Retry retry.Config
}

// Adapter implements domain.OfferProvider against the Amadeus API.
type Adapter struct {
	cfg        Config
	httpClient *http.Client
	clock      timeutil.Clock
	log        *logger.Logger

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

// NewAdapter creates an Adapter with the given configuration.
func NewAdapter(cfg Config, log *logger.Logger) *Adapter {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.Retry.MaxAttempts == 0 {
		cfg.Retry = retry.ProviderConfig
	}
	if log == nil {
		log = logger.Nop()
	}

	return &Adapter{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		clock:      timeutil.NewRealClock(),
		log:        log.WithContext("provider", ProviderName),
	}
}

// Search implements domain.OfferProvider. It executes one flight-offers
// query and returns the normalized offers in the provider's response order.
// Failures come back as *domain.ProviderError carrying the pair.
func (a *Adapter) Search(ctx context.Context, query domain.ProviderQuery) ([]domain.Offer, error) {
	pair := query.Pair()

	token, err := a.token(ctx)
	if err != nil {
		return nil, a.wrapError(pair, err)
	}

	raw, err := retry.DoWithResult(ctx, func() ([]offerDTO, error) {
		return a.doSearch(ctx, token, query)
	}, a.cfg.Retry.WithRetryIf(retry.SkipPermanent))
	if err != nil {
		return nil, a.wrapError(pair, err)
	}

	return normalize(raw, a.log.WithPair(pair.String())), nil
}

// doSearch performs a single flight-offers request.
func (a *Adapter) doSearch(ctx context.Context, token string, query domain.ProviderQuery) ([]offerDTO, error) {
	params := url.Values{}
	params.Set("originLocationCode", query.Origin)
	params.Set("destinationLocationCode", query.Destination)
	params.Set("departureDate", query.DepartureDate)
	params.Set("adults", strconv.Itoa(query.Adults))
	params.Set("max", strconv.Itoa(query.MaxResults))
	params.Set("nonStop", strconv.FormatBool(query.NonStopOnly))
	if len(query.Airlines) > 0 {
		params.Set("includedAirlineCodes", strings.Join(query.Airlines, ","))
	}
	if query.MaxPrice > 0 {
		// The API accepts an integer ceiling only.
		params.Set("maxPrice", strconv.Itoa(int(query.MaxPrice)))
	}

	endpoint := a.cfg.BaseURL + searchPath + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, retry.NewPermanent(err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("search returned status %d: %s", resp.StatusCode, errorDetail(body))
		if transient(resp.StatusCode) {
			return nil, err
		}
		return nil, retry.NewPermanent(err)
	}

	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, retry.NewPermanent(fmt.Errorf("decode response: %w", err))
	}

	return parsed.Data, nil
}

// token returns a cached access token, fetching a fresh one when the cached
// token is missing or about to expire.
func (a *Adapter) token(ctx context.Context) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.accessToken != "" && a.clock.Now().Before(a.tokenExpiry) {
		return a.accessToken, nil
	}

	parsed, err := retry.DoWithResult(ctx, func() (tokenResponse, error) {
		return a.fetchToken(ctx)
	}, a.cfg.Retry.WithRetryIf(retry.SkipPermanent))
	if err != nil {
		return "", fmt.Errorf("authenticate: %w", err)
	}

	a.accessToken = parsed.AccessToken
	a.tokenExpiry = a.clock.Now().Add(time.Duration(parsed.ExpiresIn)*time.Second - tokenExpirySlack)
	a.log.Debug().Int("expires_in", parsed.ExpiresIn).Msg("Access token refreshed")

	return a.accessToken, nil
}

// fetchToken performs a single client-credentials grant request.
func (a *Adapter) fetchToken(ctx context.Context) (tokenResponse, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", a.cfg.ClientID)
	form.Set("client_secret", a.cfg.ClientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.cfg.BaseURL+tokenPath, strings.NewReader(form.Encode()))
	if err != nil {
		return tokenResponse{}, retry.NewPermanent(err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return tokenResponse{}, fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return tokenResponse{}, fmt.Errorf("read token response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("token endpoint returned status %d: %s", resp.StatusCode, errorDetail(body))
		if transient(resp.StatusCode) {
			return tokenResponse{}, err
		}
		return tokenResponse{}, retry.NewPermanent(err)
	}

	var parsed tokenResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return tokenResponse{}, retry.NewPermanent(fmt.Errorf("decode token response: %w", err))
	}
	if parsed.AccessToken == "" {
		return tokenResponse{}, retry.NewPermanent(fmt.Errorf("token endpoint returned empty access token"))
	}

	return parsed, nil
}

// wrapError converts an adapter failure into the per-pair provider error.
func (a *Adapter) wrapError(pair domain.PairQuery, err error) *domain.ProviderError {
	if retry.IsPermanent(err) {
		return domain.NewProviderError(pair, err)
	}
	return domain.NewRetryableProviderError(pair, err)
}

// transient reports whether an HTTP status is worth retrying.
func transient(status int) bool {
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}

// errorDetail extracts a short description from the provider error envelope,
// falling back to the raw body.
func errorDetail(body []byte) string {
	var envelope searchResponse
	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Errors) > 0 {
		e := envelope.Errors[0]
		if e.Detail != "" {
			return e.Title + ": " + e.Detail
		}
		return e.Title
	}

	const maxLen = 200
	s := strings.TrimSpace(string(body))
	if len(s) > maxLen {
		s = s[:maxLen]
	}
	return s
}

// Ensure Adapter implements domain.OfferProvider at compile time.
var _ domain.OfferProvider = (*Adapter)(nil)
