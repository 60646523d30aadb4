// Package nexus is a typed client for the Nexus Mods v1 REST API:
// user validation, mod tracking, endorsements, game metadata and file
// listings.
package nexus

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"nexus-mod-tracker/config"
)

const (
	nexusAPIURL = "https://api.nexusmods.com"
	apiVersion  = "v1"
)

// Client handles communication with the Nexus Mods API. It holds no
// state beyond the key and transport handle, so a single Client is safe
// to share across concurrently issued requests.
type Client struct {
	BaseURL    string
	UserAgent  string
	HTTPClient *http.Client

	// RateLimitFunc, when set, receives a snapshot parsed from every
	// response that carries the X-RL-* headers.
	RateLimitFunc func(RateLimits)

	apiKey string
}

// NewClient creates a new Nexus Mods API client using the provided
// configuration. It fails fast when the API key cannot be sent as a
// header value.
func NewClient(cfg config.Config) (*Client, error) {
	if cfg.NexusAPIKey == "" {
		return nil, fmt.Errorf("NEXUS_API_KEY is not configured")
	}
	if err := checkHeaderValue(cfg.NexusAPIKey); err != nil {
		return nil, fmt.Errorf("NEXUS_API_KEY is not a valid header value: %w", err)
	}
	if cfg.UserAgent == "" {
		return nil, fmt.Errorf("USERAGENT is not configured")
	}

	return &Client{
		BaseURL:   nexusAPIURL,
		UserAgent: cfg.UserAgent,
		apiKey:    cfg.NexusAPIKey,
		// Timeouts are deliberately left to the caller: swap in a tuned
		// http.Client when needed, cancel individual calls via context.
		HTTPClient: &http.Client{},
	}, nil
}

// checkHeaderValue rejects strings that cannot travel as an HTTP header
// value.
func checkHeaderValue(v string) error {
	for i := 0; i < len(v); i++ {
		if b := v[i]; b < 0x20 || b == 0x7f {
			return fmt.Errorf("control character at position %d", i)
		}
	}
	return nil
}

// endpointURL joins the versioned path prefix with the resource path and
// the .json suffix the API expects.
func (c *Client) endpointURL(resource string) string {
	return c.BaseURL + "/" + apiVersion + "/" + resource + ".json"
}

// send performs one authenticated round trip and hands back the raw
// status and body. Status interpretation is entirely the decoder's job;
// only transport-level failures surface here.
func (c *Client) send(ctx context.Context, method, fullURL string, query url.Values, form url.Values) (int, []byte, error) {
	var reqBody io.Reader
	if form != nil {
		reqBody = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}
	if query != nil {
		req.URL.RawQuery = query.Encode()
	}

	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", "application/json")
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if c.RateLimitFunc != nil {
		if limits, err := ParseRateLimits(resp.Header); err == nil {
			c.RateLimitFunc(limits)
		}
	}

	return resp.StatusCode, body, nil
}

// Validate checks the configured API key and returns the account it
// belongs to.
func (c *Client) Validate(ctx context.Context) (UserIdentity, error) {
	const endpoint = "users/validate"
	status, body, err := c.send(ctx, http.MethodGet, c.endpointURL(endpoint), nil, nil)
	if err != nil {
		return UserIdentity{}, err
	}
	return decodeAccountGet[UserIdentity](endpoint, status, body)
}

// TrackedMods retrieves the user's tracked mods, grouped by game domain.
func (c *Client) TrackedMods(ctx context.Context) (TrackedMods, error) {
	const endpoint = "user/tracked_mods"
	status, body, err := c.send(ctx, http.MethodGet, c.endpointURL(endpoint), nil, nil)
	if err != nil {
		return TrackedMods{}, err
	}
	entries, err := decodeAccountGet[[]TrackedMod](endpoint, status, body)
	if err != nil {
		return TrackedMods{}, err
	}
	return GroupTrackedMods(entries), nil
}

// TrackMod starts tracking a mod in the given game domain. The returned
// status distinguishes a fresh track from one that already existed.
func (c *Client) TrackMod(ctx context.Context, domain string, modID uint64) (TrackStatus, error) {
	const endpoint = "user/tracked_mods"
	query := url.Values{"domain_name": {domain}}
	form := url.Values{"mod_id": {strconv.FormatUint(modID, 10)}}
	status, body, err := c.send(ctx, http.MethodPost, c.endpointURL(endpoint), query, form)
	if err != nil {
		return TrackStatus{}, err
	}
	return decodeTrack(endpoint, status, body, ModID{id: modID})
}

// UntrackMod stops tracking a mod in the given game domain.
func (c *Client) UntrackMod(ctx context.Context, domain string, modID uint64) error {
	const endpoint = "user/tracked_mods"
	query := url.Values{"domain_name": {domain}}
	form := url.Values{"mod_id": {strconv.FormatUint(modID, 10)}}
	status, body, err := c.send(ctx, http.MethodDelete, c.endpointURL(endpoint), query, form)
	if err != nil {
		return err
	}
	return decodeUntrack(endpoint, status, body)
}

// Endorsements retrieves the user's endorsement history.
func (c *Client) Endorsements(ctx context.Context) ([]Endorsement, error) {
	const endpoint = "user/endorsements"
	status, body, err := c.send(ctx, http.MethodGet, c.endpointURL(endpoint), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeAccountGet[[]Endorsement](endpoint, status, body)
}

// Games retrieves all games hosted on Nexus Mods, optionally including
// games awaiting approval.
func (c *Client) Games(ctx context.Context, includeUnapproved bool) ([]GameInfo, error) {
	const endpoint = "games"
	var query url.Values
	if includeUnapproved {
		query = url.Values{"include_unapproved": {"true"}}
	}
	status, body, err := c.send(ctx, http.MethodGet, c.endpointURL(endpoint), query, nil)
	if err != nil {
		return nil, err
	}
	return decodeGameGet[[]GameInfo](endpoint, status, body)
}

// Game retrieves a single game by its domain slug.
func (c *Client) Game(ctx context.Context, domain string) (GameInfo, error) {
	endpoint := "games/" + domain
	status, body, err := c.send(ctx, http.MethodGet, c.endpointURL(endpoint), nil, nil)
	if err != nil {
		return GameInfo{}, err
	}
	return decodeGameGet[GameInfo](endpoint, status, body)
}

// ModFiles lists the files of a mod, optionally filtered to the given
// categories.
func (c *Client) ModFiles(ctx context.Context, domain string, modID uint64, categories ...FileCategory) (ModFiles, error) {
	endpoint := fmt.Sprintf("games/%s/mods/%d/files", domain, modID)
	var query url.Values
	if len(categories) > 0 {
		names := make([]string, len(categories))
		for i, cat := range categories {
			names[i] = cat.String()
		}
		query = url.Values{"category": {strings.Join(names, ",")}}
	}
	status, body, err := c.send(ctx, http.MethodGet, c.endpointURL(endpoint), query, nil)
	if err != nil {
		return ModFiles{}, err
	}
	return decodeGameGet[ModFiles](endpoint, status, body)
}

// ModFile retrieves a single file of a mod by file id.
func (c *Client) ModFile(ctx context.Context, domain string, modID, fileID uint64) (ModFile, error) {
	endpoint := fmt.Sprintf("games/%s/mods/%d/files/%d", domain, modID, fileID)
	status, body, err := c.send(ctx, http.MethodGet, c.endpointURL(endpoint), nil, nil)
	if err != nil {
		return ModFile{}, err
	}
	return decodeGameGet[ModFile](endpoint, status, body)
}
