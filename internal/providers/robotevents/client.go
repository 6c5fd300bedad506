// Package robotevents implements the StatsProvider contract against the
// RobotEvents v2 API: authenticated paginated GETs mapped into domain
// records. Requests are rate limited with a token bucket to stay inside
// the upstream per-token quota.
package robotevents

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/time/rate"

	"github.com/jayala/vex-stats-service/internal/domain"
	"github.com/jayala/vex-stats-service/internal/providers"
)

// Config controls how the client reaches the upstream API.
type Config struct {
	BaseURL           string
	Token             string
	HTTPClient        *http.Client
	MaxPages          int
	RequestsPerMinute int
}

// Client fetches competition data from RobotEvents.
type Client struct {
	baseURL    string
	token      string
	httpClient httpDoer
	limiter    *rate.Limiter
	maxPages   int
}

var _ providers.StatsProvider = (*Client)(nil)

// NewClient constructs a RobotEvents client with the provided configuration.
func NewClient(cfg Config) *Client {
	rpm := resolveRequestsPerMinute(cfg.RequestsPerMinute)
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		token:      cfg.Token,
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		limiter:    rate.NewLimiter(rate.Limit(float64(rpm)/60.0), 1),
		maxPages:   resolveMaxPages(cfg.MaxPages),
	}
}

// GetTeamsByNumber returns all teams registered under a team number.
// Numbers are reused across programs, so more than one match is normal.
func (c *Client) GetTeamsByNumber(ctx context.Context, number string) ([]domain.Team, error) {
	q := url.Values{}
	q.Set("number[]", number)
	data, err := fetchAll[teamData](ctx, c, "teams", "/teams", q)
	if err != nil {
		return nil, err
	}
	teams := make([]domain.Team, 0, len(data))
	for _, t := range data {
		teams = append(teams, mapTeam(t))
	}
	return teams, nil
}

// GetSeasons returns competition seasons, optionally only active ones.
func (c *Client) GetSeasons(ctx context.Context, activeOnly bool) ([]domain.Season, error) {
	q := url.Values{}
	if activeOnly {
		q.Set("active", "true")
	}
	data, err := fetchAll[seasonData](ctx, c, "seasons", "/seasons", q)
	if err != nil {
		return nil, err
	}
	seasons := make([]domain.Season, 0, len(data))
	for _, s := range data {
		seasons = append(seasons, mapSeason(s))
	}
	return seasons, nil
}

// GetTeamEvents returns the events a team is or was registered for.
func (c *Client) GetTeamEvents(ctx context.Context, teamID int, startAfter string) ([]domain.EventRef, error) {
	q := url.Values{}
	if startAfter != "" {
		q.Set("start", startAfter)
	}
	path := fmt.Sprintf("/teams/%d/events", teamID)
	data, err := fetchAll[eventData](ctx, c, "events", path, q)
	if err != nil {
		return nil, err
	}
	events := make([]domain.EventRef, 0, len(data))
	for _, e := range data {
		events = append(events, mapEvent(e))
	}
	return events, nil
}

// GetTeamSkills returns a team's skills runs across the given seasons.
func (c *Client) GetTeamSkills(ctx context.Context, teamID int, seasonIDs []int) ([]domain.SkillRun, error) {
	path := fmt.Sprintf("/teams/%d/skills", teamID)
	data, err := fetchAll[skillData](ctx, c, "skills", path, seasonQuery(seasonIDs))
	if err != nil {
		return nil, err
	}
	runs := make([]domain.SkillRun, 0, len(data))
	for _, s := range data {
		runs = append(runs, mapSkill(s))
	}
	return runs, nil
}

// GetTeamRankings returns a team's qualification rankings across the
// given seasons.
func (c *Client) GetTeamRankings(ctx context.Context, teamID int, seasonIDs []int) ([]domain.RankingRecord, error) {
	path := fmt.Sprintf("/teams/%d/rankings", teamID)
	data, err := fetchAll[rankingData](ctx, c, "rankings", path, seasonQuery(seasonIDs))
	if err != nil {
		return nil, err
	}
	records := make([]domain.RankingRecord, 0, len(data))
	for _, r := range data {
		records = append(records, mapRanking(r))
	}
	return records, nil
}

// GetTeamAwards returns a team's awards across the given seasons.
func (c *Client) GetTeamAwards(ctx context.Context, teamID int, seasonIDs []int) ([]domain.AwardRecord, error) {
	path := fmt.Sprintf("/teams/%d/awards", teamID)
	data, err := fetchAll[awardData](ctx, c, "awards", path, seasonQuery(seasonIDs))
	if err != nil {
		return nil, err
	}
	awards := make([]domain.AwardRecord, 0, len(data))
	for _, a := range data {
		awards = append(awards, mapAward(a))
	}
	return awards, nil
}

func seasonQuery(seasonIDs []int) url.Values {
	q := url.Values{}
	for _, id := range seasonIDs {
		q.Add("season[]", strconv.Itoa(id))
	}
	return q
}

// fetchAll walks the paginated envelope until the last page, an empty
// page, or the page cap.
func fetchAll[T any](ctx context.Context, c *Client, op, path string, q url.Values) ([]T, error) {
	all := make([]T, 0)
	for page := 1; ; page++ {
		payload, err := fetchPage[T](ctx, c, op, path, q, page)
		if err != nil {
			return nil, err
		}
		all = append(all, payload.Data...)

		lastPage := payload.Meta.LastPage
		if lastPage > 0 {
			if page >= lastPage {
				break
			}
		} else if len(payload.Data) < defaultPerPage {
			break
		}
		if page >= c.maxPages {
			break
		}
	}
	return all, nil
}

func fetchPage[T any](ctx context.Context, c *Client, op, path string, q url.Values, page int) (pagedResponse[T], error) {
	var payload pagedResponse[T]

	if err := c.limiter.Wait(ctx); err != nil {
		return payload, err
	}

	req, err := c.buildRequest(ctx, path, q, page)
	if err != nil {
		return payload, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return payload, &providers.NetworkError{Provider: providerName, Operation: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return payload, &providers.ServerError{
			Provider:   providerName,
			Operation:  op,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return payload, fmt.Errorf("%s %s: decode response: %w", providerName, op, err)
	}
	return payload, nil
}

func (c *Client) buildRequest(ctx context.Context, path string, q url.Values, page int) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}

	query := req.URL.Query()
	for key, values := range q {
		for _, v := range values {
			query.Add(key, v)
		}
	}
	query.Set("per_page", strconv.Itoa(defaultPerPage))
	query.Set("page", strconv.Itoa(page))
	req.URL.RawQuery = query.Encode()

	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	return req, nil
}
