// Package apiv2 implements wanikani.Client against the WaniKani API v2.
// https://docs.api.wanikani.com/20170710/
package apiv2

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/at-ishikawa/wanipop/internal/wanikani"
	"resty.dev/v3"
)

const (
	DefaultBaseURL = "https://api.wanikani.com/v2"
	Revision       = "20170710"
)

var _ wanikani.Client = (*Client)(nil)

// Client is safe for concurrent use; the underlying resty client is shared by every call.
type Client struct {
	httpClient *resty.Client
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("Wanikani-Revision", Revision)

	return &Client{
		httpClient: client,
	}
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

type resource[T any] struct {
	ID            int       `json:"id"`
	Object        string    `json:"object"`
	URL           string    `json:"url"`
	DataUpdatedAt time.Time `json:"data_updated_at"`
	Data          T         `json:"data"`
}

type collection[T any] struct {
	Object     string `json:"object"`
	URL        string `json:"url"`
	TotalCount int    `json:"total_count"`
	Pages      struct {
		NextURL     *string `json:"next_url"`
		PreviousURL *string `json:"previous_url"`
		PerPage     int     `json:"per_page"`
	} `json:"pages"`
	Data []T `json:"data"`
}

type reviewPayload struct {
	Review wanikani.ReviewResult `json:"review"`
}

func (client *Client) request(ctx context.Context, apiKey string) *resty.Request {
	return client.httpClient.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+apiKey)
}

// do sends the request and decodes a 2xx body into result.
func do(request *resty.Request, method, url string, result any) error {
	response, err := request.Execute(method, url)
	if err != nil {
		return fmt.Errorf("%w: %s %s > %w", wanikani.ErrTransport, method, url, err)
	}
	body := response.String()
	if response.StatusCode() < 200 || response.StatusCode() >= 300 {
		return fmt.Errorf("%s %s > %w", method, url, &wanikani.StatusError{
			StatusCode: response.StatusCode(),
			Body:       body,
		})
	}
	if err := json.Unmarshal([]byte(body), result); err != nil {
		return fmt.Errorf("%w: %s %s > json.Unmarshal > %w", wanikani.ErrMalformedResponse, method, url, err)
	}
	return nil
}

func (client *Client) FetchUser(ctx context.Context, apiKey string) (wanikani.UserProfile, error) {
	var response resource[wanikani.UserProfile]
	if err := do(client.request(ctx, apiKey), http.MethodGet, "/user", &response); err != nil {
		return wanikani.UserProfile{}, err
	}
	return response.Data, nil
}

func (client *Client) FetchSummary(ctx context.Context, apiKey string) (wanikani.Summary, error) {
	var response resource[wanikani.Summary]
	if err := do(client.request(ctx, apiKey), http.MethodGet, "/summary", &response); err != nil {
		return wanikani.Summary{}, err
	}
	return response.Data, nil
}

// FetchAssignmentsForSubjects returns the assignments of the given subjects.
// An empty subjectIDs returns every assignment of the user, so callers should not pass one.
func (client *Client) FetchAssignmentsForSubjects(ctx context.Context, apiKey string, subjectIDs []int) ([]wanikani.Assignment, error) {
	return fetchAll[wanikani.Assignment](ctx, client, apiKey, "/assignments", "subject_ids", subjectIDs)
}

// FetchSubjects returns the subjects with the given IDs.
// An empty subjectIDs returns every subject, so callers should not pass one.
func (client *Client) FetchSubjects(ctx context.Context, apiKey string, subjectIDs []int) ([]wanikani.Subject, error) {
	return fetchAll[wanikani.Subject](ctx, client, apiKey, "/subjects", "ids", subjectIDs)
}

func fetchAll[T any](ctx context.Context, client *Client, apiKey, path, filter string, ids []int) ([]T, error) {
	request := client.request(ctx, apiKey)
	if len(ids) > 0 {
		request.SetQueryParam(filter, joinIDs(ids))
	}

	var all []T
	url := path
	for page := 1; ; page++ {
		var response collection[T]
		if err := do(request, http.MethodGet, url, &response); err != nil {
			return nil, err
		}
		all = append(all, response.Data...)
		slog.Default().Debug("fetched a collection page",
			"path", path,
			"page", page,
			"count", len(response.Data),
			"totalCount", response.TotalCount,
		)

		if response.Pages.NextURL == nil || *response.Pages.NextURL == "" {
			break
		}
		// next_url already carries the filter
		url = *response.Pages.NextURL
		request = client.request(ctx, apiKey)
	}
	return all, nil
}

func (client *Client) SubmitReview(ctx context.Context, apiKey string, result wanikani.ReviewResult) (wanikani.SubmittedReviewData, error) {
	request := client.request(ctx, apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(reviewPayload{Review: result})

	var response resource[wanikani.SubmittedReviewData]
	if err := do(request, http.MethodPost, "/reviews", &response); err != nil {
		return wanikani.SubmittedReviewData{}, err
	}
	data := response.Data
	if data.CreatedAt.IsZero() {
		data.CreatedAt = response.DataUpdatedAt
	}
	return data, nil
}

func joinIDs(ids []int) string {
	values := make([]string, 0, len(ids))
	for _, id := range ids {
		values = append(values, strconv.Itoa(id))
	}
	return strings.Join(values, ",")
}
