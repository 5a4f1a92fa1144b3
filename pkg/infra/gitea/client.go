package gitea

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/mfenniak/update-flake-inputs-forgejo/pkg/domain/interfaces"
	"github.com/mfenniak/update-flake-inputs-forgejo/pkg/domain/types"
	"github.com/mfenniak/update-flake-inputs-forgejo/pkg/utils/logging"
	"github.com/mfenniak/update-flake-inputs-forgejo/pkg/utils/safe"
)

// HTTPClient is the transport used for Gitea API calls. http.Client
// satisfies it; tests inject their own.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the Gitea (or Forgejo) REST API of a single repository.
// The wire format of the endpoints is owned by this package; callers only
// supply branch names and pull request text.
type Client struct {
	baseURL    string
	token      types.GiteaToken
	owner      string
	repo       string
	httpClient HTTPClient
}

var _ interfaces.ReviewPublisher = (*Client)(nil)

type Option func(*Client)

func WithHTTPClient(httpClient HTTPClient) Option {
	return func(x *Client) {
		x.httpClient = httpClient
	}
}

// New builds a client and validates the token by requesting the
// authenticated user. An invalid URL, token, or repository surfaces here,
// before any update work starts.
func New(ctx context.Context, baseURL string, token types.GiteaToken, owner, repo string, options ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, goerr.Wrap(types.ErrValidation, "gitea URL is empty")
	}
	if token == "" {
		return nil, goerr.Wrap(types.ErrValidation, "gitea token is empty")
	}
	if owner == "" || repo == "" {
		return nil, goerr.Wrap(types.ErrValidation, "gitea repository is empty")
	}

	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		owner:      owner,
		repo:       repo,
		httpClient: http.DefaultClient,
	}

	for _, opt := range options {
		opt(client)
	}

	if err := client.validateToken(ctx); err != nil {
		return nil, err
	}

	return client, nil
}

func (x *Client) validateToken(ctx context.Context) error {
	var user struct {
		Login string `json:"login"`
	}
	if err := x.do(ctx, http.MethodGet, "/api/v1/user", nil, &user); err != nil {
		return goerr.Wrap(err, "failed to validate gitea token")
	}

	logging.From(ctx).Debug("gitea token validated", "login", user.Login)
	return nil
}

// CreatePullRequest opens a pull request for the pushed branch. With
// AutoMerge set, the pull request is additionally scheduled to merge once
// its checks succeed.
func (x *Client) CreatePullRequest(ctx context.Context, input *interfaces.CreatePullRequestInput) error {
	body := map[string]any{
		"head":  string(input.Head),
		"base":  input.Base,
		"title": input.Title,
		"body":  input.Body,
	}

	var pr struct {
		Index int64 `json:"number"`
	}
	path := fmt.Sprintf("/api/v1/repos/%s/%s/pulls", x.owner, x.repo)
	if err := x.do(ctx, http.MethodPost, path, body, &pr); err != nil {
		return goerr.Wrap(types.ErrPublish, "failed to create pull request",
			goerr.V("head", input.Head),
			goerr.V("base", input.Base),
			goerr.V("error", err),
		)
	}

	logging.From(ctx).Info("Created pull request",
		"number", pr.Index,
		"head", input.Head,
		"base", input.Base,
		"title", input.Title,
	)

	if !input.AutoMerge {
		return nil
	}

	merge := map[string]any{
		"Do":                        "merge",
		"merge_when_checks_succeed": true,
	}
	mergePath := fmt.Sprintf("/api/v1/repos/%s/%s/pulls/%d/merge", x.owner, x.repo, pr.Index)
	if err := x.do(ctx, http.MethodPost, mergePath, merge, nil); err != nil {
		return goerr.Wrap(types.ErrPublish, "failed to schedule auto-merge",
			goerr.V("number", pr.Index),
			goerr.V("error", err),
		)
	}

	logging.From(ctx).Info("Scheduled auto-merge", "number", pr.Index)
	return nil
}

func (x *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return goerr.Wrap(err, "failed to encode request body")
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, x.baseURL+path, reqBody)
	if err != nil {
		return goerr.Wrap(err, "failed to create request", goerr.V("path", path))
	}
	req.Header.Set("Authorization", "token "+string(x.token))
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := x.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(err, "failed to send request", goerr.V("path", path))
	}
	defer safe.Close(resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		raw, _ := io.ReadAll(resp.Body)
		return goerr.New("unexpected response from gitea",
			goerr.V("path", path),
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(raw)),
		)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return goerr.Wrap(err, "failed to decode response", goerr.V("path", path))
		}
	}

	return nil
}
