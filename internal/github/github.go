// Package github is a minimal GitHub REST client for the repository
// lifecycle commands.
package github

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/provkit/provision/internal/client"
)

// DefaultAPIURL is the public GitHub API endpoint.
const DefaultAPIURL = "https://api.github.com"

// ErrRepoExists is returned by CreateRepo when the repository already
// exists. Callers usually treat this as success and proceed.
var ErrRepoExists = errors.New("repository already exists")

// Client calls the GitHub REST API with token authentication.
type Client struct {
	apiURL string
	http   *client.Client
}

// Option configures a Client.
type Option func(*Client)

// WithAPIURL overrides the API endpoint. Tests point this at a local server.
func WithAPIURL(url string) Option {
	return func(c *Client) {
		c.apiURL = strings.TrimSuffix(url, "/")
	}
}

// New creates a GitHub client authenticating with token.
func New(token string, opts ...Option) *Client {
	c := &Client{
		apiURL: DefaultAPIURL,
		http: client.NewClient(
			// Repo operations are user-initiated one-offs, not probe
			// fan-out; give them a more generous timeout.
			client.WithTimeout(15*time.Second),
			client.WithAuthFunc(func(string) (string, string) {
				return "Authorization", "token " + token
			}),
		),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type createRepoRequest struct {
	Name    string `json:"name"`
	Private bool   `json:"private"`
}

// CreateRepo creates a repository under the authenticated user. A 422
// response maps to ErrRepoExists.
func (c *Client) CreateRepo(ctx context.Context, name string, private bool) error {
	err := c.http.Do(ctx, "POST", c.apiURL+"/user/repos", createRepoRequest{Name: name, Private: private}, nil)
	var httpErr *client.HTTPError
	if errors.As(err, &httpErr) && httpErr.StatusCode == 422 {
		return ErrRepoExists
	}
	return err
}

// DeleteRepo deletes owner/name. Requires a token with the delete_repo
// scope.
func (c *Client) DeleteRepo(ctx context.Context, owner, name string) error {
	return c.http.Do(ctx, "DELETE", c.apiURL+"/repos/"+owner+"/"+name, nil, nil)
}

type renameRepoRequest struct {
	Name string `json:"name"`
}

// RenameRepo renames owner/oldName to newName.
func (c *Client) RenameRepo(ctx context.Context, owner, oldName, newName string) error {
	return c.http.Do(ctx, "PATCH", c.apiURL+"/repos/"+owner+"/"+oldName, renameRepoRequest{Name: newName}, nil)
}
