package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/toxctl/toxctl/internal/model"
)

// credentials is the login/register request body.
type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginResponse carries the bearer token issued on successful login.
type loginResponse struct {
	AccessToken string `json:"access_token"`
}

// Login authenticates and returns the issued bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var resp loginResponse
	if err := c.Call(ctx, http.MethodPost, "/api/auth/login", credentials{Email: email, Password: password}, &resp); err != nil {
		return "", err
	}
	if resp.AccessToken == "" {
		return "", fmt.Errorf("server did not return an access token")
	}
	return resp.AccessToken, nil
}

// Register creates a new account. Only the absence of an error matters.
func (c *Client) Register(ctx context.Context, email, password string) error {
	return c.Call(ctx, http.MethodPost, "/api/auth/register", credentials{Email: email, Password: password}, nil)
}

// Analyze submits text for toxicity, sentiment and crisis analysis.
func (c *Client) Analyze(ctx context.Context, text string) (*model.AnalysisResult, error) {
	var result model.AnalysisResult
	body := struct {
		Text string `json:"text"`
	}{Text: text}
	if err := c.Call(ctx, http.MethodPost, "/api/analyze", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// History fetches the user's analysis history. The filter token is appended
// as a query parameter only when it is not "all"; filtering happens
// server-side.
func (c *Client) History(ctx context.Context, filter string) ([]model.HistoryRecord, error) {
	endpoint := "/api/history"
	if filter != "" && filter != model.FilterAll {
		endpoint += "?filter=" + url.QueryEscape(filter)
	}

	var page model.HistoryPage
	if err := c.Call(ctx, http.MethodGet, endpoint, nil, &page); err != nil {
		return nil, err
	}
	return page.History, nil
}

// GetRecord fetches one history record in its full analysis shape.
func (c *Client) GetRecord(ctx context.Context, id string) (*model.AnalysisResult, error) {
	var result model.AnalysisResult
	if err := c.Call(ctx, http.MethodGet, "/api/history/"+url.PathEscape(id), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// favoriteResponse is the toggle endpoint's body. Older deployments return
// an empty object, so the field is optional.
type favoriteResponse struct {
	Favorite *bool `json:"favorite"`
}

// ToggleFavorite flips the favorite flag server-side. When the server
// reports the resulting state it is returned; otherwise nil, and the caller
// infers the new state from its local toggle.
func (c *Client) ToggleFavorite(ctx context.Context, id string) (*bool, error) {
	var resp favoriteResponse
	if err := c.Call(ctx, http.MethodPost, "/api/history/"+url.PathEscape(id)+"/favorite", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Favorite, nil
}

// DeleteRecord deletes one history record.
func (c *Client) DeleteRecord(ctx context.Context, id string) error {
	return c.Call(ctx, http.MethodDelete, "/api/history/"+url.PathEscape(id), nil, nil)
}

// HealthStatus is the health endpoint's response.
type HealthStatus struct {
	Status         string `json:"status"`
	Timestamp      string `json:"timestamp"`
	DetoxifyLoaded bool   `json:"detoxify_loaded"`
	RewriterLoaded bool   `json:"rewriter_loaded"`
}

// Health pings the server's health endpoint.
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	var status HealthStatus
	if err := c.Call(ctx, http.MethodGet, "/api/health", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}
