package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/amaumene/whattowatch/internal/domain"
)

const (
	defaultTimeout  = 5 * time.Second
	tokenHeader     = "X-Token"
	contentTypeJSON = "application/json"
	maxErrorBody    = 512
)

type Config struct {
	BaseURL string
	Timeout time.Duration
	Client  *http.Client
	Tokens  domain.TokenStore
}

type APIClient struct {
	baseURL    string
	httpClient *http.Client
	tokens     domain.TokenStore
}

func NewAPIClient(config *Config) (*APIClient, error) {
	if config.BaseURL == "" {
		return nil, ErrBaseURLNotSet
	}

	httpClient := config.Client
	if httpClient == nil {
		timeout := config.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &APIClient{
		baseURL:    strings.TrimRight(config.BaseURL, "/"),
		httpClient: httpClient,
		tokens:     config.Tokens,
	}, nil
}

func (c *APIClient) Get(ctx context.Context, path string, out any) (int, error) {
	return c.doRequest(ctx, http.MethodGet, path, nil, "", out)
}

func (c *APIClient) Post(ctx context.Context, path string, body, out any) (int, error) {
	return c.doJSONRequest(ctx, http.MethodPost, path, body, out)
}

func (c *APIClient) Patch(ctx context.Context, path string, body, out any) (int, error) {
	return c.doJSONRequest(ctx, http.MethodPatch, path, body, out)
}

func (c *APIClient) Delete(ctx context.Context, path string, out any) (int, error) {
	return c.doRequest(ctx, http.MethodDelete, path, nil, "", out)
}

func (c *APIClient) Upload(ctx context.Context, path string, file *domain.FormFile, out any) (int, error) {
	body, contentType, err := prepareMultipart(file)
	if err != nil {
		return 0, err
	}
	return c.doRequest(ctx, http.MethodPost, path, body, contentType, out)
}

func (c *APIClient) doJSONRequest(ctx context.Context, method, path string, body, out any) (int, error) {
	if body == nil {
		return c.doRequest(ctx, method, path, nil, "", out)
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return 0, fmt.Errorf("encoding request: %w", err)
	}
	return c.doRequest(ctx, method, path, bytes.NewReader(payload), contentTypeJSON, out)
}

func (c *APIClient) doRequest(ctx context.Context, method, path string, body io.Reader, contentType string, out any) (int, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.buildURL(path), body)
	if err != nil {
		return 0, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", contentTypeJSON)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if err := c.authorize(ctx, req); err != nil {
		return 0, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	log.WithFields(log.Fields{
		"method": method,
		"path":   path,
		"status": resp.StatusCode,
	}).Debug("api request completed")

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return resp.StatusCode, &StatusError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       truncate(strings.TrimSpace(string(data)), maxErrorBody),
		}
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return resp.StatusCode, fmt.Errorf("decoding response: %w", err)
		}
	}

	return resp.StatusCode, nil
}

func (c *APIClient) buildURL(path string) string {
	return c.baseURL + "/" + strings.TrimLeft(path, "/")
}

func (c *APIClient) authorize(ctx context.Context, req *http.Request) error {
	if c.tokens == nil {
		return nil
	}

	token, err := c.tokens.Token(ctx)
	if errors.Is(err, domain.ErrTokenNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("loading token: %w", err)
	}

	req.Header.Set(tokenHeader, string(token))
	return nil
}

func prepareMultipart(file *domain.FormFile) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile(file.Field, file.Filename)
	if err != nil {
		return nil, "", fmt.Errorf("creating form file: %w", err)
	}

	if _, err := part.Write(file.Content); err != nil {
		return nil, "", fmt.Errorf("writing %s data: %w", file.Field, err)
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("closing multipart writer: %w", err)
	}

	return &buf, writer.FormDataContentType(), nil
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
