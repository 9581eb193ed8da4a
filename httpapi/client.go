// Package httpapi implements the domain repositories over the remote REST
// API. Every repository method maps to exactly one HTTP request; non-2xx
// responses always propagate to the caller carrying the remote payload.
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"

	"github.com/siakad-id/siakad/core"
)

// TokenSource returns the current credential token, or "" when logged out.
// The session store's Token method is one.
type TokenSource func() string

// Client wraps outbound requests: base URL, timeout, bearer-token
// injection and response/error normalization.
type Client struct {
	baseURL string
	http    *http.Client
	token   TokenSource
}

func NewClient(conf core.APIConfig, token TokenSource) *Client {
	return &Client{
		baseURL: strings.TrimRight(conf.BaseURL, "/"),
		http:    &http.Client{Timeout: conf.Timeout},
		token:   token,
	}
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, errors.Wrap(err, "creating request")
	}
	req.Header.Set("Accept", "application/json")
	if c.token != nil {
		if tok := c.token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}
	return req, nil
}

// getJSON issues a GET and decodes the response body into out.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

// sendJSON issues a request with a JSON payload and decodes the response
// into out; both payload and out may be nil.
func (c *Client) sendJSON(ctx context.Context, method, path string, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return errors.Wrap(err, "encoding payload")
		}
		body = bytes.NewReader(raw)
	}
	req, err := c.newRequest(ctx, method, path, nil, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req, out)
}

// getRaw issues a GET and returns the body unparsed (exports, templates).
func (c *Client) getRaw(ctx context.Context, path string) ([]byte, error) {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "sending request")
	}
	defer resp.Body.Close()

	if !is2xx(resp.StatusCode) {
		return nil, failure(resp)
	}
	raw, err := io.ReadAll(resp.Body)
	return raw, errors.Wrap(err, "reading response")
}

// upload posts file as multipart form data under the given field name.
// A 422 with a structured validation body surfaces as *core.ImportError.
func (c *Client) upload(ctx context.Context, path, field, filename string, file io.Reader) error {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile(field, filename)
	if err != nil {
		return errors.Wrap(err, "creating form file")
	}
	if _, err = io.Copy(part, file); err != nil {
		return errors.Wrap(err, "reading upload")
	}
	if err = mw.Close(); err != nil {
		return errors.Wrap(err, "finalizing form")
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, nil, &body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrap(err, "sending request")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnprocessableEntity {
		raw, _ := io.ReadAll(resp.Body)
		var impErr core.ImportError
		if err = json.Unmarshal(raw, &impErr); err == nil && len(impErr.Rows) > 0 {
			return &impErr
		}
		var env struct {
			Message string `json:"message"`
		}
		_ = json.Unmarshal(raw, &env)
		return core.NewAPIError(resp.StatusCode, env.Message, raw)
	}
	if !is2xx(resp.StatusCode) {
		return failure(resp)
	}
	return nil
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrap(err, "sending request")
	}
	defer resp.Body.Close()

	if !is2xx(resp.StatusCode) {
		return failure(resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "decoding response")
	}
	return nil
}

func is2xx(code int) bool {
	return code >= http.StatusOK && code < http.StatusMultipleChoices
}

// failure turns a non-2xx response into a *core.APIError, keeping the raw
// body and the remote "message" field when it can be decoded.
func failure(resp *http.Response) error {
	raw, _ := io.ReadAll(resp.Body)
	var env struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(raw, &env)
	return core.NewAPIError(resp.StatusCode, env.Message, raw)
}

type (
	// dataEnvelope is the remote API's single-record response shape.
	dataEnvelope[T any] struct {
		Status  string `json:"status"`
		Message string `json:"message"`
		Data    T      `json:"data"`
	}

	// pageEnvelope is the remote API's paginated list response shape.
	pageEnvelope[T any] struct {
		Status string         `json:"status"`
		Data   []T            `json:"data"`
		Meta   core.PageMeta  `json:"meta"`
		Links  core.PageLinks `json:"links"`
	}
)

func page[T any](env pageEnvelope[T]) core.Page[T] {
	return core.Page[T]{Data: env.Data, Meta: env.Meta, Links: env.Links}
}
