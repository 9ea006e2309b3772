// Package client implements the REST client for the Early Warning System
// backend. Every call parses the response body as JSON (a body that fails to
// parse reads as an empty object) and, on a non-2xx status, returns an
// *APIError whose message follows the backend's `detail` contract so error
// text stays user-legible. List endpoints coerce non-array bodies to empty
// lists. No retries, no timeouts beyond the caller's context.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/campuspulse/aews/core"
)

type Client struct {
	baseURL string
	http    *http.Client
	log     core.Logger
}

// New builds a client against baseURL (without the /api prefix). A nil
// httpClient falls back to http.DefaultClient.
func New(baseURL string, httpClient *http.Client, log core.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		log:     log,
	}
}

// errorPayload is the backend's non-2xx envelope. Detail may be a plain
// string, a validation error list or an object carrying a message.
type errorPayload struct {
	Detail json.RawMessage `json:"detail"`
}

type detailItem struct {
	Msg string        `json:"msg"`
	Loc []interface{} `json:"loc"`
}

// formatDetail renders the `detail` field into one human-readable message.
// Returns "" when there is nothing usable so the caller can fall back to the
// status text and then the per-endpoint default.
func formatDetail(detail json.RawMessage) string {
	if len(detail) == 0 || bytes.Equal(detail, []byte("null")) {
		return ""
	}

	var items []detailItem
	if err := json.Unmarshal(detail, &items); err == nil {
		parts := make([]string, 0, len(items))
		for _, item := range items {
			if item.Msg != "" {
				parts = append(parts, item.Msg)
				continue
			}
			parts = append(parts, joinLoc(item.Loc)+": invalid")
		}
		return strings.Join(parts, ". ")
	}

	var s string
	if err := json.Unmarshal(detail, &s); err == nil {
		return s
	}

	var obj struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(detail, &obj); err == nil && obj.Message != "" {
		return obj.Message
	}
	return ""
}

func joinLoc(loc []interface{}) string {
	parts := make([]string, 0, len(loc))
	for _, l := range loc {
		parts = append(parts, fmt.Sprint(l))
	}
	return strings.Join(parts, ".")
}

// do issues one request. defaultMsg is the endpoint's generic failure message,
// used both for transport failures and as the last fallback for application
// failures. out, when non-nil, receives the parsed success body; a success
// body that fails to parse leaves out at its zero value.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}, defaultMsg string) error {
	var rdr *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, defaultMsg)
		}
		rdr = bytes.NewReader(data)
	} else {
		rdr = bytes.NewReader(nil)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, rdr)
	if err != nil {
		return errors.Wrap(err, defaultMsg)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())

	res, err := c.http.Do(req)
	if err != nil {
		// transport failure: the server never answered
		return errors.Wrap(err, defaultMsg)
	}
	defer res.Body.Close()

	data, err := ioutil.ReadAll(res.Body)
	if err != nil {
		data = nil
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		var payload errorPayload
		_ = json.Unmarshal(data, &payload) // unparseable body reads as {}
		msg := formatDetail(payload.Detail)
		if msg == "" {
			msg = http.StatusText(res.StatusCode)
		}
		if msg == "" {
			msg = defaultMsg
		}
		if c.log != nil {
			c.log.Debug("client: "+method+" "+path+" failed", map[string]interface{}{"status": res.StatusCode, "message": msg})
		}
		return &APIError{StatusCode: res.StatusCode, Message: msg}
	}

	if out != nil {
		_ = json.Unmarshal(data, out) // shape mismatch reads as zero value
	}
	return nil
}

// validate runs struct validation, translating failures into a
// core.ValidationError before any network I/O happens.
func validate(v interface{}) error {
	if err := core.Validate.Struct(v); err != nil {
		return core.TranslateError(err)
	}
	return nil
}
