// Package webdav implements core.Repository against a WebDAV-compatible
// file server that holds one canonical JSON document and one mirrored
// markdown document per note.
package webdav

import (
	"context"
	"crypto/tls"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/aretw0/notedav/pkg/core"
	"github.com/aretw0/notedav/pkg/markdown"
)

const (
	methodPropfind = "PROPFIND"
	methodMkcol    = "MKCOL"

	defaultTimeout = 30 * time.Second

	notesDir  = "/notes/"
	mirrorDir = "/notes-md/"
)

// propfindBody asks for name and content type only; the response is scraped,
// not parsed, so anything beyond that is wasted bytes.
const propfindBody = `<?xml version="1.0" encoding="utf-8"?>
<d:propfind xmlns:d="DAV:">
  <d:prop>
    <d:displayname/>
    <d:getcontenttype/>
  </d:prop>
</d:propfind>`

// noteIDRe matches "<uuid>.json" names in a listing response body. Server
// implementations disagree on markup structure and percent-encoding, so
// scanning the raw body is more robust than parsing the XML into a tree.
var noteIDRe = regexp.MustCompile(`([0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12})\.json`)

// Config holds the connection parameters for a Client.
type Config struct {
	URL      string
	Username string
	Password string

	// Timeout bounds every request. Defaults to 30 seconds.
	Timeout time.Duration

	Logger *slog.Logger

	// HTTPClient overrides the default transport. Used by tests; when set,
	// Timeout is ignored.
	HTTPClient *http.Client
}

// Client speaks the WebDAV file protocol. It is immutable after
// construction and safe for concurrent use.
type Client struct {
	http       *http.Client
	baseURL    string
	authHeader string
	logger     *slog.Logger
}

var (
	_ core.Repository = (*Client)(nil)
	_ core.Prober     = (*Client)(nil)
)

// New creates a client for the given server. The base URL is stored without
// its trailing slash; self-signed certificates are accepted, since
// self-hosted WebDAV servers commonly run on them.
func New(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
			},
		}
	}

	auth := cfg.Username + ":" + cfg.Password
	return &Client{
		http:       httpClient,
		baseURL:    strings.TrimRight(cfg.URL, "/"),
		authHeader: "Basic " + base64.StdEncoding.EncodeToString([]byte(auth)),
		logger:     cfg.Logger,
	}
}

// TestConnection probes the notes directory with a zero-depth PROPFIND.
// A 404 means a fresh server: the storage directories are bootstrapped and
// the probe reports success.
func (c *Client) TestConnection(ctx context.Context) (bool, error) {
	resp, err := c.do(ctx, methodPropfind, c.baseURL+notesDir, http.Header{"Depth": {"0"}}, "")
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusMultiStatus:
		return true, nil
	case http.StatusUnauthorized, http.StatusForbidden:
		return false, core.ErrInvalidCredentials
	case http.StatusNotFound:
		if err := c.Initialize(ctx); err != nil {
			return false, err
		}
		return true, nil
	default:
		return false, &core.ProtocolError{Op: "connection test", Status: resp.StatusCode}
	}
}

// Initialize creates the JSON and mirror directories. Best-effort:
// already-exists and permission races are expected and harmless, so errors
// are logged and swallowed.
func (c *Client) Initialize(ctx context.Context) error {
	for _, dir := range []string{notesDir, mirrorDir} {
		resp, err := c.do(ctx, methodMkcol, c.baseURL+dir, nil, "")
		if err != nil {
			c.debug("mkcol failed", "dir", dir, "error", err)
			continue
		}
		resp.Body.Close()
	}
	return nil
}

// ListNoteIDs issues a depth-1 PROPFIND against the notes directory and
// scrapes note ids out of the response body: once percent-decoded, once
// raw, accumulating lower-cased unique ids in first-seen order.
func (c *Client) ListNoteIDs(ctx context.Context) ([]string, error) {
	header := http.Header{
		"Depth":        {"1"},
		"Content-Type": {"application/xml"},
	}
	resp, err := c.do(ctx, methodPropfind, c.baseURL+notesDir, header, propfindBody)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) && resp.StatusCode != http.StatusMultiStatus {
		return nil, &core.ProtocolError{Op: "PROPFIND", Status: resp.StatusCode}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &core.NetworkError{Op: "PROPFIND", Err: err}
	}
	text := string(data)

	var ids []string
	seen := make(map[string]bool)
	collect := func(s string) {
		for _, m := range noteIDRe.FindAllStringSubmatch(s, -1) {
			id := strings.ToLower(m[1])
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}

	if decoded, err := url.PathUnescape(text); err == nil {
		collect(decoded)
	}
	collect(text)

	c.debug("listed note ids", "count", len(ids))
	return ids, nil
}

// Get fetches the canonical JSON document and normalizes legacy shape
// issues before returning it.
func (c *Client) Get(ctx context.Context, id string) (core.Note, error) {
	resp, err := c.do(ctx, http.MethodGet, c.noteURL(id), nil, "")
	if err != nil {
		return core.Note{}, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return core.Note{}, &core.NetworkError{Op: "GET", Err: err}
		}
		var n core.Note
		if err := json.Unmarshal(data, &n); err != nil {
			return core.Note{}, &core.ParseError{Detail: "invalid note json", Err: err}
		}
		n.Normalize()
		return n, nil
	case http.StatusNotFound:
		return core.Note{}, &core.NotFoundError{ID: id}
	default:
		return core.Note{}, &core.ProtocolError{Op: "GET", Status: resp.StatusCode}
	}
}

// Save writes the canonical JSON first; its failure aborts the operation.
// Only then is the markdown mirror written, and a mirror failure is logged
// but never surfaced: the JSON is authoritative, the mirror a convenience.
func (c *Client) Save(ctx context.Context, n core.Note) error {
	if err := c.saveJSON(ctx, n); err != nil {
		return err
	}
	c.saveMirror(ctx, n)
	return nil
}

func (c *Client) saveJSON(ctx context.Context, n core.Note) error {
	data, err := json.MarshalIndent(n, "", "  ")
	if err != nil {
		return &core.ParseError{Detail: "encode note " + n.ID, Err: err}
	}

	header := http.Header{"Content-Type": {"application/json"}}
	resp, err := c.do(ctx, http.MethodPut, c.noteURL(n.ID), header, string(data))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		body, _ := io.ReadAll(resp.Body)
		return &core.ProtocolError{
			Op:     "PUT",
			Status: resp.StatusCode,
			Body:   strings.TrimSpace(string(body)),
		}
	}
	return nil
}

func (c *Client) saveMirror(ctx context.Context, n core.Note) {
	doc := markdown.Render(n)
	header := http.Header{"Content-Type": {"text/markdown; charset=utf-8"}}
	resp, err := c.do(ctx, http.MethodPut, c.mirrorURL(n.Title), header, doc)
	if err != nil {
		c.warn("mirror write failed", "id", n.ID, "error", err)
		return
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		c.warn("mirror write failed", "id", n.ID, "status", resp.StatusCode)
	}
}

// Delete removes both server-side representations. Best-effort on both
// halves: deleting an already-partially-removed note must not surface as
// a failure.
func (c *Client) Delete(ctx context.Context, n core.Note) error {
	for _, target := range []string{c.noteURL(n.ID), c.mirrorURL(n.Title)} {
		resp, err := c.do(ctx, http.MethodDelete, target, nil, "")
		if err != nil {
			c.debug("delete failed", "url", target, "error", err)
			continue
		}
		resp.Body.Close()
	}
	return nil
}

// List fetches every listed note sequentially and returns summaries sorted
// by updatedAt descending. A note whose fetch fails is skipped so one
// corrupt document never blocks the whole listing; ties keep fetch order.
func (c *Client) List(ctx context.Context) ([]core.NoteSummary, error) {
	ids, err := c.ListNoteIDs(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]core.NoteSummary, 0, len(ids))
	for _, id := range ids {
		n, err := c.Get(ctx, id)
		if err != nil {
			c.warn("skipping note during list", "id", id, "error", err)
			continue
		}
		summaries = append(summaries, n.Summary())
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].UpdatedAt > summaries[j].UpdatedAt
	})
	return summaries, nil
}

func (c *Client) noteURL(id string) string {
	return c.baseURL + notesDir + id + ".json"
}

func (c *Client) mirrorURL(title string) string {
	return c.baseURL + mirrorDir + SanitizeFilename(title) + ".md"
}

func (c *Client) do(ctx context.Context, method, target string, header http.Header, body string) (*http.Response, error) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, &core.NetworkError{Op: method, Err: err}
	}
	req.Header.Set("Authorization", c.authHeader)
	for key, values := range header {
		for _, v := range values {
			req.Header.Set(key, v)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &core.NetworkError{Op: method, Err: err}
	}
	return resp, nil
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

func (c *Client) warn(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Warn(msg, args...)
	}
}

func (c *Client) debug(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Debug(msg, args...)
	}
}
