// Package fetch retrieves raw registry data and persists it as snapshot
// blobs.
//
// The client is the engine's upstream collaborator: it runs out-of-band
// (cron, CLI, startup hook), never at query time. The engine only ever sees
// the blobs this package writes.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	gojson "github.com/goccy/go-json"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/hupe1980/peergo/blobstore"
)

// DefaultBaseURL is the public PeeringDB API root.
const DefaultBaseURL = "https://www.peeringdb.com/api/"

// Options configures the Client.
type Options struct {
	// HTTPClient is the client used for all requests.
	// Defaults to a client with a 30s timeout.
	HTTPClient *http.Client

	// BaseURL is the API root; the endpoint index is fetched from it.
	BaseURL string

	// APIKey is sent as "Authorization: Api-Key ..." when non-empty.
	// Authenticated requests get higher rate limits.
	APIKey string

	// RequestsPerSecond paces outgoing requests. Defaults to 2, which
	// stays well under the registry's anonymous rate limit.
	RequestsPerSecond float64

	// Concurrency bounds parallel endpoint downloads. Defaults to 4.
	Concurrency int

	// SkipExisting skips endpoints whose blob already exists.
	SkipExisting bool

	// Logger receives progress and per-endpoint failures.
	// Defaults to slog.Default().
	Logger *slog.Logger
}

// DefaultOptions are the options used when none are overridden.
var DefaultOptions = Options{
	BaseURL:           DefaultBaseURL,
	RequestsPerSecond: 2,
	Concurrency:       4,
	SkipExisting:      true,
}

// Client fetches registry endpoint data over HTTP.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	limiter    *rate.Limiter
	concurrent int
	skip       bool
	logger     *slog.Logger
}

// New creates a Client.
func New(optFns ...func(o *Options)) *Client {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: 30 * time.Second}
	}
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.RequestsPerSecond <= 0 {
		opts.RequestsPerSecond = DefaultOptions.RequestsPerSecond
	}
	if opts.Concurrency < 1 {
		opts.Concurrency = DefaultOptions.Concurrency
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	return &Client{
		httpClient: opts.HTTPClient,
		baseURL:    opts.BaseURL,
		apiKey:     opts.APIKey,
		limiter:    rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), 1),
		concurrent: opts.Concurrency,
		skip:       opts.SkipExisting,
		logger:     opts.Logger,
	}
}

// Summary describes the outcome of a FetchAll run.
type Summary struct {
	Fetched int
	Skipped int
	Failed  int
}

// Endpoints discovers the available data endpoints from the API index.
// The index carries a single-element "data" array whose first element maps
// endpoint names to their URLs.
func (c *Client) Endpoints(ctx context.Context) (map[string]string, error) {
	body, err := c.get(ctx, c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("fetch api index: %w", err)
	}

	var index struct {
		Data []map[string]string `json:"data"`
	}
	if err := gojson.Unmarshal(body, &index); err != nil {
		return nil, fmt.Errorf("decode api index: %w", err)
	}
	if len(index.Data) == 0 || len(index.Data[0]) == 0 {
		return nil, errors.New("api index has no endpoints")
	}
	return index.Data[0], nil
}

// FetchAll downloads every discovered endpoint and stores each response as
// "<name>.json" in the blob store.
//
// Per-endpoint failures are logged and counted, not fatal: the remaining
// endpoints still download. The returned error is non-nil only when the
// index itself cannot be fetched or the context is canceled.
func (c *Client) FetchAll(ctx context.Context, store blobstore.BlobStore) (Summary, error) {
	endpoints, err := c.Endpoints(ctx)
	if err != nil {
		return Summary{}, err
	}

	var fetched, skipped, failed atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrent)

	for name, url := range endpoints {
		g.Go(func() error {
			if c.skip {
				if blob, err := store.Open(ctx, name+".json"); err == nil {
					_ = blob.Close()
					skipped.Add(1)
					c.logger.Debug("endpoint blob exists, skipping", "endpoint", name)
					return nil
				}
			}

			if err := c.Fetch(ctx, name, url, store); err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				failed.Add(1)
				c.logger.Warn("endpoint fetch failed", "endpoint", name, "error", err)
				return nil
			}
			fetched.Add(1)
			return nil
		})
	}

	err = g.Wait()
	return Summary{
		Fetched: int(fetched.Load()),
		Skipped: int(skipped.Load()),
		Failed:  int(failed.Load()),
	}, err
}

// Fetch downloads one endpoint and stores the response body as
// "<name>.json". The body must be valid JSON; anything else is rejected
// without touching the store.
func (c *Client) Fetch(ctx context.Context, name, url string, store blobstore.BlobStore) error {
	body, err := c.get(ctx, url)
	if err != nil {
		return err
	}
	if !gojson.Valid(body) {
		return fmt.Errorf("endpoint %q returned invalid JSON", name)
	}

	if err := store.Put(ctx, name+".json", body); err != nil {
		return fmt.Errorf("store endpoint %q: %w", name, err)
	}
	c.logger.Info("endpoint saved", "endpoint", name, "bytes", len(body))
	return nil
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Api-Key "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: unexpected status %s", url, resp.Status)
	}
	return io.ReadAll(resp.Body)
}
