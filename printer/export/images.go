package export

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru"
	"github.com/ygoproxy/ygoproxy/printer/config"
	"golang.org/x/sync/errgroup"
)

// DefaultImageHosts are the hosts card artwork is fetched from.
var DefaultImageHosts = []string{"images.ygoprodeck.com"}

// ImageFetcher downloads card artwork and turns it into data URIs so the
// rendered document does not depend on the network.
type ImageFetcher struct {
	client  *http.Client
	cache   *lru.Cache
	workers int
	hosts   map[string]bool
	logger  *slog.Logger
}

// NewImageFetcher only fetches from hosts; with no hosts every host is
// allowed.
func NewImageFetcher(client *http.Client, cacheSize, workers int, hosts ...string) (*ImageFetcher, error) {
	if client == nil {
		client = &http.Client{Timeout: config.ImageFetchTimeout}
	}
	if cacheSize <= 0 {
		cacheSize = config.ImageCacheSize
	}
	if workers <= 0 {
		workers = config.ImageFetchWorkers
	}
	cache, err := lru.New(cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create image cache: %w", err)
	}

	allowed := make(map[string]bool, len(hosts))
	for _, host := range hosts {
		if host = strings.ToLower(strings.TrimSpace(host)); host != "" {
			allowed[host] = true
		}
	}

	return &ImageFetcher{
		client:  client,
		cache:   cache,
		workers: workers,
		hosts:   allowed,
		logger:  slog.With(slog.String("service", "image_fetcher")),
	}, nil
}

// FetchAll fetches every distinct URL concurrently. URLs that fail are
// logged and left out of the result.
func (f *ImageFetcher) FetchAll(ctx context.Context, urls []string) map[string]string {
	var (
		mu     sync.Mutex
		result = make(map[string]string, len(urls))
		seen   = make(map[string]bool, len(urls))
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(f.workers)
	for _, u := range urls {
		if u == "" || seen[u] {
			continue
		}
		seen[u] = true

		g.Go(func() error {
			dataURI, err := f.Fetch(gctx, u)
			if err != nil {
				f.logger.Warn("Card image unavailable, using placeholder",
					slog.String("url", u),
					slog.Any("error", err))
				return nil
			}
			mu.Lock()
			result[u] = dataURI
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return result
}

// Fetch returns the image at rawURL as a data URI.
func (f *ImageFetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	if cached, ok := f.cache.Get(rawURL); ok {
		return cached.(string), nil
	}

	target, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid url: %w", err)
	}
	if len(f.hosts) > 0 && !f.hosts[strings.ToLower(target.Hostname())] {
		return "", fmt.Errorf("host %q not allowed", target.Hostname())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "image/avif,image/webp,image/apng,image/*,*/*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, config.MaxImageSize+1))
	if err != nil {
		return "", err
	}
	if len(data) > config.MaxImageSize {
		return "", fmt.Errorf("image exceeds %d bytes", config.MaxImageSize)
	}

	contentType := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		contentType = http.DetectContentType(data)
	}
	if i := strings.IndexByte(contentType, ';'); i >= 0 {
		contentType = strings.TrimSpace(contentType[:i])
	}

	dataURI := "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
	f.cache.Add(rawURL, dataURI)
	return dataURI, nil
}
