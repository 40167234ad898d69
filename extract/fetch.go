package extract

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// userAgent mirrors a desktop browser so servers return the same page a
// reader would see.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

var fetchClient = &http.Client{Timeout: 30 * time.Second}

// Fetch downloads a page over HTTP and extracts its content. Hebrew is
// preferred in content negotiation so bilingual sites serve the RTL
// edition.
func Fetch(ctx context.Context, url string) (*Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept-Language", "he,en;q=0.9")

	resp, err := fetchClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: unexpected status %s", url, resp.Status)
	}

	return Parse(resp.Body)
}
