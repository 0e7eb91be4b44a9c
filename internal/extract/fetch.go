package extract

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/groupwatch/groupwatch/internal/common"
	"github.com/groupwatch/groupwatch/internal/service"
)

// imageFetchTimeout bounds the whole proof-image resolution, including
// retries. Resolution is best-effort and must never block ingestion.
const imageFetchTimeout = 5 * time.Second

// maxProbeBody limits how much of a proof page is read when hunting
// for an embedded image URL.
const maxProbeBody = 256 << 10

var (
	ogImageMeta = regexp.MustCompile(`(?i)<meta[^>]+property="og:image"[^>]+content="([^"]+)"`)
	firstImgTag = regexp.MustCompile(`(?i)<img\s[^>]*src="([^"]+)"`)
)

var imageClient = &http.Client{Timeout: imageFetchTimeout}

// ResolveDirectImageURL fetches a proof URL and resolves it to a URL
// serving the image directly: the URL itself if it already serves an
// image, otherwise the og:image or first <img> found on the page.
// Any transport or parse failure yields "" — network errors are never
// propagated to the caller.
func ResolveDirectImageURL(ctx context.Context, rawURL string) string {
	ctx, cancel := context.WithTimeout(ctx, imageFetchTimeout)
	defer cancel()

	var resolved string
	err := common.WithRetry(ctx, func() error {
		u, err := probeImageURL(ctx, rawURL)
		if err != nil {
			return err
		}
		resolved = u
		return nil
	}, service.RetryOptions{
		MaxAttempts:  2,
		InitialDelay: 200 * time.Millisecond,
	})
	if err != nil {
		return ""
	}
	return resolved
}

func probeImageURL(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		// A malformed URL will never fetch; don't retry it.
		return "", &common.RetryableError{Err: err, Retryable: false}
	}

	resp, err := imageClient.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if strings.HasPrefix(resp.Header.Get("Content-Type"), "image/") {
		return rawURL, nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxProbeBody))
	if err != nil {
		return "", err
	}

	if m := ogImageMeta.FindSubmatch(body); m != nil {
		return string(m[1]), nil
	}
	if m := firstImgTag.FindSubmatch(body); m != nil {
		return string(m[1]), nil
	}

	return "", &common.RetryableError{Err: fmt.Errorf("no image found at %s", rawURL), Retryable: false}
}
