package leetcode

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// The discuss detail page renders the post body inside this div. Brittle
// against frontend redesigns, in which case fetches degrade to the
// listing summary.
const contentSelector = `div[class="relative mt-4 flex w-full flex-none flex-col overflow-auto px-4 pb-8 gap-4"]`

// retrievalProfile is one named network fingerprint. Profiles are tried
// in order; an access-denied response advances to the next one.
type retrievalProfile struct {
	name    string
	headers map[string]string
}

var retrievalProfiles = []retrievalProfile{
	{
		name: "chrome",
		headers: map[string]string{
			"User-Agent":      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
			"Accept-Language": "en-US,en;q=0.9",
			"Referer":         "https://leetcode.com/discuss/interview-experience?currentPage=1&orderBy=hot&query=",
		},
	},
	{
		name: "firefox",
		headers: map[string]string{
			"User-Agent":      "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:120.0) Gecko/20100101 Firefox/120.0",
			"Accept-Language": "en-US,en;q=0.9",
			"Referer":         "https://leetcode.com/discuss/interview-experience?currentPage=1&orderBy=hot&query=",
		},
	},
	{
		name: "safari",
		headers: map[string]string{
			"User-Agent":      "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/16.1 Safari/605.1.15",
			"Accept-Language": "en-US,en;q=0.9",
			"Referer":         "https://leetcode.com/discuss/interview-experience?currentPage=1&orderBy=hot&query=",
		},
	},
	{
		name: "opera",
		headers: map[string]string{
			"User-Agent":      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/104.0.5112.102 Safari/537.36 OPR/90.0.4480.54",
			"Accept-Language": "en-US,en;q=0.9",
			"Referer":         "https://leetcode.com/discuss/interview-experience?currentPage=1&orderBy=hot&query=",
		},
	},
}

// FetchPostContent retrieves the plain text of a post's detail page. It
// walks the retrieval profiles in order, waiting out the politeness
// limiter before each attempt. Outcomes:
//   - 200 with the content region present: its text
//   - 200 without the content region: empty text, logged warning
//   - 403: retryable, next profile
//   - anything else (including transport errors): terminal, empty text + error
//   - all profiles rejected: empty text
//
// Callers fall back to the listing summary whenever the text is empty.
func (c *Client) FetchPostContent(ctx context.Context, topicID string) (string, error) {
	url := c.baseURL + "/discuss/post/" + topicID + "/"

	for _, profile := range retrievalProfiles {
		if err := c.limiter.Wait(ctx); err != nil {
			return "", err
		}

		text, retryable, err := c.fetchWithProfile(ctx, url, profile)
		if err != nil {
			if retryable {
				c.logger.Infow("access denied, trying next profile", "url", url, "profile", profile.name)
				continue
			}
			return "", err
		}
		return text, nil
	}

	c.logger.Warnw("all retrieval profiles rejected", "url", url)
	return "", nil
}

func (c *Client) fetchWithProfile(ctx context.Context, url string, profile retrievalProfile) (text string, retryable bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", false, err
	}
	for k, v := range profile.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", false, fmt.Errorf("fetch post content: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		// fall through to parsing
	case resp.StatusCode == http.StatusForbidden:
		return "", true, fmt.Errorf("access denied (%s)", profile.name)
	default:
		return "", false, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, url)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", false, fmt.Errorf("parse post page: %w", err)
	}

	region := doc.Find(contentSelector)
	if region.Length() == 0 {
		c.logger.Warnw("content region not found", "url", url)
		return "", false, nil
	}

	var parts []string
	region.Contents().Each(func(_ int, s *goquery.Selection) {
		if t := strings.TrimSpace(s.Text()); t != "" {
			parts = append(parts, t)
		}
	})
	return strings.Join(parts, "\n"), false, nil
}
