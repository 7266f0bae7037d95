package leetcode

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/naval41/discord-application/pkg/model"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const graphqlURL = "https://leetcode.com/graphql/"

const defaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Client talks to the LeetCode discuss GraphQL API and the discuss detail
// pages. All outbound calls go through a shared politeness limiter.
type Client struct {
	http    *http.Client
	limiter *rate.Limiter
	logger  *zap.SugaredLogger

	// overridable in tests
	graphqlEndpoint string
	baseURL         string
}

func NewClient(politenessDelay time.Duration, logger *zap.SugaredLogger) *Client {
	limit := rate.Inf
	if politenessDelay > 0 {
		limit = rate.Every(politenessDelay)
	}
	return &Client{
		http:            &http.Client{Timeout: 30 * time.Second},
		limiter:         rate.NewLimiter(limit, 1),
		logger:          logger,
		graphqlEndpoint: graphqlURL,
		baseURL:         "https://leetcode.com",
	}
}

type GraphQLRequest struct {
	Query         string                 `json:"query"`
	Variables     map[string]interface{} `json:"variables"`
	OperationName string                 `json:"operationName"`
}

const discussListQuery = `
query discussPostItems($orderBy: ArticleOrderByEnum, $keywords: [String]!, $tagSlugs: [String!], $skip: Int, $first: Int) {
  ugcArticleDiscussionArticles(
    orderBy: $orderBy
    keywords: $keywords
    tagSlugs: $tagSlugs
    skip: $skip
    first: $first
  ) {
    totalNum
    pageInfo {
      hasNextPage
    }
    edges {
      node {
        uuid
        title
        slug
        summary
        topicId
      }
    }
  }
}
`

type listResponse struct {
	Data struct {
		Articles struct {
			TotalNum int `json:"totalNum"`
			PageInfo struct {
				HasNextPage bool `json:"hasNextPage"`
			} `json:"pageInfo"`
			Edges []struct {
				Node model.Post `json:"node"`
			} `json:"edges"`
		} `json:"ugcArticleDiscussionArticles"`
	} `json:"data"`
}

// FetchPosts returns one page of interview-tagged discussion posts,
// ordered by HOT, starting at the given skip offset.
func (c *Client) FetchPosts(ctx context.Context, skip, first int) (*model.PostPage, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	body := GraphQLRequest{
		Query: discussListQuery,
		Variables: map[string]interface{}{
			"orderBy":  "HOT",
			"keywords": []string{""},
			"tagSlugs": []string{"interview"},
			"skip":     skip,
			"first":    first,
		},
		OperationName: "discussPostItems",
	}

	jsonData, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal graphql body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.graphqlEndpoint, bytes.NewReader(jsonData))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", defaultUserAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		preview, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("unexpected status %d from leetcode: %s", resp.StatusCode, string(preview))
	}

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var apiResp listResponse
	if err := json.Unmarshal(respBytes, &apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode leetcode response: %w", err)
	}

	page := &model.PostPage{
		HasNextPage: apiResp.Data.Articles.PageInfo.HasNextPage,
	}
	for _, edge := range apiResp.Data.Articles.Edges {
		page.Posts = append(page.Posts, edge.Node)
	}
	return page, nil
}
