package leetcode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"
)

const postHTML = `<html><body>
<div class="relative mt-4 flex w-full flex-none flex-col overflow-auto px-4 pb-8 gap-4">
<p>Round 1 was a coding screen.</p>
<p>Round 2 was system design.</p>
</div>
</body></html>`

func newTestClient(serverURL string) *Client {
	c := NewClient(0, zap.NewNop().Sugar())
	c.baseURL = serverURL
	c.graphqlEndpoint = serverURL + "/graphql/"
	return c
}

func TestFetchPostContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(postHTML))
	}))
	defer srv.Close()

	text, err := newTestClient(srv.URL).FetchPostContent(context.Background(), "101")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(text, "Round 1 was a coding screen.") || !strings.Contains(text, "Round 2 was system design.") {
		t.Fatalf("unexpected content: %q", text)
	}
}

func TestAccessDeniedAdvancesProfile(t *testing.T) {
	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		requests++
		if requests == 1 {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		_, _ = w.Write([]byte(postHTML))
	}))
	defer srv.Close()

	text, err := newTestClient(srv.URL).FetchPostContent(context.Background(), "101")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if requests != 2 {
		t.Fatalf("expected a retry on the next profile, got %d requests", requests)
	}
	if text == "" {
		t.Fatalf("expected content from the second profile")
	}
}

func TestNonDeniedErrorIsTerminal(t *testing.T) {
	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		requests++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	text, err := newTestClient(srv.URL).FetchPostContent(context.Background(), "101")
	if err == nil {
		t.Fatalf("expected a terminal error")
	}
	if text != "" {
		t.Fatalf("expected empty text, got %q", text)
	}
	if requests != 1 {
		t.Fatalf("a non-403 response must not try further profiles, got %d requests", requests)
	}
}

func TestAllProfilesRejectedYieldsEmpty(t *testing.T) {
	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		requests++
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	text, err := newTestClient(srv.URL).FetchPostContent(context.Background(), "101")
	if err != nil {
		t.Fatalf("exhausted profiles must not error: %v", err)
	}
	if text != "" {
		t.Fatalf("expected empty text, got %q", text)
	}
	if requests != len(retrievalProfiles) {
		t.Fatalf("expected %d attempts, got %d", len(retrievalProfiles), requests)
	}
}

func TestMissingContentRegion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><div class="other">nothing here</div></body></html>`))
	}))
	defer srv.Close()

	text, err := newTestClient(srv.URL).FetchPostContent(context.Background(), "101")
	if err != nil {
		t.Fatalf("missing region is a warning, not an error: %v", err)
	}
	if text != "" {
		t.Fatalf("expected empty text, got %q", text)
	}
}

const listJSON = `{
  "data": {
    "ugcArticleDiscussionArticles": {
      "totalNum": 2,
      "pageInfo": {"hasNextPage": true},
      "edges": [
        {"node": {"uuid": "u1", "title": "Interview at Acme", "slug": "interview-at-acme", "summary": "two rounds", "topicId": 101}},
        {"node": {"uuid": "u2", "title": "Interview at Globex", "slug": "interview-at-globex", "summary": "three rounds", "topicId": 102}}
      ]
    }
  }
}`

func TestFetchPosts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(listJSON))
	}))
	defer srv.Close()

	page, err := newTestClient(srv.URL).FetchPosts(context.Background(), 0, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(page.Posts))
	}
	if !page.HasNextPage {
		t.Fatalf("expected hasNextPage to be true")
	}
	if page.Posts[0].UUID != "u1" || page.Posts[0].TopicID.String() != "101" {
		t.Fatalf("unexpected first post: %+v", page.Posts[0])
	}
}

func TestFetchPostsErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	if _, err := newTestClient(srv.URL).FetchPosts(context.Background(), 0, 50); err == nil {
		t.Fatalf("expected error on non-200 listing response")
	}
}
