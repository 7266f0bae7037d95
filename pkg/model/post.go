package model

import "encoding/json"

// Post is a single discussion post summary returned by the LeetCode
// discuss listing. It is transient: only its UUID survives a run, in the
// visited ledger. TopicID arrives as a JSON number but is treated as an
// opaque identifier everywhere.
type Post struct {
	UUID    string      `json:"uuid"`
	Title   string      `json:"title"`
	Slug    string      `json:"slug"`
	Summary string      `json:"summary"`
	TopicID json.Number `json:"topicId"`
}

// PostPage is one page of the discuss listing.
type PostPage struct {
	Posts       []Post
	HasNextPage bool
}
