package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client posts channel messages through the Discord bot REST API.
type Client struct {
	token     string
	channelID string
	base      string
	http      *http.Client
}

func NewClient(botToken, channelID string) *Client {
	return &Client{
		token:     botToken,
		channelID: channelID,
		base:      "https://discord.com/api/v10",
		http:      &http.Client{Timeout: 15 * time.Second},
	}
}

type Embed struct {
	Title       string       `json:"title,omitempty"`
	URL         string       `json:"url,omitempty"`
	Color       int          `json:"color,omitempty"`
	Fields      []EmbedField `json:"fields,omitempty"`
	Description string       `json:"description,omitempty"`
	Footer      *EmbedFooter `json:"footer,omitempty"`
}

type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type EmbedFooter struct {
	Text string `json:"text"`
}

type message struct {
	Content string  `json:"content,omitempty"`
	Embeds  []Embed `json:"embeds,omitempty"`
}

// SendEmbed delivers one embed to the configured channel.
func (c *Client) SendEmbed(ctx context.Context, embed Embed) error {
	url := fmt.Sprintf("%s/channels/%s/messages", c.base, c.channelID)

	b, err := json.Marshal(message{Embeds: []Embed{embed}})
	if err != nil {
		return fmt.Errorf("marshal discord message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bot "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("send discord message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("discord api error %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
