package extract

import (
	"context"
	"encoding/json"
	"fmt"
)

// ToolCaller is the slice of the chat client the extractors need.
type ToolCaller interface {
	ChatWithTool(ctx context.Context, req ChatRequest) (json.RawMessage, error)
}

// Extractor runs the two extraction stages against a tool-calling model.
type Extractor struct {
	caller ToolCaller
}

func NewExtractor(caller ToolCaller) *Extractor {
	return &Extractor{caller: caller}
}

// CompanyInfo is the first-stage classification result.
type CompanyInfo struct {
	IsInterviewExperience bool   `json:"is_interview_experience"`
	CompanyName           string `json:"company_name"`
}

const classifyPrompt = `Determine if this is an interview experience.
An interview experience is a post where a candidate shares their interview experience.
These experiences are shared in the form of Title and Summary, and have the company name in the title.
They generally contain duration, number of rounds, job role, company name.
If so, extract the Company Name.`

// ExtractCompanyInfo decides whether the post is an interview experience
// and pulls the free-text company name.
func (e *Extractor) ExtractCompanyInfo(ctx context.Context, title, content string) (*CompanyInfo, error) {
	req := ChatRequest{
		Messages: []map[string]string{
			{"role": "user", "content": fmt.Sprintf("Title: %s\nSummary: %s\n\n%s", title, content, classifyPrompt)},
		},
		MaxTokens:   1024,
		Temperature: 0,
		Tools:       []Tool{companyTool()},
		ToolChoice:  forceTool(companyToolName),
	}

	args, err := e.caller.ChatWithTool(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("company extraction: %w", err)
	}

	var info CompanyInfo
	if err := json.Unmarshal(args, &info); err != nil {
		return nil, fmt.Errorf("parse company extraction: %w", err)
	}
	return &info, nil
}
