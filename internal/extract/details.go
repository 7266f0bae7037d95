package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/naval41/discord-application/pkg/model"
)

// InterviewDetails is the validated second-stage extraction payload. All
// numeric and enum coercion happens in newInterviewDetails; nothing past
// this boundary sees raw model output.
type InterviewDetails struct {
	Location            string
	JobRoleID           string
	NumberOfRounds      int
	OfferStatus         model.OfferStatus
	PreparationSource   string
	InterviewProcess    string
	Difficulty          model.Difficulty
	OverallRating       float64
	ConfidenceScore     int
	ConfidenceReasoning string
	IsAnonymous         bool
	Rounds              []RoundDetail
}

type RoundDetail struct {
	Sequence     int
	Name         string
	Duration     string
	Experience   string
	Difficulty   model.Difficulty
	KeyTakeaways string
}

// flexNumber accepts numbers however the model chooses to send them:
// bare, quoted, fractional or garbage. Parsing is deferred to the coerce
// helpers so malformed values degrade to defaults instead of failing the
// whole payload.
type flexNumber string

func (n *flexNumber) UnmarshalJSON(b []byte) error {
	*n = flexNumber(strings.Trim(string(b), `"`))
	return nil
}

type interviewDetailsRaw struct {
	Location            string     `json:"location"`
	JobRoleID           string     `json:"job_role_id"`
	NumberOfRounds      flexNumber `json:"number_of_rounds"`
	OfferStatus         string     `json:"offer_status"`
	PreparationSource   string     `json:"preparation_source"`
	InterviewProcess    string     `json:"company_interview_process"`
	Difficulty          string     `json:"interview_difficulty"`
	OverallRating       flexNumber `json:"overall_rating"`
	ConfidenceScore     flexNumber `json:"confidence_score"`
	ConfidenceReasoning string     `json:"confidence_reasoning"`
	IsAnonymous         bool       `json:"is_anonymous"`
	Rounds              []roundRaw `json:"interview_rounds"`
}

type roundRaw struct {
	Sequence     flexNumber `json:"sequence"`
	Name         string     `json:"name"`
	Duration     string     `json:"duration"`
	Experience   string     `json:"experience"`
	Difficulty   string     `json:"difficulty"`
	KeyTakeaways string     `json:"key_takeaways"`
}

func coerceInt(n flexNumber, fallback int) int {
	if v, err := strconv.ParseInt(string(n), 10, 64); err == nil {
		return int(v)
	}
	// "3.0" style values still count
	if f, err := strconv.ParseFloat(string(n), 64); err == nil {
		return int(f)
	}
	return fallback
}

func coerceFloat(n flexNumber, fallback float64) float64 {
	v, err := strconv.ParseFloat(string(n), 64)
	if err != nil {
		return fallback
	}
	return v
}

func newInterviewDetails(raw *interviewDetailsRaw) *InterviewDetails {
	d := &InterviewDetails{
		Location:            strings.TrimSpace(raw.Location),
		JobRoleID:           strings.TrimSpace(raw.JobRoleID),
		NumberOfRounds:      coerceInt(raw.NumberOfRounds, 0),
		OfferStatus:         model.NormalizeOfferStatus(raw.OfferStatus),
		PreparationSource:   raw.PreparationSource,
		InterviewProcess:    raw.InterviewProcess,
		Difficulty:          model.NormalizeDifficulty(raw.Difficulty),
		OverallRating:       coerceFloat(raw.OverallRating, 0),
		ConfidenceScore:     coerceInt(raw.ConfidenceScore, 0),
		ConfidenceReasoning: raw.ConfidenceReasoning,
		IsAnonymous:         raw.IsAnonymous,
	}

	for i, r := range raw.Rounds {
		seq := coerceInt(r.Sequence, 1)
		name := strings.TrimSpace(r.Name)
		if name == "" {
			name = fmt.Sprintf("Round %d", i+1)
		}
		d.Rounds = append(d.Rounds, RoundDetail{
			Sequence:     seq,
			Name:         name,
			Duration:     r.Duration,
			Experience:   r.Experience,
			Difficulty:   model.NormalizeDifficulty(r.Difficulty),
			KeyTakeaways: r.KeyTakeaways,
		})
	}
	return d
}

const detailPromptPreamble = `Analyze the interview experience. Match it to the MOST appropriate Internal Job Role ID from the list above.
If no perfect match exists, pick the closest one (e.g. Software Engineer) or generic.
Then extract the rest of the interview details.
All answers write as point of candidate experience and not as third person.
In interview experience, please keep format intact like HTML tags and rich text, replace these with the markdown tags.
Also when you are not able to get the value then put that field empty instead of having <UNKNOWN>.
Also current interview experience is lacking information around level, if you are able to guess based on the interview experience and from the title.

CONFIDENCE SCORE INSTRUCTIONS:
Analyze the quality of this interview experience and assign a 'confidence_score' (0-100).
- High Score (>80): Detailed description of rounds, clear questions asked, good structure.
- Medium Score (50-79): Some details, but missing specific questions or very brief.
- Low Score (<50): Extremely vague, one-liners, no meaningful details, or just 'I got rejected/accepted' without process details.
- ZERO ROUNDS: If the post does not describe any specific interview rounds/questions, score MUST be below 40.
Provide 'confidence_reasoning' explaining your score.`

// ExtractInterviewDetails runs the second extraction stage, scoped by the
// company's known job roles so the model picks an internal role id.
func (e *Extractor) ExtractInterviewDetails(ctx context.Context, title, content string, roles []model.JobRole) (*InterviewDetails, error) {
	var rolesText strings.Builder
	rolesText.WriteString("Internal Job Roles:\n")
	for _, role := range roles {
		fmt.Fprintf(&rolesText, "- ID: %s, Name: %s\n", role.ID, role.Name)
	}

	prompt := fmt.Sprintf("Title: %s\nSummary: %s\n\nHere are the existing Job Roles for this company:\n%s\n%s",
		title, content, rolesText.String(), detailPromptPreamble)

	req := ChatRequest{
		Messages: []map[string]string{
			{"role": "user", "content": prompt},
		},
		MaxTokens:   4096,
		Temperature: 0,
		Tools:       []Tool{interviewTool()},
		ToolChoice:  forceTool(interviewToolName),
	}

	args, err := e.caller.ChatWithTool(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("interview extraction: %w", err)
	}

	var raw interviewDetailsRaw
	if err := json.Unmarshal(args, &raw); err != nil {
		return nil, fmt.Errorf("parse interview extraction: %w", err)
	}
	return newInterviewDetails(&raw), nil
}
