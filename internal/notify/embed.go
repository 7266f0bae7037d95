package notify

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/naval41/discord-application/pkg"
	"github.com/naval41/discord-application/pkg/model"
)

// unknownSentinel is the placeholder the extraction service is told never
// to emit; its presence means the extraction ignored that instruction and
// the digest is not worth sending.
const unknownSentinel = "<UNKNOWN>"

const interviewLinkBase = "https://roundz.ai/interviews"

var statusColors = map[model.OfferStatus]int{
	model.OfferStatusOffered:  0x43B581,
	model.OfferStatusPending:  0xFFAA00,
	model.OfferStatusRejected: 0xF04747,
}

const defaultColor = 0x3498DB

// InterviewSummary carries everything the digest needs from a persisted
// interview.
type InterviewSummary struct {
	InterviewID uuid.UUID
	Slug        string
	CompanyName string
	RoleName    string
	ProfileName string
	Location    string
	Difficulty  model.Difficulty
	OfferStatus model.OfferStatus
	NumRounds   int
	Rounds      []model.InterviewRound
}

// invalid placeholder spellings the extraction service uses for missing
// locations
var invalidLocations = map[string]bool{
	"":          true,
	"none":      true,
	"unknown":   true,
	"null":      true,
	"<unknown>": true,
}

func validLocation(loc string) (string, bool) {
	loc = strings.TrimSpace(loc)
	return loc, !invalidLocations[strings.ToLower(loc)]
}

func roundEmoji(name string) string {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "coding") || strings.Contains(lower, "dsa"):
		return "\U0001F4BB"
	case strings.Contains(lower, "system") && strings.Contains(lower, "design"):
		return "\U0001F3D7️"
	case strings.Contains(lower, "behavioral") || strings.Contains(lower, "manager"):
		return "\U0001F4AC"
	default:
		return "\U0001F518"
	}
}

// buildDescription renders the round-by-round digest body.
func buildDescription(rounds []model.InterviewRound) string {
	var b strings.Builder
	for i, round := range rounds {
		name := round.Name
		if name == "" {
			name = fmt.Sprintf("Round %d", i+1)
		}
		preview := pkg.Truncate(round.Experience, 150)
		fmt.Fprintf(&b, "%s **%s**\n%s\n\n", roundEmoji(name), name, preview)
	}
	return b.String()
}

// BuildInterviewEmbed renders the digest embed. ok is false when the
// quality gate rejects it: an empty round description, or one still
// containing the unknown-placeholder sentinel, suppresses delivery.
func BuildInterviewEmbed(s InterviewSummary, now time.Time) (Embed, bool) {
	description := buildDescription(s.Rounds)
	if strings.TrimSpace(description) == "" || strings.Contains(description, unknownSentinel) {
		return Embed{}, false
	}

	color, ok := statusColors[s.OfferStatus]
	if !ok {
		color = defaultColor
	}

	loc, locOK := validLocation(s.Location)
	locPart := ""
	locField := "Unspecified"
	if locOK {
		locPart = " | " + loc
		locField = loc
	}

	title := fmt.Sprintf("%s | %s | %s%s | %s", s.CompanyName, s.ProfileName, s.RoleName, locPart, s.OfferStatus)

	return Embed{
		Title: title,
		URL:   fmt.Sprintf("%s/%s/%s", interviewLinkBase, s.InterviewID, s.Slug),
		Color: color,
		Fields: []EmbedField{
			{Name: "Company", Value: s.CompanyName, Inline: true},
			{Name: "Role", Value: s.RoleName, Inline: true},
			{Name: "Difficulty", Value: string(s.Difficulty), Inline: true},
			{Name: "Status", Value: string(s.OfferStatus), Inline: true},
			{Name: "Rounds", Value: fmt.Sprintf("%d", s.NumRounds), Inline: true},
			{Name: "Location", Value: locField, Inline: true},
		},
		Description: description,
		Footer: &EmbedFooter{
			Text: fmt.Sprintf("Roundz AI | Interview Experiences | %s", now.Format("01/02/2006")),
		},
	}, true
}
