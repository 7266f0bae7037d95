package notify

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/naval41/discord-application/pkg/model"
)

func summaryWithRounds(rounds []model.InterviewRound) InterviewSummary {
	return InterviewSummary{
		InterviewID: uuid.New(),
		Slug:        "interview-at-acme",
		CompanyName: "Acme",
		RoleName:    "Software Engineer",
		ProfileName: "Software Engineering",
		Location:    "Bangalore",
		Difficulty:  model.DifficultyMedium,
		OfferStatus: model.OfferStatusOffered,
		NumRounds:   len(rounds),
		Rounds:      rounds,
	}
}

func TestQualityGateRejectsEmptyDescription(t *testing.T) {
	if _, ok := BuildInterviewEmbed(summaryWithRounds(nil), time.Now()); ok {
		t.Fatalf("embed with no rounds must be suppressed")
	}
}

func TestQualityGateRejectsUnknownSentinel(t *testing.T) {
	rounds := []model.InterviewRound{
		{Name: "Coding Round", Experience: "<UNKNOWN>"},
	}
	if _, ok := BuildInterviewEmbed(summaryWithRounds(rounds), time.Now()); ok {
		t.Fatalf("embed containing the unknown sentinel must be suppressed")
	}
}

func TestEmbedContents(t *testing.T) {
	rounds := []model.InterviewRound{
		{Name: "Coding Round", Experience: strings.Repeat("a", 200)},
		{Name: "System Design Round", Experience: "designed a url shortener"},
	}
	s := summaryWithRounds(rounds)

	embed, ok := BuildInterviewEmbed(s, time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC))
	if !ok {
		t.Fatalf("expected embed to pass the quality gate")
	}

	if embed.Color != 0x43B581 {
		t.Fatalf("OFFERED must map to the success color, got %#x", embed.Color)
	}
	if embed.Title != "Acme | Software Engineering | Software Engineer | Bangalore | OFFERED" {
		t.Fatalf("unexpected title: %q", embed.Title)
	}
	if !strings.HasPrefix(embed.URL, "https://roundz.ai/interviews/") || !strings.HasSuffix(embed.URL, "/interview-at-acme") {
		t.Fatalf("unexpected deep link: %q", embed.URL)
	}
	if len(embed.Fields) != 6 {
		t.Fatalf("expected 6 fields, got %d", len(embed.Fields))
	}
	if !strings.Contains(embed.Description, strings.Repeat("a", 150)+"...") {
		t.Fatalf("long experiences must be truncated to a preview")
	}
	if embed.Footer == nil || !strings.Contains(embed.Footer.Text, "08/30/2026") {
		t.Fatalf("footer must carry the date")
	}
}

func TestEmbedColorDefaults(t *testing.T) {
	cases := []struct {
		status model.OfferStatus
		want   int
	}{
		{model.OfferStatusOffered, 0x43B581},
		{model.OfferStatusPending, 0xFFAA00},
		{model.OfferStatusRejected, 0xF04747},
		{model.OfferStatus("SOMETHING"), 0x3498DB},
	}
	rounds := []model.InterviewRound{{Name: "Coding Round", Experience: "details"}}
	for _, tc := range cases {
		s := summaryWithRounds(rounds)
		s.OfferStatus = tc.status
		embed, ok := BuildInterviewEmbed(s, time.Now())
		if !ok {
			t.Fatalf("%s: expected embed to build", tc.status)
		}
		if embed.Color != tc.want {
			t.Fatalf("%s: expected color %#x, got %#x", tc.status, tc.want, embed.Color)
		}
	}
}

func TestInvalidLocationSuppressed(t *testing.T) {
	for _, loc := range []string{"", "none", "Unknown", "null", "<unknown>", "  "} {
		s := summaryWithRounds([]model.InterviewRound{{Name: "Coding Round", Experience: "details"}})
		s.Location = loc
		embed, ok := BuildInterviewEmbed(s, time.Now())
		if !ok {
			t.Fatalf("%q: expected embed to build", loc)
		}
		if strings.Contains(embed.Title, "|  |") || strings.Count(embed.Title, "|") != 3 {
			t.Fatalf("%q: location part must be dropped from title: %q", loc, embed.Title)
		}
		if embed.Fields[5].Value != "Unspecified" {
			t.Fatalf("%q: location field must read Unspecified, got %q", loc, embed.Fields[5].Value)
		}
	}
}

func TestRoundEmoji(t *testing.T) {
	cases := map[string]string{
		"DSA Screening":          "\U0001F4BB",
		"System Design Round":    "\U0001F3D7️",
		"Hiring Manager Chat":    "\U0001F4AC",
		"Final Discussion Round": "\U0001F518",
	}
	for name, want := range cases {
		if got := roundEmoji(name); got != want {
			t.Fatalf("%s: expected %q, got %q", name, want, got)
		}
	}
}
