package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyMedium Difficulty = "MEDIUM"
	DifficultyHard   Difficulty = "HARD"
)

type OfferStatus string

const (
	OfferStatusOffered  OfferStatus = "OFFERED"
	OfferStatusPending  OfferStatus = "PENDING"
	OfferStatusRejected OfferStatus = "REJECTED"
)

type InterviewStatus string

const (
	InterviewStatusPublished InterviewStatus = "PUBLISHED"
)

// NormalizeDifficulty maps free-text difficulty onto the closed set,
// defaulting to MEDIUM for anything unrecognized.
func NormalizeDifficulty(raw string) Difficulty {
	switch Difficulty(strings.ToUpper(strings.TrimSpace(raw))) {
	case DifficultyEasy:
		return DifficultyEasy
	case DifficultyHard:
		return DifficultyHard
	default:
		return DifficultyMedium
	}
}

// offerStatusSynonyms maps the phrasings the extraction service uses for
// offer outcomes onto the stored enum.
var offerStatusSynonyms = map[string]OfferStatus{
	"OFFER":    OfferStatusOffered,
	"OFFERED":  OfferStatusOffered,
	"ACCEPTED": OfferStatusOffered,
	"PENDING":  OfferStatusPending,
	"REJECTED": OfferStatusRejected,
	"DECLINED": OfferStatusRejected,
}

// NormalizeOfferStatus maps free-text offer outcomes onto the closed set,
// defaulting to PENDING for anything unrecognized (including "Unknown").
func NormalizeOfferStatus(raw string) OfferStatus {
	if s, ok := offerStatusSynonyms[strings.ToUpper(strings.TrimSpace(raw))]; ok {
		return s
	}
	return OfferStatusPending
}

// Interview carries the fields the scraper writes; the row id is minted
// at insert time and returned by the repository.
type Interview struct {
	CompanyID          uuid.UUID       `json:"company_id"`
	JobRoleID          string          `json:"job_role_id"`
	Slug               string          `json:"slug"`
	Title              string          `json:"title"`
	Location           string          `json:"location"`
	Date               time.Time       `json:"date"`
	Difficulty         Difficulty      `json:"difficulty"`
	NoOfRounds         int             `json:"no_of_rounds"`
	InterviewProcess   string          `json:"interview_process"`
	PreparationSources string          `json:"preparation_sources"`
	OverallRating      float64         `json:"overall_rating"`
	IsAnonymous        bool            `json:"is_anonymous"`
	Status             InterviewStatus `json:"status"`
	OfferStatus        OfferStatus     `json:"offer_status"`
}

type InterviewRound struct {
	Name         string     `json:"name"`
	Duration     string     `json:"duration"`
	Difficulty   Difficulty `json:"difficulty"`
	Experience   string     `json:"experience"`
	KeyTakeaways string     `json:"key_takeaways"`
	OrderIndex   int        `json:"order_index"`
}
