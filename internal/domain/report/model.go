package report

import (
	"errors"
	"math"
	"slices"
	"strings"
	"time"
)

const (
	MinRating     = 1
	MaxRating     = 10
	DefaultRating = 7

	DefaultMinutesObserved = 90
	maxMinutesObserved     = 130
	maxTags                = 12
	maxTagLength           = 40
)

var (
	ErrRatingOutOfRange  = errors.New("rating must be between 1 and 10")
	ErrMinutesOutOfRange = errors.New("minutes observed out of range")
)

type Recommendation string

const (
	RecommendationNone    Recommendation = ""
	RecommendationSign    Recommendation = "sign"
	RecommendationFollow  Recommendation = "follow"
	RecommendationDiscard Recommendation = "discard"
)

// ParseRecommendation accepts the English values and the Spanish labels the
// web client sends (comprar, seguir, descartar).
func ParseRecommendation(v string) (Recommendation, bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "":
		return RecommendationNone, true
	case "sign", "comprar":
		return RecommendationSign, true
	case "follow", "seguir":
		return RecommendationFollow, true
	case "discard", "descartar":
		return RecommendationDiscard, true
	default:
		return "", false
	}
}

type ViewingType string

const (
	ViewingUnknown ViewingType = ""
	ViewingLive    ViewingType = "live"
	ViewingVideo   ViewingType = "video"
)

func ParseViewingType(v string) (ViewingType, bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "":
		return ViewingUnknown, true
	case "live", "en vivo", "estadio":
		return ViewingLive, true
	case "video":
		return ViewingVideo, true
	default:
		return "", false
	}
}

type Technical struct {
	Technique   int `json:"technique"`
	Passing     int `json:"passing"`
	FirstTouch  int `json:"firstTouch"`
	BallControl int `json:"ballControl"`
	Vision      int `json:"vision"`
}

type Physical struct {
	Speed    int `json:"speed"`
	Stamina  int `json:"stamina"`
	Strength int `json:"strength"`
	Jumping  int `json:"jumping"`
	Agility  int `json:"agility"`
}

type Mental struct {
	TacticalIntelligence int `json:"tacticalIntelligence"`
	Positioning          int `json:"positioning"`
	Concentration        int `json:"concentration"`
	Leadership           int `json:"leadership"`
	Teamwork             int `json:"teamwork"`
}

// Ratings are 1..10 grades. A zero grade means "not rated" and is filled
// with DefaultRating by Normalize.
type Ratings struct {
	Overall   int       `json:"overall"`
	Technical Technical `json:"technical"`
	Physical  Physical  `json:"physical"`
	Mental    Mental    `json:"mental"`
}

func (r *Ratings) grades() []*int {
	return []*int{
		&r.Overall,
		&r.Technical.Technique, &r.Technical.Passing, &r.Technical.FirstTouch, &r.Technical.BallControl, &r.Technical.Vision,
		&r.Physical.Speed, &r.Physical.Stamina, &r.Physical.Strength, &r.Physical.Jumping, &r.Physical.Agility,
		&r.Mental.TacticalIntelligence, &r.Mental.Positioning, &r.Mental.Concentration, &r.Mental.Leadership, &r.Mental.Teamwork,
	}
}

// Normalize fills unrated grades and rejects anything outside 1..10.
func (r Ratings) Normalize() (Ratings, error) {
	for _, grade := range r.grades() {
		if *grade == 0 {
			*grade = DefaultRating
		}
		if *grade < MinRating || *grade > MaxRating {
			return Ratings{}, ErrRatingOutOfRange
		}
	}
	return r, nil
}

func (t Technical) Average() float64 {
	return mean(t.Technique, t.Passing, t.FirstTouch, t.BallControl, t.Vision)
}

func (p Physical) Average() float64 {
	return mean(p.Speed, p.Stamina, p.Strength, p.Jumping, p.Agility)
}

func (m Mental) Average() float64 {
	return mean(m.TacticalIntelligence, m.Positioning, m.Concentration, m.Leadership, m.Teamwork)
}

// Report is one scout's structured assessment of a shortlisted player.
type Report struct {
	ID             string
	ClubID         string
	MarketID       string
	MarketPlayerID string
	ProviderID     string
	PlayerName     string
	PositionPlayed string
	MatchContext   string
	Ratings        Ratings

	Notes           string
	Strengths       string
	Weaknesses      string
	Recommendation  Recommendation
	MarketCondition string
	Agent           string
	Tags            []string
	EstimatedPrice  *float64

	ObservedOn      *time.Time
	Viewing         ViewingType
	Competition     string
	Opponent        string
	Result          string
	MinutesObserved int
	VideoURL        string

	CreatedBy string
	UpdatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NormalizeMinutes defaults an unset value to a full match.
func NormalizeMinutes(minutes int) (int, error) {
	switch {
	case minutes == 0:
		return DefaultMinutesObserved, nil
	case minutes < 0 || minutes > maxMinutesObserved:
		return 0, ErrMinutesOutOfRange
	default:
		return minutes, nil
	}
}

// NormalizeTags trims, drops empties and case-insensitive duplicates, and
// keeps the first maxTags entries in input order.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" || len(tag) > maxTagLength {
			continue
		}
		key := strings.ToLower(tag)
		if slices.Contains(seen, key) {
			continue
		}
		seen = append(seen, key)
		out = append(out, tag)
		if len(out) == maxTags {
			break
		}
	}
	return out
}

type Averages struct {
	Overall   float64
	Technical float64
	Physical  float64
	Mental    float64
}

// Summary aggregates the reports of one player. Averages is only set once
// two or more reports exist; Latest is the most recently created report.
type Summary struct {
	Reports  []Report
	Total    int
	Averages *Averages
	Latest   *Report
}

func Summarize(reports []Report) Summary {
	sorted := slices.Clone(reports)
	slices.SortStableFunc(sorted, func(a, b Report) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})

	out := Summary{Reports: sorted, Total: len(sorted)}
	if len(sorted) == 0 {
		return out
	}
	latest := sorted[len(sorted)-1]
	out.Latest = &latest
	if len(sorted) < 2 {
		return out
	}

	var avg Averages
	for _, item := range sorted {
		avg.Overall += float64(item.Ratings.Overall)
		avg.Technical += item.Ratings.Technical.Average()
		avg.Physical += item.Ratings.Physical.Average()
		avg.Mental += item.Ratings.Mental.Average()
	}
	n := float64(len(sorted))
	out.Averages = &Averages{
		Overall:   round1(avg.Overall / n),
		Technical: round1(avg.Technical / n),
		Physical:  round1(avg.Physical / n),
		Mental:    round1(avg.Mental / n),
	}
	return out
}

func mean(values ...int) float64 {
	total := 0
	for _, v := range values {
		total += v
	}
	return float64(total) / float64(len(values))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
