package votations

import (
	"campaignfinance/lib/textutil"
	"campaignfinance/lib/timezone"
	"regexp"
	"strings"
	"time"
)

type Position string

const (
	PositionSupporter Position = "supporter"
	PositionOpponent  Position = "opponent"
	PositionUnknown   Position = "unknown"
)

var electionKeywords = []string{"élection", "election", "elezione", "wahl"}

var adoptionKeywords = []string{"adoption", "annahme", "adozione"}
var rejectionKeywords = []string{"rejet", "ablehnung", "rigetto"}

// "déclaration des recettes budgétées" and its translations
var revenueFormKeywords = []string{"recettes budgét", "budgetierte einnahmen", "entrate preventivate"}

var voteDateRegex = regexp.MustCompile(`(\d{2})\.(\d{2})\.(\d{4})`)
var leadingDateRegex = regexp.MustCompile(`^\d{2}\.\d{2}\.\d{4}\s*`)

// IsFutureVotation reports whether a financing root label announces a
// popular vote (not an election) taking place strictly after `now`.
func IsFutureVotation(label string, now time.Time) bool {
	if textutil.MatchLabel(label, electionKeywords) {
		return false
	}
	voteDay, ok := parseVoteDate(label)
	if !ok {
		return false
	}
	return voteDay.After(now)
}

func parseVoteDate(label string) (time.Time, bool) {
	match := voteDateRegex.FindString(label)
	if match == "" {
		return time.Time{}, false
	}
	// time.Parse rejects impossible days such as 31.02
	day, err := time.ParseInLocation("02.01.2006", match, timezone.Location)
	if err != nil {
		return time.Time{}, false
	}
	return day, true
}

// the first dd.mm.yyyy found in the label, or ""
func ExtractVoteDate(label string) string {
	return voteDateRegex.FindString(label)
}

// the label without its leading vote date
func ExtractTitle(label string) string {
	return strings.TrimSpace(leadingDateRegex.ReplaceAllString(label, ""))
}

// ClassifyStance maps a campaign label to the side it campaigns for.
// A label naming both adoption and rejection cannot be attributed and
// is reported as ambiguous with PositionUnknown.
func ClassifyStance(campaignLabel string) (position Position, ambiguous bool) {
	supporter := textutil.MatchLabel(campaignLabel, adoptionKeywords)
	opponent := textutil.MatchLabel(campaignLabel, rejectionKeywords)
	switch {
	case supporter && opponent:
		return PositionUnknown, true
	case supporter:
		return PositionSupporter, false
	case opponent:
		return PositionOpponent, false
	}
	return PositionUnknown, false
}

func IsRevenueDeclaration(formLabel string) bool {
	return textutil.MatchLabel(formLabel, revenueFormKeywords)
}
