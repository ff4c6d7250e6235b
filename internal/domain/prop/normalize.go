package prop

import "strings"

var nameStripper = strings.NewReplacer(".", "", "-", "", "'", "")

// NormalizeName folds a raw player name into its matching form: lower-cased,
// trimmed, with ".", "-" and "'" stripped and whitespace runs collapsed to a
// single space. Empty input yields the empty string.
func NormalizeName(raw string) string {
	cleaned := nameStripper.Replace(strings.ToLower(strings.TrimSpace(raw)))
	return strings.Join(strings.Fields(cleaned), " ")
}

// statSynonyms rewrites known upstream spellings to one canonical form.
// This covers surface variance only; mapping one source's vocabulary onto
// another's is the admin mapping tables' job and is never applied here.
var statSynonyms = map[string]string{
	"3-pointers made":             "three pointers made",
	"3 pointers made":             "three pointers made",
	"3pt made":                    "three pointers made",
	"3pm":                         "three pointers made",
	"threes made":                 "three pointers made",
	"threes":                      "three pointers made",
	"three-pointers made":         "three pointers made",
	"pts":                         "points",
	"rebs":                        "rebounds",
	"asts":                        "assists",
	"pts+rebs+asts":               "points rebounds assists",
	"pts + rebs + asts":           "points rebounds assists",
	"points+rebounds+assists":     "points rebounds assists",
	"points + rebounds + assists": "points rebounds assists",
	"pra":                         "points rebounds assists",
	"pts+rebs":                    "points rebounds",
	"pts+asts":                    "points assists",
	"rebs+asts":                   "rebounds assists",
	"pass yds":                    "passing yards",
	"passing yds":                 "passing yards",
	"rush yds":                    "rushing yards",
	"rushing yds":                 "rushing yards",
	"rec yds":                     "receiving yards",
	"receiving yds":               "receiving yards",
}

// NormalizeStat folds a raw stat-type string: lower-cased, trimmed, with
// known synonyms rewritten to one spelling. Unrecognized stats pass through
// case-folded.
func NormalizeStat(raw string) string {
	folded := strings.ToLower(strings.TrimSpace(raw))
	if canonical, ok := statSynonyms[folded]; ok {
		return canonical
	}
	return folded
}
