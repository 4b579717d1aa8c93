package extract

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// DefaultTopKeywords is the number of keywords extracted when the caller
// does not override it.
const DefaultTopKeywords = 20

// DefaultMinKeywordLength is the minimum length of an extracted keyword.
const DefaultMinKeywordLength = 4

// keywordStopwords filters very common words out of keyword extraction.
// This is a deliberately small list; full stopword removal happens in the
// normalization pipeline, not here.
var keywordStopwords = map[string]struct{}{
	"the": {}, "and": {}, "or": {}, "but": {}, "in": {}, "on": {}, "at": {},
	"to": {}, "for": {}, "of": {}, "with": {}, "by": {}, "from": {}, "as": {},
	"an": {}, "are": {}, "was": {}, "were": {}, "been": {}, "be": {},
	"have": {}, "has": {}, "had": {}, "will": {}, "would": {}, "could": {},
	"should": {}, "may": {}, "might": {}, "can": {}, "must": {}, "shall": {},
	"this": {}, "that": {}, "these": {}, "those": {}, "we": {}, "you": {},
	"they": {}, "your": {}, "our": {}, "their": {},
}

var wordPattern = regexp.MustCompile(`[a-zA-Z]+`)

// Keywords returns the topN most frequent alphabetic words of length
// DefaultMinKeywordLength or more, excluding stopwords. Ties are broken by
// first appearance in the text, so the result is deterministic.
func Keywords(text string, topN int) []string {
	return KeywordsWithMinLength(text, topN, DefaultMinKeywordLength)
}

// KeywordsWithMinLength is Keywords with a configurable minimum word length.
func KeywordsWithMinLength(text string, topN, minLen int) []string {
	if text == "" || topN <= 0 {
		return nil
	}

	type wordCount struct {
		word  string
		count int
		first int
	}

	counts := make(map[string]*wordCount)
	ordered := make([]*wordCount, 0)

	for i, word := range wordPattern.FindAllString(strings.ToLower(text), -1) {
		if len(word) < minLen {
			continue
		}
		if _, stop := keywordStopwords[word]; stop {
			continue
		}
		if wc, seen := counts[word]; seen {
			wc.count++
			continue
		}
		wc := &wordCount{word: word, count: 1, first: i}
		counts[word] = wc
		ordered = append(ordered, wc)
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].count != ordered[j].count {
			return ordered[i].count > ordered[j].count
		}
		return ordered[i].first < ordered[j].first
	})

	if len(ordered) > topN {
		ordered = ordered[:topN]
	}

	keywords := make([]string, len(ordered))
	for i, wc := range ordered {
		keywords[i] = wc.word
	}
	return keywords
}

// experiencePatterns match phrasings like "5+ years of experience",
// "3 yrs exp", and "7 years in". The captured group is the year count.
var experiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\+?\s*years?\s*(?:of\s*)?(?:experience|exp)`),
	regexp.MustCompile(`(\d+)\+?\s*yrs?\s*(?:of\s*)?(?:experience|exp)`),
	regexp.MustCompile(`(\d+)\+?\s*years?\s*(?:in|with|of)`),
	regexp.MustCompile(`(\d+)\+?\s*year\s*(?:in|with|of)`),
}

// ExperienceYears returns the maximum year count matched by any experience
// phrasing pattern. Zero means no years phrase was found, which callers must
// treat as "not stated" rather than "zero experience".
func ExperienceYears(text string) int {
	lower := strings.ToLower(text)

	maxYears := 0
	for _, pattern := range experiencePatterns {
		for _, match := range pattern.FindAllStringSubmatch(lower, -1) {
			years, err := strconv.Atoi(match[1])
			if err != nil {
				continue
			}
			if years > maxYears {
				maxYears = years
			}
		}
	}

	return maxYears
}

func containsPhrase(lowerText, phrase string) bool {
	return strings.Contains(lowerText, strings.ToLower(phrase))
}
