package textnorm

import "strings"

// englishStopwords is the shared English stopword list used by the rich
// normalization pipeline and by the TF-IDF vectorizer.
var englishStopwords = map[string]struct{}{}

func init() {
	words := []string{
		"a", "about", "above", "after", "again", "against", "all", "am", "an",
		"and", "any", "are", "aren't", "as", "at", "be", "because", "been",
		"before", "being", "below", "between", "both", "but", "by", "can",
		"cannot", "could", "couldn't", "did", "didn't", "do", "does",
		"doesn't", "doing", "don't", "down", "during", "each", "few", "for",
		"from", "further", "had", "hadn't", "has", "hasn't", "have",
		"haven't", "having", "he", "her", "here", "hers", "herself", "him",
		"himself", "his", "how", "i", "if", "in", "into", "is", "isn't",
		"it", "its", "itself", "may", "me", "might", "more", "most",
		"mustn't", "must", "my", "myself", "no", "nor", "not", "of", "off",
		"on", "once", "only", "or", "other", "ought", "our", "ours",
		"ourselves", "out", "over", "own", "same", "shall", "shan't", "she",
		"should", "shouldn't", "so", "some", "such", "than", "that", "the",
		"their", "theirs", "them", "themselves", "then", "there", "these",
		"they", "this", "those", "through", "to", "too", "under", "until",
		"up", "very", "was", "wasn't", "we", "were", "weren't", "what",
		"when", "where", "which", "while", "who", "whom", "why", "will",
		"with", "won't", "would", "wouldn't", "you", "your", "yours",
		"yourself", "yourselves",
	}
	for _, w := range words {
		englishStopwords[w] = struct{}{}
	}
}

// IsStopword reports whether the given token is an English stopword.
// The check is case-insensitive.
func IsStopword(token string) bool {
	_, ok := englishStopwords[strings.ToLower(token)]
	return ok
}
