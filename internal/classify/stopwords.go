// internal/classify/stopwords.go
package classify

// englishStopwords is the fixed stop-word set consulted during
// normalization. Tokens of one or two characters are dropped by the
// length rule before this set is checked, so shorter entries are omitted.
var englishStopwords = makeStopwordSet(
	"myself", "our", "ours", "ourselves", "you", "your", "yours",
	"yourself", "yourselves", "him", "his", "himself", "she", "her",
	"hers", "herself", "its", "itself", "they", "them", "their",
	"theirs", "themselves", "what", "which", "who", "whom", "this",
	"that", "these", "those", "are", "was", "were", "been", "being",
	"have", "has", "had", "having", "does", "did", "doing", "the",
	"and", "but", "because", "until", "while", "for", "with", "about",
	"against", "between", "into", "through", "during", "before",
	"after", "above", "below", "from", "down", "out", "off", "over",
	"under", "again", "further", "then", "once", "here", "there",
	"when", "where", "why", "how", "all", "any", "both", "each",
	"few", "more", "most", "other", "some", "such", "nor", "not",
	"only", "own", "same", "than", "too", "very", "can", "will",
	"just", "don", "should", "now", "ain", "aren", "couldn", "didn",
	"doesn", "hadn", "hasn", "haven", "isn", "mightn", "mustn",
	"needn", "shan", "shouldn", "wasn", "weren", "won", "wouldn",
)

func makeStopwordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
