package matcher

import (
	"errors"
	"math"
	"sort"
	"strings"
	"unicode"
)

// ErrEmptyVocabulary is returned when no document in the corpus yields a
// usable term, so no vector space can be built.
var ErrEmptyVocabulary = errors.New("empty vocabulary: documents contain no usable terms")

// tfidfVectorizer builds a term-frequency–inverse-document-frequency vector
// space over a fixed corpus. Terms are lowercased word tokens of at least two
// characters with English stop words removed; IDF is smoothed
// (ln((1+n)/(1+df)) + 1) and vectors are L2-normalized, so cosine similarity
// reduces to a dot product.
type tfidfVectorizer struct {
	vocab map[string]int
	idf   []float64
}

// fitTFIDF learns the vocabulary and IDF weights from docs and returns the
// vectorizer together with the normalized vector of every document, in order.
func fitTFIDF(docs []string) (*tfidfVectorizer, [][]float64, error) {
	tokenized := make([][]string, len(docs))
	vocab := make(map[string]int)
	df := make(map[string]int)

	for i, doc := range docs {
		tokens := tokenize(doc)
		tokenized[i] = tokens

		seen := make(map[string]bool, len(tokens))
		for _, tok := range tokens {
			if _, ok := vocab[tok]; !ok {
				vocab[tok] = len(vocab)
			}
			if !seen[tok] {
				seen[tok] = true
				df[tok]++
			}
		}
	}

	if len(vocab) == 0 {
		return nil, nil, ErrEmptyVocabulary
	}

	// Stable term indices keep vectors deterministic across runs.
	terms := make([]string, 0, len(vocab))
	for term := range vocab {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	for i, term := range terms {
		vocab[term] = i
	}

	n := float64(len(docs))
	idf := make([]float64, len(terms))
	for i, term := range terms {
		idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	v := &tfidfVectorizer{vocab: vocab, idf: idf}

	vectors := make([][]float64, len(docs))
	for i, tokens := range tokenized {
		vectors[i] = v.vectorize(tokens)
	}
	return v, vectors, nil
}

// vectorize maps a token sequence onto the fitted space and L2-normalizes it.
func (v *tfidfVectorizer) vectorize(tokens []string) []float64 {
	vec := make([]float64, len(v.idf))
	for _, tok := range tokens {
		if idx, ok := v.vocab[tok]; ok {
			vec[idx] += v.idf[idx]
		}
	}

	var norm float64
	for _, w := range vec {
		norm += w * w
	}
	if norm == 0 {
		return vec
	}
	norm = math.Sqrt(norm)
	for i := range vec {
		vec[i] /= norm
	}
	return vec
}

// cosineSimilarity computes the dot product of two L2-normalized vectors,
// clamped into [0, 1] against floating-point drift.
func cosineSimilarity(a, b []float64) float64 {
	var dot float64
	for i := range a {
		dot += a[i] * b[i]
	}
	if dot > 1 {
		return 1
	}
	if dot < 0 {
		return 0
	}
	return dot
}

// tokenize lowercases text and extracts word tokens of length >= 2,
// dropping English stop words.
func tokenize(text string) []string {
	var tokens []string
	var b strings.Builder

	flush := func() {
		if b.Len() >= 2 {
			tok := b.String()
			if !stopWords[tok] {
				tokens = append(tokens, tok)
			}
		}
		b.Reset()
	}

	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return tokens
}

// stopWords is a compact English stop-word list. Function words carry no
// signal for item descriptions and would dilute the overlap between
// otherwise near-identical texts.
var stopWords = func() map[string]bool {
	words := []string{
		"about", "above", "after", "again", "against", "all", "am", "an",
		"and", "any", "are", "as", "at", "be", "because", "been", "before",
		"being", "below", "between", "both", "but", "by", "can", "could",
		"did", "do", "does", "doing", "down", "during", "each", "few", "for",
		"from", "further", "had", "has", "have", "having", "he", "her",
		"here", "hers", "him", "his", "how", "if", "in", "into", "is", "it",
		"its", "itself", "just", "me", "more", "most", "my", "myself", "no",
		"nor", "not", "now", "of", "off", "on", "once", "only", "or",
		"other", "our", "ours", "out", "over", "own", "same", "she",
		"should", "so", "some", "such", "than", "that", "the", "their",
		"theirs", "them", "then", "there", "these", "they", "this", "those",
		"through", "to", "too", "under", "until", "up", "very", "was", "we",
		"were", "what", "when", "where", "which", "while", "who", "whom",
		"why", "will", "with", "would", "you", "your", "yours",
	}
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}()
