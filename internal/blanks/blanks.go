// Package blanks hides tokens of a verse for fill-in-the-blank questions
// and builds the matching missing-word option set.
package blanks

import (
	"sort"
	"strings"
	"time"

	"github.com/moh-dev-stack/quran-memorise-sub000/internal/options"
	"github.com/moh-dev-stack/quran-memorise-sub000/internal/randgen"
	"github.com/moh-dev-stack/quran-memorise-sub000/internal/textnorm"
)

// Placeholder replaces each hidden token in the blanked text.
const Placeholder = "_____"

// Tokenizer splits text into the unit tokens of its script.
type Tokenizer func(string) []string

// Blank is the result of hiding tokens in a text. MissingWords and
// MissingIndices are in original left-to-right order.
type Blank struct {
	BlankedText    string
	MissingWords   []string
	MissingIndices []int
}

// BlankCount returns how many tokens are hidden for a text of n tokens:
// one third, clamped to [1, 2].
func BlankCount(n int) int {
	k := n / 3
	if k < 1 {
		k = 1
	}
	if k > 2 {
		k = 2
	}
	return k
}

// Build hides BlankCount tokens of text, drawn uniformly without
// replacement. A session-scoped generator makes the draw reproducible
// across re-renders; pass nil to reroll with a wall-clock seed instead.
// A single-token text is fully blanked. Returns a zero Blank for blank
// input.
func Build(text string, tokenize Tokenizer, g *randgen.Generator) Blank {
	if tokenize == nil {
		tokenize = textnorm.Tokenize
	}
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return Blank{}
	}
	if g == nil {
		g = randgen.New(time.Now().UnixNano())
	}

	k := BlankCount(len(tokens))

	// Shuffle the index space and keep the first k, restoring text order.
	indices := make([]int, len(tokens))
	for i := range indices {
		indices[i] = i
	}
	chosen := randgen.Shuffle(g, indices)[:k]
	sort.Ints(chosen)

	missing := make([]string, k)
	blanked := make([]string, len(tokens))
	copy(blanked, tokens)
	for i, idx := range chosen {
		missing[i] = tokens[idx]
		blanked[idx] = Placeholder
	}

	return Blank{
		BlankedText:    strings.Join(blanked, " "),
		MissingWords:   missing,
		MissingIndices: chosen,
	}
}

// MissingWordOptions builds the option set for a blank: the missing tokens
// joined by a single space form the one correct option, and distractors are
// drawn from the token union of the corpus, excluding the correct tokens.
// Size and uniqueness follow the same rules as options.Build.
func MissingWordOptions(g *randgen.Generator, correctTokens, corpusTokens []string, size int) []options.Option {
	correct := strings.Join(correctTokens, " ")

	exclude := make(map[string]bool, len(correctTokens))
	for _, tok := range correctTokens {
		exclude[textnorm.Arabic(tok)] = true
	}

	var pool []string
	seen := make(map[string]bool)
	for _, tok := range corpusTokens {
		key := textnorm.Arabic(tok)
		if key == "" || exclude[key] || seen[key] {
			continue
		}
		seen[key] = true
		pool = append(pool, tok)
	}

	return options.Build(g, correct, pool, size, func(s string) options.Payload {
		return options.ArabicPayload(s)
	})
}

// CorpusTokens collects every token across the given texts, preserving
// first-seen order. Used as the distractor pool for missing-word options.
func CorpusTokens(texts []string, tokenize Tokenizer) []string {
	if tokenize == nil {
		tokenize = textnorm.Tokenize
	}
	var all []string
	for _, t := range texts {
		all = append(all, tokenize(t)...)
	}
	return all
}
