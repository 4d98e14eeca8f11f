package suggest

import (
	"sort"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Vocabulary counts distinct indexed words.
// Empty words are counted apart since they have no key in the tree.
type Vocabulary struct {
	words      *patricia.Trie
	distinct   int
	total      int
	emptyCount int
}

// NewVocabulary returns an empty vocabulary.
func NewVocabulary() *Vocabulary {
	return &Vocabulary{
		words: patricia.NewTrie(),
	}
}

// Add records one occurrence of word.
func (v *Vocabulary) Add(word string) {
	v.total++
	if word == "" {
		if v.emptyCount == 0 {
			v.distinct++
		}
		v.emptyCount++
		return
	}
	key := patricia.Prefix(word)
	if item := v.words.Get(key); item != nil {
		v.words.Set(key, item.(int)+1)
		return
	}
	v.words.Insert(key, 1)
	v.distinct++
}

// Count returns how many times word was added.
func (v *Vocabulary) Count(word string) int {
	if word == "" {
		return v.emptyCount
	}
	item := v.words.Get(patricia.Prefix(word))
	if item == nil {
		return 0
	}
	return item.(int)
}

// Words returns the distinct words under prefix in lexical order.
func (v *Vocabulary) Words(prefix string) []string {
	words := []string{}
	if prefix == "" && v.emptyCount > 0 {
		words = append(words, "")
	}

	visit := func(p patricia.Prefix, item patricia.Item) error {
		words = append(words, string(p))
		return nil
	}

	var err error
	if prefix == "" {
		err = v.words.Visit(visit)
	} else {
		err = v.words.VisitSubtree(patricia.Prefix(prefix), visit)
	}
	if err != nil {
		log.Errorf("Error visiting vocabulary subtree: %v", err)
		return []string{}
	}

	sort.Strings(words)
	return words
}

// Distinct returns the number of different words seen.
func (v *Vocabulary) Distinct() int {
	return v.distinct
}

// Total returns the number of words added, repeats included.
func (v *Vocabulary) Total() int {
	return v.total
}
