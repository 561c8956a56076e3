package vector

import (
	"math"
	"slices"
	"strings"
)

// Tokenize lower-cases doc and splits it on whitespace.
func Tokenize(doc string) []string {
	return strings.Fields(strings.ToLower(doc))
}

// Vocabulary is the frozen set of distinct terms observed in a corpus.
// Term IDs are positions in the sorted term list.
type Vocabulary struct {
	terms []string
	ids   map[string]int
}

// BuildVocabulary returns the deduplicated union of all document tokens.
func BuildVocabulary(docs []string) *Vocabulary {
	seen := make(map[string]struct{})
	for _, doc := range docs {
		for _, t := range Tokenize(doc) {
			seen[t] = struct{}{}
		}
	}

	terms := make([]string, 0, len(seen))
	for t := range seen {
		terms = append(terms, t)
	}
	slices.Sort(terms)

	ids := make(map[string]int, len(terms))
	for i, t := range terms {
		ids[t] = i
	}
	return &Vocabulary{terms: terms, ids: ids}
}

// Len returns the number of terms.
func (v *Vocabulary) Len() int {
	return len(v.terms)
}

// ID returns the term ID and whether the term is part of the vocabulary.
func (v *Vocabulary) ID(term string) (int, bool) {
	id, ok := v.ids[term]
	return id, ok
}

// Term returns the term with the given ID.
func (v *Vocabulary) Term(id int) string {
	return v.terms[id]
}

// Terms returns a copy of the sorted term list.
func (v *Vocabulary) Terms() []string {
	return slices.Clone(v.terms)
}

// Contains reports whether term is part of the vocabulary.
func (v *Vocabulary) Contains(term string) bool {
	_, ok := v.ids[term]
	return ok
}

// Entry is a single non-zero component of a sparse vector.
type Entry struct {
	ID    int
	Count int
}

// Sparse is a term-count vector holding only observed terms, ordered by ID.
type Sparse []Entry

// Count returns the count for term ID id (0 when absent).
func (s Sparse) Count(id int) int {
	i, ok := slices.BinarySearchFunc(s, id, func(e Entry, target int) int {
		return e.ID - target
	})
	if !ok {
		return 0
	}
	return s[i].Count
}

// Norm returns the L2 norm of s.
func (s Sparse) Norm() float64 {
	var sum float64
	for _, e := range s {
		c := float64(e.Count)
		sum += c * c
	}
	return math.Sqrt(sum)
}

// Dense is a real-valued vector spanning the whole vocabulary.
type Dense []float64

// NewDense returns a zero vector of the given dimension.
func NewDense(dim int) Dense {
	return make(Dense, dim)
}

// AddSparse adds the counts of s into d.
func (d Dense) AddSparse(s Sparse) {
	for _, e := range s {
		d[e.ID] += float64(e.Count)
	}
}

// Norm returns the L2 norm of d.
func (d Dense) Norm() float64 {
	var sum float64
	for _, x := range d {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// Corpus is the immutable vectorized form of a set of normalized documents.
// Documents, Vectors are parallel and hold one entry per distinct document.
type Corpus struct {
	Vocabulary *Vocabulary
	Documents  []string
	Vectors    []Sparse

	index map[string]int
}

// Len returns the number of distinct documents.
func (c *Corpus) Len() int {
	return len(c.Documents)
}

// Index returns the position of doc in the corpus.
func (c *Corpus) Index(doc string) (int, bool) {
	if c.index == nil {
		i := slices.Index(c.Documents, doc)
		return i, i >= 0
	}
	i, ok := c.index[doc]
	return i, ok
}

// Vectorize builds the vocabulary and one sparse vector per distinct
// document. Duplicates collapse to their first occurrence.
func Vectorize(docs []string) *Corpus {
	distinct := make([]string, 0, len(docs))
	index := make(map[string]int, len(docs))
	for _, doc := range docs {
		if _, ok := index[doc]; ok {
			continue
		}
		index[doc] = len(distinct)
		distinct = append(distinct, doc)
	}

	vocab := BuildVocabulary(distinct)
	vectors := make([]Sparse, len(distinct))
	for i, doc := range distinct {
		vectors[i] = vectorizeOne(vocab, doc)
	}

	return &Corpus{
		Vocabulary: vocab,
		Documents:  distinct,
		Vectors:    vectors,
		index:      index,
	}
}

func vectorizeOne(vocab *Vocabulary, doc string) Sparse {
	counts := make(map[int]int)
	for _, t := range Tokenize(doc) {
		id, ok := vocab.ID(t)
		if !ok {
			continue
		}
		counts[id]++
	}

	s := make(Sparse, 0, len(counts))
	for id, c := range counts {
		s = append(s, Entry{ID: id, Count: c})
	}
	slices.SortFunc(s, func(a, b Entry) int { return a.ID - b.ID })
	return s
}
