package demo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCorpus(t *testing.T) {
	docs := Corpus()
	assert.Len(t, docs, 11)

	docs[0] = "changed"
	assert.Equal(t, "java programming language", Corpus()[0])
}
