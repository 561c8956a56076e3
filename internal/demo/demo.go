// Package demo holds the built-in job-title corpus clustered by the CLI when
// no input is given.
package demo

// Corpus returns the eleven-summary demo corpus. Each call returns a fresh
// slice.
func Corpus() []string {
	return []string{
		"java programming language",
		"python programming",
		"nlp python",
		"programming scala",
		"high price",
		"low price of sales",
		"sales manager",
		"retail price",
		"java sales",
		"python high price",
		"scala manager",
	}
}
