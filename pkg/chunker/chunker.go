package chunker

import "strings"

// DefaultMaxWords is the word budget per chunk used for document indexing.
const DefaultMaxWords = 500

// Split breaks text into newline-delimited chunks, greedily packing lines
// until the word budget is reached. Lines longer than maxWords become their
// own chunk (lines are never split mid-way). Empty or whitespace-only input
// returns a single empty chunk so callers can still register the file.
func Split(text string, maxWords int) []string {
	if maxWords <= 0 {
		maxWords = DefaultMaxWords
	}
	if strings.TrimSpace(text) == "" {
		return []string{""}
	}

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}

	var chunks []string
	var current []string
	currentWords := 0

	for _, line := range lines {
		wordCount := len(strings.Fields(line))
		if currentWords+wordCount <= maxWords {
			current = append(current, line)
			currentWords += wordCount
			continue
		}
		if len(current) > 0 {
			chunks = append(chunks, strings.Join(current, "\n"))
		}
		current = []string{line}
		currentWords = wordCount
	}
	if len(current) > 0 {
		chunks = append(chunks, strings.Join(current, "\n"))
	}

	return chunks
}
