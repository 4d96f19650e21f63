package llm

import (
	"fmt"
	"strings"
)

func buildSummaryPrompt(title string) string {
	return "You are an expert research assistant. " +
		"Write a concise 3-4 sentence summary of the research paper named below: " +
		"what problem it addresses, the approach, and why it matters.\n\n" +
		"Paper title: " + title
}

func buildRecommendationPrompt(title, abstract string) string {
	var b strings.Builder
	b.WriteString("You are an expert research assistant. Recommend 5 published papers related to the paper below.\n")
	b.WriteString("Format each recommendation on its own line as:\n")
	b.WriteString("1. [Title](URL) - one-line reason it is related\n\n")
	fmt.Fprintf(&b, "Paper title: %s\n", title)
	if abstract = strings.TrimSpace(abstract); abstract != "" {
		fmt.Fprintf(&b, "\nAbstract:\n%s\n", abstract)
	}
	return b.String()
}
