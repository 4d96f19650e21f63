package aicache

import (
	"fmt"
	"regexp"
	"strings"
)

const defaultReason = "Related paper"

var (
	ordinalRe      = regexp.MustCompile(`^\d+\.\s+`)
	markdownLinkRe = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
)

// FormatRecommendations normalizes free-text LLM recommendation output into
// one bullet per usable line:
//
//	**[title](url)** - reason
//	**title** - reason
//
// Lines carrying neither a markdown link nor a " - " separator are dropped.
// If nothing survives, the raw response is returned unchanged: the model did
// answer, so the user still sees something.
func FormatRecommendations(raw string) string {
	var bullets []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		line = ordinalRe.ReplaceAllString(line, "")
		if bullet, ok := parseLine(line); ok {
			bullets = append(bullets, bullet)
		}
	}
	if len(bullets) == 0 {
		return raw
	}
	return strings.Join(bullets, "\n")
}

func parseLine(line string) (string, bool) {
	if match := markdownLinkRe.FindStringSubmatchIndex(line); match != nil {
		title := line[match[2]:match[3]]
		url := line[match[4]:match[5]]
		remainder := line[:match[0]] + line[match[1]:]
		reason := defaultReason
		if _, after, found := strings.Cut(remainder, " - "); found {
			if after = strings.TrimSpace(after); after != "" {
				reason = after
			}
		}
		return fmt.Sprintf("**[%s](%s)** - %s", title, url, reason), true
	}

	title, reason, found := strings.Cut(line, " - ")
	if !found {
		return "", false
	}
	title = strings.TrimSpace(title)
	reason = strings.TrimSpace(reason)
	if title == "" {
		return "", false
	}
	if reason == "" {
		reason = defaultReason
	}
	return fmt.Sprintf("**%s** - %s", title, reason), true
}
