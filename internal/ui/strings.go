package ui

import (
	"net/url"
	"strings"
)

// truncate shortens a string to the given limit, adding ellipsis if needed.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 1 {
		return string(runes[:limit])
	}
	return string(runes[:limit-1]) + "…"
}

// padToWidth right-pads value with spaces to the given rune width.
func padToWidth(value string, width int) string {
	missing := width - len([]rune(value))
	if missing <= 0 {
		return value
	}
	return value + strings.Repeat(" ", missing)
}

// imageHost extracts the host of an image URI for the card's image hint.
// The terminal cannot show the picture itself, so the card displays where
// it lives instead.
func imageHost(imageURL string) string {
	u, err := url.Parse(strings.TrimSpace(imageURL))
	if err != nil || u.Host == "" {
		return ""
	}
	return u.Host
}

// wrapText breaks text into lines no wider than limit runes, on word
// boundaries where possible.
func wrapText(text string, limit int) []string {
	if limit <= 0 {
		return []string{text}
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		if len([]rune(current))+1+len([]rune(word)) <= limit {
			current += " " + word
			continue
		}
		lines = append(lines, current)
		current = word
	}
	lines = append(lines, current)
	return lines
}
