package ai

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

var (
	scorePattern   = regexp.MustCompile(`\$([0-9]+(?:\.[0-9]+)?)\$`)
	numberRegex    = regexp.MustCompile(`[0-9]+(?:\.[0-9]+)?`)
	ErrParseFailed = errors.New("parse_failed")
)

// ParseScore extracts the similarity score from a model answer. It first
// tries the strict $<number>$ format, and falls back to the longest number
// found in the text (e.g. "score: 85 out of 100").
func ParseScore(text string) (float64, error) {
	m := scorePattern.FindStringSubmatch(text)
	if len(m) >= 2 {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrParseFailed, err)
		}
		return v, nil
	}
	matches := numberRegex.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return 0, fmt.Errorf("%w: no score found", ErrParseFailed)
	}
	bestIdx := matches[0]
	for _, m := range matches[1:] {
		if (m[1] - m[0]) > (bestIdx[1] - bestIdx[0]) {
			bestIdx = m
		}
	}
	v, err := strconv.ParseFloat(text[bestIdx[0]:bestIdx[1]], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrParseFailed, err)
	}
	return v, nil
}
