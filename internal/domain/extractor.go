package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Extractor pulls structured data out of free-text process output with two
// independent user-supplied regular expressions, each required to contain
// exactly one capture group.
type Extractor struct {
	score   *regexp.Regexp
	comment *regexp.Regexp
}

// NewExtractor compiles and validates the score and comment patterns.
func NewExtractor(scoreExpr, commentExpr string) (*Extractor, error) {
	score, err := compileSingleCapture("score", scoreExpr)
	if err != nil {
		return nil, err
	}

	comment, err := compileSingleCapture("comment", commentExpr)
	if err != nil {
		return nil, err
	}

	return &Extractor{score: score, comment: comment}, nil
}

func compileSingleCapture(name, expr string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("compile %s regex %q: %w", name, expr, err)
	}

	if re.NumSubexp() != 1 {
		return nil, fmt.Errorf("%s regex %q must contain exactly one capture group, has %d", name, expr, re.NumSubexp())
	}

	return re, nil
}

// Score applies the score regex to each line of the scoring text and parses
// the first match's capture group as an unsigned integer. No match yields
// (nil, nil): an absent score is not a failure. A match whose capture does
// not parse yields a *ScoreParseError and an absent score.
func (e *Extractor) Score(text string) (*uint64, error) {
	for _, line := range strings.Split(text, "\n") {
		match := e.score.FindStringSubmatch(line)
		if match == nil {
			continue
		}

		n, err := strconv.ParseUint(match[1], 10, 64)
		if err != nil {
			return nil, &ScoreParseError{Capture: match[1], Err: err}
		}

		return &n, nil
	}

	return nil, nil
}

// Comments applies the comment regex to every line of the captured standard
// error. Each matching line contributes its capture group, in line order;
// non-matching lines are silently skipped.
func (e *Extractor) Comments(stderr string) []string {
	var comments []string

	for _, line := range strings.Split(stderr, "\n") {
		match := e.comment.FindStringSubmatch(line)
		if match == nil {
			continue
		}

		comments = append(comments, match[1])
	}

	return comments
}
