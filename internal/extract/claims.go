package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ppiankov/veridoc/internal/model"
)

// numberRe matches a numeric literal: optional currency symbol, a
// comma-grouped or plain integer, an optional decimal fraction and an
// optional unit token. Word boundaries cannot be expressed around the
// optional groups in RE2, so candidate matches are post-filtered (see
// numericLiterals).
var numberRe = regexp.MustCompile(`(?i)([₹$€£]\s*)?(\d{1,3}(?:,\d{3})+|\d+)(\.\d+)?(\s*%|\s*(?:crore|cr|lakh|mn|million|bn|billion))?`)

var (
	monthRe  = regexp.MustCompile(`(?i)\b(january|february|march|april|may|june|july|august|september|october|november|december)\b`)
	yearRe   = regexp.MustCompile(`\b(19\d{2}|20\d{2})\b`)
	fiscalRe = regexp.MustCompile(`(?i)\bFY\s?\d{2}\b|\bQ\d\s?FY\s?\d{2}\b`)
)

// SplitSentences splits text at boundaries following '.', '!' or '?'
// followed by whitespace. Results are trimmed; empty chunks are dropped.
func SplitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	flush := func() {
		if s := strings.TrimSpace(current.String()); s != "" {
			sentences = append(sentences, s)
		}
		current.Reset()
	}

	for i := 0; i < len(text); i++ {
		c := text[i]
		current.WriteByte(c)
		if (c == '.' || c == '!' || c == '?') && i+1 < len(text) && isSpace(text[i+1]) {
			flush()
		}
	}
	flush()

	return sentences
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// NumericClaims extracts one claim per sentence containing at least one
// numeric literal. Matched literals keep their original formatting; the claim
// carries the full link list of its segment. IDs are num-<n>, 1-based, in
// extraction order.
func NumericClaims(segments []model.Segment) []model.Claim {
	var claims []model.Claim
	idx := 1
	for _, segment := range segments {
		for _, sentence := range SplitSentences(segment.Text) {
			numbers := numericLiterals(sentence)
			if len(numbers) == 0 {
				continue
			}
			claims = append(claims, model.Claim{
				ID:      fmt.Sprintf("num-%d", idx),
				Text:    sentence,
				Kind:    model.ClaimKindNumber,
				Numbers: numbers,
				Links:   segment.Links,
			})
			idx++
		}
	}
	return claims
}

// numericLiterals finds numeric literals in a sentence. A candidate is kept
// only when it sits on word boundaries: a currency symbol glued to a word
// (US$5) retries at the digits and yields the bare number, and a trailing
// unit or fraction running into a word character shrinks the match to the
// longest prefix that ends on a boundary.
func numericLiterals(sentence string) []string {
	var numbers []string
	for _, m := range numberRe.FindAllStringSubmatchIndex(sentence, -1) {
		start := m[0]
		if start > 0 && isWordByte(sentence[start-1]) {
			if m[2] < 0 {
				continue
			}
			start = m[4]
			if start > 0 && isWordByte(sentence[start-1]) {
				continue
			}
		}

		// Candidate end offsets, longest first: full match, through the
		// decimal fraction, integer part only.
		intEnd := m[5]
		ends := []int{m[1]}
		if m[7] >= 0 {
			ends = append(ends, m[7])
		}
		ends = append(ends, intEnd)

		for _, end := range ends {
			if end <= start {
				continue
			}
			if end < len(sentence) && isWordByte(sentence[end]) {
				continue
			}
			numbers = append(numbers, strings.TrimSpace(sentence[start:end]))
			break
		}
	}
	return numbers
}

func isWordByte(c byte) bool {
	return c == '_' ||
		(c >= '0' && c <= '9') ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z')
}

// DateClaims extracts one claim per sentence containing a month name, a
// 4-digit year in [1900,2099] or a fiscal-year token. The payload collects
// months, then years, then fiscal tokens, in that fixed order. IDs are
// date-<n>, 1-based, in extraction order.
func DateClaims(segments []model.Segment) []model.Claim {
	var claims []model.Claim
	idx := 1
	for _, segment := range segments {
		for _, sentence := range SplitSentences(segment.Text) {
			var dates []string
			dates = append(dates, monthRe.FindAllString(sentence, -1)...)
			dates = append(dates, yearRe.FindAllString(sentence, -1)...)
			dates = append(dates, fiscalRe.FindAllString(sentence, -1)...)
			if len(dates) == 0 {
				continue
			}
			claims = append(claims, model.Claim{
				ID:    fmt.Sprintf("date-%d", idx),
				Text:  sentence,
				Kind:  model.ClaimKindDate,
				Dates: dates,
				Links: segment.Links,
			})
			idx++
		}
	}
	return claims
}
