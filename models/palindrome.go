// SPDX-License-Identifier: Apache-2.0

package models

import (
	"strings"
	"unicode/utf8"
)

// Palindrome is an in-memory palindrome-check record: a single word together
// with the server-derived verdict on whether it reads the same backwards.
type Palindrome struct {
	// ID is the server-assigned identifier of the record.
	ID int64 `json:"id"`

	// Text is the checked word as submitted by the client.
	Text string `json:"text"`

	// IsPalindrome is the derived verdict. The comparison is
	// case-insensitive; client-supplied verdicts are ignored.
	IsPalindrome bool `json:"isPalindrome"`
}

// PalindromeRequest is the request body of palindrome create and update
// calls. Only the text is accepted; id and verdict are server-controlled.
type PalindromeRequest struct {
	Text string `json:"text"`
}

// DeriveIsPalindrome recomputes IsPalindrome from Text, overwriting whatever
// the client sent. The check trims surrounding whitespace, lowercases the
// text, and compares runes from both ends so that multi-byte letters
// (accents, non-Latin scripts) are treated as single characters.
func (p *Palindrome) DeriveIsPalindrome() {
	text := strings.ToLower(strings.TrimSpace(p.Text))
	runes := []rune(text)

	p.IsPalindrome = utf8.RuneCountInString(text) > 0
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		if runes[i] != runes[j] {
			p.IsPalindrome = false
			return
		}
	}
}
