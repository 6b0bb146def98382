// Copyright 2020 Grail Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package tfbs reads transcription-factor-binding-site tables. Each line of
// such a table names a cell type and a tissue, followed by a variable number
// of factor tokens:
//
//	K562<TAB>blood<TAB>GATA1+<TAB>TAL1-<TAB>CTCF
//
// A token optionally ends with '+' or '-' to indicate the direction of the
// binding site. Tokens without a sign are reported as SignUnknown.
package tfbs

import (
	"strings"
	"unicode"
)

// Sign is the directionality annotation attached to a factor token.
type Sign uint8

const (
	// SignUnknown is used for tokens that do not end with '+' or '-'.
	SignUnknown Sign = iota
	// SignPlus is used for tokens ending with '+'.
	SignPlus
	// SignMinus is used for tokens ending with '-'.
	SignMinus
)

// String returns "+", "-", or "0".
func (s Sign) String() string {
	switch s {
	case SignPlus:
		return "+"
	case SignMinus:
		return "-"
	default:
		return "0"
	}
}

// Record is one parsed line of a TFBS table.
type Record struct {
	CellType string
	Tissue   string
	// Tokens lists the raw, non-empty factor tokens in the order they appear
	// on the line. Use ParseToken to interpret them.
	Tokens []string
}

// Token is a normalized factor token.
type Token struct {
	// Factor is the factor name with all whitespace removed. Note that this
	// makes "AP 1" and "AP1" the same factor.
	Factor string
	Sign   Sign
}

// ParseToken normalizes a raw token. It strips surrounding whitespace,
// removes every backslash, and trims leading and trailing ',' and ';'. If the
// cleaned token ends with '+' or '-', that character is the sign and the rest
// is the factor name. ParseToken returns false if nothing is left after
// cleaning.
func ParseToken(raw string) (Token, bool) {
	tok := strings.TrimSpace(raw)
	tok = strings.ReplaceAll(tok, `\`, "")
	tok = strings.Trim(tok, ",;")
	if tok == "" {
		return Token{}, false
	}
	var t Token
	switch tok[len(tok)-1] {
	case '+':
		t.Sign = SignPlus
		tok = tok[:len(tok)-1]
	case '-':
		t.Sign = SignMinus
		tok = tok[:len(tok)-1]
	}
	t.Factor = removeSpace(strings.TrimSpace(tok))
	return t, true
}

// ForEachToken calls fn for every token of r that survives ParseToken, in
// order, and returns the number of tokens that did not. If splitLists is set,
// each raw field is first split on ',' so that a field such as "TF1+,TF2-"
// yields two tokens.
func (r *Record) ForEachToken(splitLists bool, fn func(Token)) (skipped int) {
	parse := func(raw string) {
		if t, ok := ParseToken(raw); ok {
			fn(t)
		} else {
			skipped++
		}
	}
	for _, field := range r.Tokens {
		if !splitLists {
			parse(field)
			continue
		}
		for _, raw := range strings.Split(field, ",") {
			parse(raw)
		}
	}
	return skipped
}

func removeSpace(s string) string {
	if strings.IndexFunc(s, unicode.IsSpace) < 0 {
		return s
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
