// Copyright 2026 The zxc Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package parser

import (
	"github.com/zx-lang/zxc/pkg/stream"
	"github.com/zx-lang/zxc/pkg/token"
)

// extractUntil scans tokens from its current position, tracking paren/bracket
// nesting, until it finds stop at nesting depth zero. It returns a new Stream
// over the consumed tokens (not including stop) and leaves the original
// stream positioned immediately before stop so the caller can consume it
// explicitly. On EOF before stop is found at depth zero, the original
// stream's position is restored and an error is returned (spec.md §4.3's
// extractor: "On imbalance, restores the stream's original position and
// fails").
func (p *parser) extractUntil(tokens *stream.Stream[*token.Token], stop token.Kind) (*stream.Stream[*token.Token], error) {
	start := tokens.Current()
	depth := 0
	var collected []*token.Token

	for {
		tok, ok := tokens.Peek()
		if !ok {
			tokens.SetPosition(start)
			return nil, p.failAt(0, 0, "unexpected end of input while scanning expression")
		}
		if depth == 0 && tok.Kind == stop {
			break
		}
		switch tok.Kind {
		case token.OpenParen, token.OpenBracket:
			depth++
		case token.CloseParen, token.CloseBracket:
			depth--
		}
		tokens.Next()
		collected = append(collected, tok)
	}

	return stream.New(collected), nil
}

// extractBalanced assumes tokens is positioned just past an opening
// delimiter; it consumes up to and including the matching close delimiter,
// returning the enclosed tokens as a new Stream (not including either
// delimiter).
func (p *parser) extractBalanced(tokens *stream.Stream[*token.Token], open, close token.Kind) (*stream.Stream[*token.Token], error) {
	start := tokens.Current()
	depth := 1
	var collected []*token.Token

	for {
		tok, ok := tokens.Next()
		if !ok {
			tokens.SetPosition(start)
			return nil, p.failAt(0, 0, "unbalanced delimiters in expression")
		}
		switch tok.Kind {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return stream.New(collected), nil
			}
		}
		collected = append(collected, tok)
	}
}

// splitArgs assumes tokens is positioned just past a "(", and returns one
// sub-Stream per comma-separated argument (ignoring commas nested inside
// parens/brackets), consuming the matching ")". An empty argument list
// yields a nil slice.
func (p *parser) splitArgs(tokens *stream.Stream[*token.Token]) ([]*stream.Stream[*token.Token], error) {
	var args []*stream.Stream[*token.Token]
	var current []*token.Token
	depth := 0

	for {
		tok, ok := tokens.Next()
		if !ok {
			return nil, p.failAt(0, 0, "unbalanced parentheses in argument list")
		}
		switch tok.Kind {
		case token.OpenParen, token.OpenBracket:
			depth++
		case token.CloseParen:
			if depth == 0 {
				if len(current) > 0 {
					args = append(args, stream.New(current))
				}
				return args, nil
			}
			depth--
		case token.CloseBracket:
			depth--
		case token.Comma:
			if depth == 0 {
				args = append(args, stream.New(current))
				current = nil
				continue
			}
		}
		current = append(current, tok)
	}
}
