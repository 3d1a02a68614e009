package parser

import (
	"context"
	"fmt"
	"strings"
)

// Converted pairs a converted value with the converter that produced it.
type Converted struct {
	Value     interface{}
	Converter Converter
}

// ParseResult is the outcome of parsing one composite argument.
//
// Every token ends up in exactly one of Success or Failed; a token whose
// conversion raised along the way additionally appears in Errors, even when a
// later converter succeeded for it. Duplicate tokens collapse to a single
// entry, last outcome wins.
type ParseResult struct {
	// Argument is the full raw option value that was parsed.
	Argument string
	// Success maps a raw token to its converted value and converter.
	Success map[string]Converted
	// Failed maps a raw token to the last converter that was tried on it.
	Failed map[string]Converter
	// Errors maps a raw token to the last error recorded while converting it.
	Errors map[string]error

	order []string
}

// Tokens returns the distinct raw tokens in split order.
func (r *ParseResult) Tokens() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Converted returns the successfully converted values in split order.
func (r *ParseResult) Converted() []interface{} {
	out := make([]interface{}, 0, len(r.Success))
	for _, tok := range r.order {
		if c, ok := r.Success[tok]; ok {
			out = append(out, c.Value)
		}
	}
	return out
}

func (r *ParseResult) String() string {
	vals := r.Converted()
	parts := make([]string, 0, len(vals))
	for _, v := range vals {
		parts = append(parts, fmt.Sprintf("%v", v))
	}
	return "<ParseResult " + strings.Join(parts, ", ") + ">"
}

// StringParser splits a composite option value on a delimiter and runs every
// token through an ordered converter list, collecting per-token outcomes.
//
// The zero value is not usable; construct with NewStringParser so descriptor
// problems surface at registration time rather than per interaction.
type StringParser struct {
	// SplitBy is the token delimiter. Defaults to a single space.
	SplitBy string
	// FailOnError makes Parse reject the whole argument when any token fails,
	// instead of only when all of them do.
	FailOnError bool

	converters []Converter
}

// NewStringParser normalizes the descriptor list up front. With no
// descriptors, tokens pass through as strings.
func NewStringParser(descriptors ...interface{}) (*StringParser, error) {
	convs, err := Normalize(descriptors...)
	if err != nil {
		return nil, err
	}
	return &StringParser{SplitBy: " ", converters: convs}, nil
}

// MustStringParser is NewStringParser that panics on a bad descriptor list.
// For package-level parser variables, like regexp.MustCompile.
func MustStringParser(descriptors ...interface{}) *StringParser {
	p, err := NewStringParser(descriptors...)
	if err != nil {
		panic(err)
	}
	return p
}

// Converters returns the normalized converter list, in attempt order.
func (p *StringParser) Converters() []Converter { return p.converters }

// Parse splits argument and converts every token independently, in split
// order. It returns a ParsingFailedError when nothing converted, or, in
// fail-on-error mode, when anything failed.
func (p *StringParser) Parse(ctx context.Context, cc *Context, argument string) (*ParseResult, error) {
	split := p.SplitBy
	if split == "" {
		split = " "
	}

	res := &ParseResult{
		Argument: argument,
		Success:  make(map[string]Converted),
		Failed:   make(map[string]Converter),
		Errors:   make(map[string]error),
	}
	seen := make(map[string]bool)

	for _, value := range strings.Split(argument, split) {
		if !seen[value] {
			seen[value] = true
			res.order = append(res.order, value)
		}

		converted, used, err := runConverters(ctx, cc, p.converters, value)
		if converted != nil {
			res.Success[value] = Converted{Value: converted, Converter: used}
			delete(res.Failed, value)
		} else {
			res.Failed[value] = used
			delete(res.Success, value)
		}
		if err != nil {
			res.Errors[value] = err
		}
	}

	if len(res.Success) == 0 || (p.FailOnError && len(res.Failed) > 0) {
		return nil, newParsingFailed(argument, res.Errors)
	}
	return res, nil
}
