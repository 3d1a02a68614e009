package parser

import (
	"context"
	"errors"
	"strings"
)

// VariadicArgs parses a bounded list of values out of a single option.
// Unlike StringParser it has zero tolerance for partial results: every token
// must convert, and the token count must sit inside [Min, Max].
type VariadicArgs struct {
	*StringParser
	// Min and Max bound the number of split tokens. Zero means unbounded on
	// that side.
	Min, Max int
}

// NewVariadicArgs builds a variadic parser over the given descriptors.
func NewVariadicArgs(min, max int, descriptors ...interface{}) (*VariadicArgs, error) {
	p, err := NewStringParser(descriptors...)
	if err != nil {
		return nil, err
	}
	return &VariadicArgs{StringParser: p, Min: min, Max: max}, nil
}

// MustVariadicArgs is NewVariadicArgs that panics on a bad descriptor list.
func MustVariadicArgs(min, max int, descriptors ...interface{}) *VariadicArgs {
	v, err := NewVariadicArgs(min, max, descriptors...)
	if err != nil {
		panic(err)
	}
	return v
}

// Parse converts every token and returns the values in split order.
// A count outside the bounds yields InvalidVariadicArgumentsError; any failed
// token yields VariadicArgsFailedError carrying the raw split list and the
// per-token errors.
func (v *VariadicArgs) Parse(ctx context.Context, cc *Context, argument string) ([]interface{}, error) {
	split := v.SplitBy
	if split == "" {
		split = " "
	}
	received := strings.Split(argument, split)

	res, err := v.StringParser.Parse(ctx, cc, argument)
	if err != nil {
		var pf *ParsingFailedError
		if errors.As(err, &pf) {
			return nil, newVariadicArgsFailed(argument, received, v.Min, v.Max, pf.Errors)
		}
		return nil, err
	}

	if len(received) == 0 ||
		(v.Min > 0 && len(received) < v.Min) ||
		(v.Max > 0 && len(received) > v.Max) {
		return nil, newInvalidVariadicArguments(argument, received, v.Min, v.Max)
	}

	if len(res.Failed) > 0 || len(res.Success) != len(received) {
		return nil, newVariadicArgsFailed(argument, received, v.Min, v.Max, res.Errors)
	}

	return res.Converted(), nil
}
