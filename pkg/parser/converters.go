package parser

import (
	"context"
	"strconv"
	"strings"
)

// StringConverter accepts any token as-is.
type StringConverter struct{}

func (StringConverter) Convert(_ context.Context, _ *Context, argument string) (interface{}, error) {
	return argument, nil
}

// IntegerConverter parses a base-10 integer into an int64.
type IntegerConverter struct{}

func (c IntegerConverter) Convert(_ context.Context, _ *Context, argument string) (interface{}, error) {
	n, err := strconv.ParseInt(argument, 10, 64)
	if err != nil {
		return nil, newNotAnInteger(argument, converterName(c))
	}
	return n, nil
}

// FloatConverter parses a decimal number into a float64.
type FloatConverter struct{}

func (c FloatConverter) Convert(_ context.Context, _ *Context, argument string) (interface{}, error) {
	f, err := strconv.ParseFloat(argument, 64)
	if err != nil {
		return nil, newNotAFloat(argument, converterName(c))
	}
	return f, nil
}

// BooleanConverter accepts the lenient yes/no vocabulary text commands use.
type BooleanConverter struct{}

func (c BooleanConverter) Convert(_ context.Context, _ *Context, argument string) (interface{}, error) {
	b, err := parseBool(argument, converterName(c))
	if err != nil {
		return nil, err
	}
	return b, nil
}

// parseBool is case-insensitive and mirrors the vocabulary accepted by the
// text-command bool converter.
func parseBool(argument, converter string) (bool, error) {
	switch strings.ToLower(argument) {
	case "yes", "y", "true", "t", "1", "enable", "enabled", "on":
		return true, nil
	case "no", "n", "false", "f", "0", "disable", "disabled", "off":
		return false, nil
	}
	return false, newNotAString(argument, converter)
}
