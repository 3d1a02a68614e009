package parser

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// ConversionError is the base for every error produced by this package.
// It carries the raw value, the slash option type the value was declared as,
// and the display name of the converter that gave up on it.
type ConversionError struct {
	Value      string
	OptionType discordgo.ApplicationCommandOptionType
	Converter  string
	message    string
}

func (e *ConversionError) Error() string {
	if e.message != "" {
		return e.message
	}
	return fmt.Sprintf("failed to convert %q using %s", e.Value, e.Converter)
}

func (e *ConversionError) conversion() *ConversionError { return e }

func newConversionError(value string, optType discordgo.ApplicationCommandOptionType, converter, message string) ConversionError {
	return ConversionError{Value: value, OptionType: optType, Converter: converter, message: message}
}

// AsConversionError reports whether err (or anything it wraps) was raised by
// this package, returning the base fields shared by the whole taxonomy.
func AsConversionError(err error) (*ConversionError, bool) {
	var c interface{ conversion() *ConversionError }
	if errors.As(err, &c) {
		return c.conversion(), true
	}
	return nil, false
}

// NotAStringError reports a value the string/boolean converters rejected.
type NotAStringError struct {
	ConversionError
}

func newNotAString(value, converter string) *NotAStringError {
	return &NotAStringError{newConversionError(
		value, discordgo.ApplicationCommandOptionString, converter,
		fmt.Sprintf("%q is not a string.", value),
	)}
}

// NotAnIntegerError reports a value that is not a base-10 integer.
type NotAnIntegerError struct {
	ConversionError
}

func newNotAnInteger(value, converter string) *NotAnIntegerError {
	return &NotAnIntegerError{newConversionError(
		value, discordgo.ApplicationCommandOptionInteger, converter,
		fmt.Sprintf("%q is not an integer.", value),
	)}
}

// NotAFloatError reports a value that is not a decimal number.
type NotAFloatError struct {
	ConversionError
}

func newNotAFloat(value, converter string) *NotAFloatError {
	return &NotAFloatError{newConversionError(
		value, discordgo.ApplicationCommandOptionNumber, converter,
		fmt.Sprintf("%q is not a decimal number.", value),
	)}
}

// ParsingFailedError is returned when no converter succeeds for a value, or
// when a parser in fail-on-error mode sees any token fail. Errors holds the
// last conversion error recorded per raw token.
type ParsingFailedError struct {
	ConversionError
	Errors map[string]error
}

func newParsingFailed(argument string, errs map[string]error) *ParsingFailedError {
	return &ParsingFailedError{
		ConversionError: newConversionError(
			argument, discordgo.ApplicationCommandOptionString, "StringParser",
			fmt.Sprintf("failed to parse %q with any of the configured converters", argument),
		),
		Errors: errs,
	}
}

// InvalidVariadicArgumentsError is returned when the number of split tokens
// falls outside the configured bounds.
type InvalidVariadicArgumentsError struct {
	ConversionError
	Received []string
	Min, Max int
}

func newInvalidVariadicArguments(argument string, received []string, min, max int) *InvalidVariadicArgumentsError {
	what := "Too few"
	if max > 0 && len(received) > max {
		what = "Too many"
	}
	return &InvalidVariadicArgumentsError{
		ConversionError: newConversionError(
			argument, discordgo.ApplicationCommandOptionString, "VariadicArgs",
			fmt.Sprintf("%s arguments. Expected %d to %d arguments, got %d.", what, min, max, len(received)),
		),
		Received: received,
		Min:      min,
		Max:      max,
	}
}

// VariadicArgsFailedError is returned when the token count is acceptable but
// one or more individual conversions failed. It keeps both the raw split list
// and the per-token errors.
type VariadicArgsFailedError struct {
	InvalidVariadicArgumentsError
	Errors map[string]error
}

func newVariadicArgsFailed(argument string, received []string, min, max int, errs map[string]error) *VariadicArgsFailedError {
	return &VariadicArgsFailedError{
		InvalidVariadicArgumentsError: InvalidVariadicArgumentsError{
			ConversionError: newConversionError(
				argument, discordgo.ApplicationCommandOptionString, "VariadicArgs",
				fmt.Sprintf("%d argument(s) failed to be converted.", len(errs)),
			),
			Received: received,
			Min:      min,
			Max:      max,
		},
		Errors: errs,
	}
}
