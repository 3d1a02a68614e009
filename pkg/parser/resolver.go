package parser

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// Converter turns one raw token into a typed value using the wrapped command
// context. Converters return nil with an error when they cannot make sense of
// the token; the resolver then moves on to the next one in line.
type Converter interface {
	Convert(ctx context.Context, cc *Context, argument string) (interface{}, error)
}

// ConverterFunc adapts a plain function to Converter.
type ConverterFunc func(ctx context.Context, cc *Context, argument string) (interface{}, error)

func (f ConverterFunc) Convert(ctx context.Context, cc *Context, argument string) (interface{}, error) {
	return f(ctx, cc, argument)
}

// Transformer is the interaction-shaped capability: it converts a token with
// access to the raw interaction only. Custom transformers are accepted
// anywhere a converter descriptor is.
type Transformer interface {
	Transform(ctx context.Context, interaction *discordgo.InteractionCreate, argument string) (interface{}, error)
}

// transformerAdapter lets a Transformer take part in a converter chain.
type transformerAdapter struct {
	t Transformer
}

func (a transformerAdapter) Convert(ctx context.Context, cc *Context, argument string) (interface{}, error) {
	return a.t.Transform(ctx, cc.Interaction(), argument)
}

// converterName renders a converter for error messages and Failed maps.
func converterName(c Converter) string {
	if a, ok := c.(transformerAdapter); ok {
		return strings.TrimPrefix(strings.TrimPrefix(fmt.Sprintf("%T", a.t), "*"), "parser.")
	}
	return strings.TrimPrefix(strings.TrimPrefix(fmt.Sprintf("%T", c), "*"), "parser.")
}

// runConverters tries each converter in order and stops at the first one that
// produces a non-nil value. An attempt's error is kept even when a later
// converter succeeds, so callers can still inspect what the earlier ones
// complained about. When everything fails, the last converter tried and the
// last error recorded come back with a nil value.
func runConverters(ctx context.Context, cc *Context, converters []Converter, value string) (interface{}, Converter, error) {
	var (
		converted interface{}
		used      Converter
		lastErr   error
	)
	for _, conv := range converters {
		if converted != nil {
			break
		}
		used = conv
		v, err := conv.Convert(ctx, cc, value)
		if err != nil {
			lastErr = err
			continue
		}
		converted = v
	}
	return converted, used, lastErr
}
