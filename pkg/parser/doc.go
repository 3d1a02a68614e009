// Package parser resolves slash-command string options through ordered lists
// of converters. Declare which converters an argument accepts (built-in kinds,
// unions of kinds, or custom Converter/Transformer implementations), split
// composite values on a delimiter, and collect per-token successes, failures
// and errors into one result.
//
// Conversion is sequential: converters are tried in declaration order per
// token and the first non-nil result wins; tokens are processed in split
// order. Nothing is shared between invocations except the REST fallback
// limiter.
package parser
