package place

import (
	"place/internal/diag"
	"place/internal/literal"
	"place/internal/source"
	"place/internal/token"
)

// readArgs splits a comma separated argument list of exactly n single-token
// arguments. One trailing comma is allowed.
func readArgs(s token.Stream, n int, call source.Span) ([]token.Token, error) {
	args := make([]token.Token, 0, n)
	i := 0
	for k := range n {
		if k > 0 {
			if i >= len(s) {
				return nil, errorAt(diag.PlcMissingArguments, call, "expected more arguments")
			}
			if !s[i].IsComma() {
				return nil, errorAt(diag.PlcExpectedComma, s[i].Span, "expected comma")
			}
			i++
		}
		if i >= len(s) {
			return nil, errorAt(diag.PlcMissingArguments, call, "expected %d arguments, got %d", n, k)
		}
		args = append(args, s[i])
		i++
	}
	if i < len(s) {
		if !s[i].IsComma() {
			return nil, errorAt(diag.PlcUnexpectedToken, s[i].Span, "unexpected token in marker invocation")
		}
		if i+1 < len(s) {
			return nil, errorAt(diag.PlcTooManyArguments, s[i+1].Span, "marker takes only %d arguments", n)
		}
	}
	return args, nil
}

// stringArg returns the value of a string literal argument. A group holding
// exactly one token is looked through, recursively.
func stringArg(t token.Token) (string, error) {
	arg := t
	for arg.Kind == token.Group && len(arg.Stream) == 1 {
		arg = arg.Stream[0]
	}
	if arg.Kind != token.Literal || arg.Lit != token.LitStr {
		return "", errorAt(diag.PlcExpectedString, t.Span, "expected string literal")
	}
	v, err := literal.StringValue(arg)
	if err != nil {
		return "", literalError(err, arg.Span)
	}
	return v, nil
}
