package bf

import (
	"context"
	"io"
)

// Run compiles and executes source in one go, with default tape
// geometry. Input and output may be nil for programs which don't use
// ',' or '.'.
func Run(source string, input io.Reader, output io.Writer) error {
	return RunContext(context.Background(), source, input, output)
}

func RunContext(ctx context.Context, source string, input io.Reader, output io.Writer) error {
	program, err := Compile(Lex(PreLex(source)))
	if err != nil {
		return err
	}
	interpreter := NewInterpreter(program, input, output, DefaultConfig())
	return interpreter.RunContext(ctx)
}
