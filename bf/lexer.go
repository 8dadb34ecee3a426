package bf

// PreLex filters the input down to the eight recognized symbols. All
// other characters (whitespace, comments, arbitrary text) are dropped,
// so instruction positions are counted over the filtered stream only.
func PreLex(input string) string {
	var result []rune
	for _, c := range input {
		switch c {
		case '+', '-', '>', '<', '.', ',', '[', ']':
			result = append(result, c)
		}
	}
	return string(result)
}

type Command rune

const (
	Increment Command = '+'
	Decrement Command = '-'
	Left      Command = '<'
	Right     Command = '>'
	Output    Command = '.'
	Input     Command = ','
	LoopStart Command = '['
	LoopEnd   Command = ']'
	Ignore    Command = ' '
)

func parse(c rune) Command {
	switch c {
	case '+':
		return Increment
	case '-':
		return Decrement
	case '>':
		return Right
	case '<':
		return Left
	case '.':
		return Output
	case ',':
		return Input
	case '[':
		return LoopStart
	case ']':
		return LoopEnd
	default:
		return Ignore
	}
}

func (c Command) String() string {
	if c == Ignore {
		return " "
	}
	return string(rune(c))
}

// Lex turns source text into the command stream Compile consumes.
// Anything which does not parse to one of the eight commands is
// dropped, so PreLex-ing first is optional.
func Lex(input string) []Command {
	commands := []Command{}
	for _, c := range input {
		cmd := parse(c)
		if cmd != Ignore {
			commands = append(commands, cmd)
		}
	}
	return commands
}
