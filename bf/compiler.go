package bf

import "fmt"

type Opcode uint8

const (
	OpMoveRight Opcode = iota
	OpMoveLeft
	OpIncrement
	OpDecrement
	OpOutput
	OpInput
	OpLoopBegin
	OpLoopEnd
)

func (op Opcode) String() string {
	switch op {
	case OpMoveRight:
		return ">"
	case OpMoveLeft:
		return "<"
	case OpIncrement:
		return "+"
	case OpDecrement:
		return "-"
	case OpOutput:
		return "."
	case OpInput:
		return ","
	case OpLoopBegin:
		return "["
	case OpLoopEnd:
		return "]"
	default:
		return "?"
	}
}

// Instruction is one element of a compiled program. For OpLoopBegin and
// OpLoopEnd, Target is the index of the matching partner instruction.
// For all other opcodes it is unused.
type Instruction struct {
	Op     Opcode
	Target int
}

func (in Instruction) String() string {
	if in.Op == OpLoopBegin || in.Op == OpLoopEnd {
		return fmt.Sprintf("%s->%d", in.Op, in.Target)
	}
	return in.Op.String()
}

// Program is a compiled instruction sequence. It is immutable during
// execution: loop targets are resolved here, once, and never touched
// by the interpreter.
type Program []Instruction

// Compile resolves a lexed command stream into a Program with loop
// jump targets filled in. Brackets are matched innermost-first with a
// stack of pending OpLoopBegin positions: a '[' is appended with a
// placeholder target which is patched when its ']' turns up.
func Compile(commands []Command) (Program, error) {
	program := make(Program, 0, len(commands))
	var pending []int
	for _, cmd := range commands {
		switch cmd {
		case Right:
			program = append(program, Instruction{Op: OpMoveRight})
		case Left:
			program = append(program, Instruction{Op: OpMoveLeft})
		case Increment:
			program = append(program, Instruction{Op: OpIncrement})
		case Decrement:
			program = append(program, Instruction{Op: OpDecrement})
		case Output:
			program = append(program, Instruction{Op: OpOutput})
		case Input:
			program = append(program, Instruction{Op: OpInput})
		case LoopStart:
			pending = append(pending, len(program))
			program = append(program, Instruction{Op: OpLoopBegin, Target: -1})
		case LoopEnd:
			if len(pending) == 0 {
				return nil, fmt.Errorf("%w at instruction %d", ErrUnmatchedClose, len(program))
			}
			begin := pending[len(pending)-1]
			pending = pending[:len(pending)-1]
			program[begin].Target = len(program)
			program = append(program, Instruction{Op: OpLoopEnd, Target: begin})
		}
	}
	if len(pending) > 0 {
		return nil, fmt.Errorf("%w at instruction %d", ErrUnmatchedOpen, pending[len(pending)-1])
	}
	return program, nil
}
