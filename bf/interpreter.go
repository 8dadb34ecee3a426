package bf

import (
	"context"
	"fmt"
	"io"
)

// Interpreter executes a compiled Program against a growable byte
// tape. It owns the tape and both pointers for the lifetime of a run;
// input and output are external collaborators supplied at
// construction. Output bytes are written as they are produced, one
// Write per '.'.
type Interpreter struct {
	Program     Program
	program_ptr int
	mem         []uint8
	mem_ptr     int
	Input       io.Reader
	Output      io.Writer
	config      Config
}

func NewInterpreter(program Program, input io.Reader, output io.Writer, config Config) *Interpreter {
	config = config.withDefaults()
	return &Interpreter{
		Program:     program,
		program_ptr: 0,
		mem:         make([]uint8, config.TapeSize),
		mem_ptr:     0,
		Input:       input,
		Output:      output,
		config:      config,
	}
}

// Reset restores the interpreter to its initial state so the same
// compiled program can be run again. The tape shrinks back to its
// configured initial length.
func (i *Interpreter) Reset() {
	i.program_ptr = 0
	i.mem_ptr = 0
	i.mem = make([]uint8, i.config.TapeSize)
}

func (i *Interpreter) MemoryLength() int {
	return len(i.mem)
}

// Index the memory. Cells past the grown end of the tape read as zero,
// which is what they would hold had the pointer ever reached them.
func (i *Interpreter) At(j int) uint8 {
	if j < 0 || j >= len(i.mem) {
		return 0
	}
	return i.mem[j]
}

func (i *Interpreter) readByte() (uint8, error) {
	if i.Input == nil {
		return 0, fmt.Errorf("%w: no input source", ErrInput)
	}
	var buff [1]byte
	if _, err := io.ReadFull(i.Input, buff[:]); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInput, err)
	}
	return buff[0], nil
}

// Run the program in a loop until it finishes or an error occurs.
func (i *Interpreter) RunContext(ctx context.Context) error {
	for i.program_ptr < len(i.Program) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		in := i.Program[i.program_ptr]
		switch in.Op {
		case OpIncrement:
			i.mem[i.mem_ptr]++
		case OpDecrement:
			i.mem[i.mem_ptr]--
		case OpMoveRight:
			i.mem_ptr++
			if i.mem_ptr >= len(i.mem) {
				i.mem = append(i.mem, make([]uint8, i.config.TapeGrow)...)
			}
		case OpMoveLeft:
			if i.mem_ptr == 0 {
				return fmt.Errorf("%w: '<' at instruction %d", ErrOutOfBounds, i.program_ptr)
			}
			i.mem_ptr--
		case OpOutput:
			if i.Output != nil {
				if _, err := i.Output.Write([]byte{i.mem[i.mem_ptr]}); err != nil {
					return fmt.Errorf("writing output at instruction %d: %w", i.program_ptr, err)
				}
			}
		case OpInput:
			b, err := i.readByte()
			if err != nil {
				return fmt.Errorf("%w (instruction %d)", err, i.program_ptr)
			}
			i.mem[i.mem_ptr] = b
		case OpLoopBegin:
			if i.mem[i.mem_ptr] == 0 {
				// Jump to the matching ']'. The pointer advance below
				// lands us on the instruction after the loop.
				i.program_ptr = in.Target
			}
		case OpLoopEnd:
			if i.mem[i.mem_ptr] != 0 {
				// Jump to just before the matching '['. The pointer
				// advance below re-enters the loop at the '[' itself.
				i.program_ptr = in.Target - 1
			}
		default:
			return fmt.Errorf("unknown opcode %d at instruction %d", in.Op, i.program_ptr)
		}
		i.program_ptr++
	}
	return nil
}

func (i *Interpreter) Run() error {
	return i.RunContext(context.Background())
}
