package bf_test

import (
	"testing"

	"github.com/MarcinKonowalczyk/bfvm/bf"
	"github.com/MarcinKonowalczyk/bfvm/utils"
)

func compile(t *testing.T, source string) bf.Program {
	t.Helper()
	program, err := bf.Compile(bf.Lex(bf.PreLex(source)))
	utils.AssertNoError(t, err)
	return program
}

func TestCompile_NonBranching(t *testing.T) {
	program := compile(t, "><+-.,")
	expected := bf.Program{
		{Op: bf.OpMoveRight},
		{Op: bf.OpMoveLeft},
		{Op: bf.OpIncrement},
		{Op: bf.OpDecrement},
		{Op: bf.OpOutput},
		{Op: bf.OpInput},
	}
	utils.AssertEqualArrays(t, expected, program)
}

func TestCompile_Empty(t *testing.T) {
	program := compile(t, "")
	utils.AssertEqual(t, len(program), 0)
}

func TestCompile_FilteredToEmpty(t *testing.T) {
	program := compile(t, "no symbols in here at all")
	utils.AssertEqual(t, len(program), 0)
}

func TestCompile_LoopTargets(t *testing.T) {
	// index:  0123456
	program := compile(t, "+[>+<-]")
	utils.AssertEqual(t, program[1].Op, bf.OpLoopBegin)
	utils.AssertEqual(t, program[1].Target, 6)
	utils.AssertEqual(t, program[6].Op, bf.OpLoopEnd)
	utils.AssertEqual(t, program[6].Target, 1)
}

func TestCompile_NestedLoopTargetsAreMutualInverses(t *testing.T) {
	program := compile(t, "[[+][>[-]<]][]")
	for i, in := range program {
		if in.Op != bf.OpLoopBegin && in.Op != bf.OpLoopEnd {
			continue
		}
		partner := program[in.Target]
		utils.AssertEqual(t, partner.Target, i)
		if in.Op == bf.OpLoopBegin {
			utils.AssertEqual(t, partner.Op, bf.OpLoopEnd)
			utils.Assert(t, in.Target > i, "'[' must point forward")
		} else {
			utils.AssertEqual(t, partner.Op, bf.OpLoopBegin)
			utils.Assert(t, in.Target < i, "']' must point backward")
		}
	}
}

func TestCompile_UnmatchedClose(t *testing.T) {
	_, err := bf.Compile(bf.Lex("]"))
	utils.AssertErrorIs(t, err, bf.ErrUnmatchedClose)
}

func TestCompile_UnmatchedOpen(t *testing.T) {
	_, err := bf.Compile(bf.Lex("["))
	utils.AssertErrorIs(t, err, bf.ErrUnmatchedOpen)
}

func TestCompile_UnmatchedCloseAfterBalancedLoop(t *testing.T) {
	_, err := bf.Compile(bf.Lex("[]]"))
	utils.AssertErrorIs(t, err, bf.ErrUnmatchedClose)
}

func TestCompile_FilterEquivalence(t *testing.T) {
	// "a+b-c" compiles identically to "+-"
	utils.AssertEqualArrays(t, compile(t, "a+b-c"), compile(t, "+-"))
}

func TestCompile_Deterministic(t *testing.T) {
	source := "++[>+[-<]>]<."
	utils.AssertEqualArrays(t, compile(t, source), compile(t, source))
}
