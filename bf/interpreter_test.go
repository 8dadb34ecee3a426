package bf_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/MarcinKonowalczyk/bfvm/bf"
	"github.com/MarcinKonowalczyk/bfvm/utils"
)

func TestInterpreter_Increment(t *testing.T) {
	interpreter := bf.NewInterpreter(compile(t, "+"), nil, nil, bf.Config{})
	utils.AssertEqual(t, interpreter.At(0), 0)
	utils.AssertNoError(t, interpreter.Run())
	utils.AssertEqual(t, interpreter.At(0), 1)
}

func TestInterpreter_DecrementWrapsToMax(t *testing.T) {
	interpreter := bf.NewInterpreter(compile(t, "-"), nil, nil, bf.Config{})
	utils.AssertNoError(t, interpreter.Run())
	utils.AssertEqual(t, interpreter.At(0), 255)
}

func TestInterpreter_IncrementWrapsToZero(t *testing.T) {
	// 255 '-' would be tedious; -+ wraps down to 255 and back to 0
	interpreter := bf.NewInterpreter(compile(t, "-+"), nil, nil, bf.Config{})
	utils.AssertNoError(t, interpreter.Run())
	utils.AssertEqual(t, interpreter.At(0), 0)
}

func TestInterpreter_MoveRight(t *testing.T) {
	interpreter := bf.NewInterpreter(compile(t, ">+"), nil, nil, bf.Config{})
	utils.AssertNoError(t, interpreter.Run())
	utils.AssertEqual(t, interpreter.At(0), 0)
	utils.AssertEqual(t, interpreter.At(1), 1)
}

func TestInterpreter_MoveRightGrowsTape(t *testing.T) {
	config := bf.Config{TapeSize: 2, TapeGrow: 3}
	interpreter := bf.NewInterpreter(compile(t, ">>>>>+"), nil, nil, config)
	utils.AssertEqual(t, interpreter.MemoryLength(), 2)
	utils.AssertNoError(t, interpreter.Run())
	utils.Assert(t, interpreter.MemoryLength() > 5, "tape did not grow")
	// newly exposed cells read as zero
	for j := 0; j < 5; j++ {
		utils.AssertEqual(t, interpreter.At(j), 0)
	}
	utils.AssertEqual(t, interpreter.At(5), 1)
}

func TestInterpreter_MoveLeftOutOfBounds(t *testing.T) {
	interpreter := bf.NewInterpreter(compile(t, "<"), nil, nil, bf.Config{})
	err := interpreter.Run()
	utils.AssertErrorIs(t, err, bf.ErrOutOfBounds)
}

func TestInterpreter_MoveLeftAfterMoveRight(t *testing.T) {
	interpreter := bf.NewInterpreter(compile(t, ">+<+"), nil, nil, bf.Config{})
	utils.AssertNoError(t, interpreter.Run())
	utils.AssertEqual(t, interpreter.At(0), 1)
	utils.AssertEqual(t, interpreter.At(1), 1)
}

func TestInterpreter_Output(t *testing.T) {
	var output bytes.Buffer
	interpreter := bf.NewInterpreter(compile(t, "++."), nil, &output, bf.Config{})
	utils.AssertNoError(t, interpreter.Run())
	utils.AssertEqualArrays(t, output.Bytes(), []byte{2})
}

func TestInterpreter_OutputNilSink(t *testing.T) {
	interpreter := bf.NewInterpreter(compile(t, "+."), nil, nil, bf.Config{})
	utils.AssertNoError(t, interpreter.Run())
}

func TestInterpreter_Input(t *testing.T) {
	input := bytes.NewReader([]byte{65})
	var output bytes.Buffer
	interpreter := bf.NewInterpreter(compile(t, ",."), input, &output, bf.Config{})
	utils.AssertNoError(t, interpreter.Run())
	utils.AssertEqualArrays(t, output.Bytes(), []byte{65})
}

func TestInterpreter_InputExhausted(t *testing.T) {
	input := bytes.NewReader(nil)
	interpreter := bf.NewInterpreter(compile(t, ","), input, nil, bf.Config{})
	err := interpreter.Run()
	utils.AssertErrorIs(t, err, bf.ErrInput)
}

func TestInterpreter_InputNilSource(t *testing.T) {
	interpreter := bf.NewInterpreter(compile(t, ","), nil, nil, bf.Config{})
	err := interpreter.Run()
	utils.AssertErrorIs(t, err, bf.ErrInput)
}

func TestInterpreter_SkippedLoopDoesNotRead(t *testing.T) {
	// cell 0 is zero so the whole loop body, ',' included, is skipped
	interpreter := bf.NewInterpreter(compile(t, "[,]"), nil, nil, bf.Config{})
	utils.AssertNoError(t, interpreter.Run())
}

func TestInterpreter_CopyLoop(t *testing.T) {
	interpreter := bf.NewInterpreter(compile(t, "+[>+<-]"), nil, nil, bf.Config{})
	utils.AssertNoError(t, interpreter.Run())
	utils.AssertEqual(t, interpreter.At(0), 0)
	utils.AssertEqual(t, interpreter.At(1), 1)
}

func TestInterpreter_Loop(t *testing.T) {
	// move three from cell 0 to cell 1
	interpreter := bf.NewInterpreter(compile(t, "+++[->+<]"), nil, nil, bf.Config{})
	utils.AssertNoError(t, interpreter.Run())
	utils.AssertEqual(t, interpreter.At(0), 0)
	utils.AssertEqual(t, interpreter.At(1), 3)
}

func TestInterpreter_LoopExitResumesAfterLoop(t *testing.T) {
	// the '+' after the skipped loop must not be skipped
	interpreter := bf.NewInterpreter(compile(t, "[-]+"), nil, nil, bf.Config{})
	utils.AssertNoError(t, interpreter.Run())
	utils.AssertEqual(t, interpreter.At(0), 1)
}

func TestInterpreter_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	interpreter := bf.NewInterpreter(compile(t, "+[]"), nil, nil, bf.Config{})
	err := interpreter.RunContext(ctx)
	utils.AssertErrorIs(t, err, context.Canceled)
}

func TestInterpreter_Reset(t *testing.T) {
	interpreter := bf.NewInterpreter(compile(t, ">>+"), nil, nil, bf.Config{TapeSize: 1, TapeGrow: 1})
	utils.AssertNoError(t, interpreter.Run())
	utils.AssertEqual(t, interpreter.At(2), 1)
	interpreter.Reset()
	utils.AssertEqual(t, interpreter.At(2), 0)
	utils.AssertEqual(t, interpreter.MemoryLength(), 1)
	// and the same program runs again
	utils.AssertNoError(t, interpreter.Run())
	utils.AssertEqual(t, interpreter.At(2), 1)
}
