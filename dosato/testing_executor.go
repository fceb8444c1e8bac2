package dosato

import (
	"fmt"
	"sync"
	"time"
)

// TestingExecutor records output and sleeps instead of performing them.
type TestingExecutor struct {
	PrintToStdout bool
	PrintBuf      *string
	PrintBufMutex *sync.Mutex
	Slept         *time.Duration
}

func NewTestingExecutor(printToStdout bool) TestingExecutor {
	return TestingExecutor{
		PrintToStdout: printToStdout,
		PrintBuf:      new(string),
		PrintBufMutex: &sync.Mutex{},
		Slept:         new(time.Duration),
	}
}

func (self TestingExecutor) WriteStringTo(input string) error {
	if self.PrintToStdout {
		fmt.Print(input)
	}
	self.PrintBufMutex.Lock()
	*self.PrintBuf += input
	self.PrintBufMutex.Unlock()
	return nil
}

func (self TestingExecutor) Sleep(duration time.Duration) {
	self.PrintBufMutex.Lock()
	*self.Slept += duration
	self.PrintBufMutex.Unlock()
}

func (self TestingExecutor) Output() string {
	self.PrintBufMutex.Lock()
	defer self.PrintBufMutex.Unlock()
	return *self.PrintBuf
}
