package dosato

import (
	"fmt"
	"io"
	"os"
	"time"
)

// StdoutExecutor writes program output to a writer, standard output by default.
type StdoutExecutor struct {
	Output io.Writer
}

func NewStdoutExecutor() StdoutExecutor {
	return StdoutExecutor{Output: os.Stdout}
}

func (self StdoutExecutor) WriteStringTo(input string) error {
	_, err := fmt.Fprint(self.Output, input)
	return err
}

func (self StdoutExecutor) Sleep(duration time.Duration) {
	time.Sleep(duration)
}
