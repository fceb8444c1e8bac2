package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/urfave/cli/v2"

	"github.com/dosato-lang/dosato/dosato"
	herrors "github.com/dosato-lang/dosato/dosato/errors"
	"github.com/dosato-lang/dosato/dosato/interpreter"
	"github.com/dosato-lang/dosato/dosato/parser"
	"github.com/dosato-lang/dosato/dosato/value"
)

const historyFile = ".dosato_history"
const promptMain = "dosato> "
const promptCont = "   ...> "

// session keeps every entered program alive, functions declared earlier refer to their tokens.
type session struct {
	interpreter *interpreter.Interpreter
	sources     map[string]string
	entries     int
	settings    settings
}

func (self *session) eval(code string) (exit bool, exitCode int) {
	self.entries++
	filename := fmt.Sprintf("repl:%d", self.entries)
	self.sources[filename] = code

	program, err := dosato.Parse(filename, code)
	if err != nil {
		printError(err, code, self.settings.color)
		return false, 0
	}

	self.interpreter.Continue(&program)
	if err := self.interpreter.Run(); err != nil {
		printError(err, self.sources[err.Span.Filename], self.settings.color)
		return false, 0
	}

	// END stops the session
	proc := self.interpreter.Process()
	if !proc.Running {
		return true, proc.ExitCode
	}
	return false, 0
}

func (self *session) command(line string) (exit bool) {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case ":quit", ":q":
		return true
	case ":vars":
		for _, name := range self.interpreter.Process().Names() {
			variable := self.interpreter.Process().Lookup(name)
			display, err := value.ToString(variable.Inner)
			if err != nil {
				display = err.Code.Message()
			}
			fmt.Printf("%s %s = %s\n", describe(variable), name, display)
		}
	case ":functions":
		fmt.Println(strings.Join(self.interpreter.Registry().Names(), ", "))
	default:
		fmt.Println("unknown command. Available: :vars, :functions, :quit")
	}
	return false
}

func describe(variable *value.Variable) string {
	out := variable.BaseType().String()
	for idx := uint8(0); idx < variable.Depth(); idx++ {
		out += "[]"
	}
	if variable.Constant {
		return "CONST " + out
	}
	return out
}

// incomplete reports whether the parser ran into the end of the input, more lines may follow.
func incomplete(err *herrors.Error, code string) bool {
	if !err.Code.IsSyntax() {
		return false
	}
	return err.Span.Start.Index >= uint(len([]rune(strings.TrimRight(code, " \t\r\n"))))
}

func readStatement(ln *liner.State) (string, bool) {
	var b strings.Builder

	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}

		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			return "", false
		}
		if err != nil {
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		code := b.String()
		if strings.HasPrefix(strings.TrimSpace(code), ":") || strings.TrimSpace(code) == "" {
			return code, true
		}

		if _, parseErr := dosato.Parse("repl", code); parseErr != nil && incomplete(parseErr, code) {
			continue
		}
		return code, true
	}
}

func repl(ctx *cli.Context) error {
	settings, err := loadSettings(ctx)
	if err != nil {
		return err
	}
	options, err := settings.options()
	if err != nil {
		return err
	}

	empty := parser.Program{Filename: "repl:0"}
	instance, hmsErr := dosato.NewInterpreter(&empty, dosato.NewStdoutExecutor(), options, true)
	if hmsErr != nil {
		return hmsErr
	}
	defer instance.Process().Destroy()

	s := session{
		interpreter: instance,
		sources:     make(map[string]string),
		settings:    settings,
	}

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	fmt.Printf("%s %s, type :quit to exit\n", programName, version)

	for {
		code, ok := readStatement(ln)
		if !ok {
			fmt.Println()
			return nil
		}
		if strings.TrimSpace(code) == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))

		if strings.HasPrefix(strings.TrimSpace(code), ":") {
			if s.command(code) {
				return nil
			}
			continue
		}

		if exit, exitCode := s.eval(code); exit {
			if exitCode != 0 {
				return cli.Exit("", exitCode)
			}
			return nil
		}
	}
}
