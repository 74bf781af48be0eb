/*
Gorexcheck compiles a regex pattern and checks text against it.

Usage:

	gorexcheck [flags]

The flags are:

	-p, --pattern PATTERN
		The regex pattern to compile. Required.

	-n, --name NAME
		A label to compile the pattern under. Purely cosmetic; defaults to
		"CUSTOM".

	-c, --check TEXT
		Check TEXT against the compiled pattern once and print the result,
		then exit, instead of starting an interactive session.

With no --check given, gorexcheck drops into a line-at-a-time interactive
loop (GNU-readline-backed when stdin is a tty) that checks each line you
enter against the compiled pattern until you type "QUIT" or reach EOF.
*/
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/pflag"

	"github.com/dekarrin/gorex"
	"github.com/dekarrin/gorex/internal/version"
)

const (
	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitInitError indicates the pattern failed to compile.
	ExitInitError

	// ExitReadError indicates a problem reading interactive input.
	ExitReadError
)

var (
	returnCode  int     = ExitSuccess
	flagVersion *bool   = pflag.BoolP("version", "v", false, "Gives the version info")
	pattern     *string = pflag.StringP("pattern", "p", "", "The regex pattern to compile")
	name        *string = pflag.StringP("name", "n", "CUSTOM", "A label to compile the pattern under")
	checkText   *string = pflag.StringP("check", "c", "", "Check the given text against the compiled pattern once and exit")
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("unrecoverable panic occurred: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s\n", version.Current)
		return
	}

	if *pattern == "" {
		fmt.Fprintln(os.Stderr, "ERROR: --pattern is required")
		returnCode = ExitInitError
		return
	}

	re, err := gorex.Compile(*pattern, *name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitInitError
		return
	}

	if *checkText != "" {
		fmt.Println(re.Check(*checkText))
		return
	}

	if err := runInteractive(re); err != nil && err != io.EOF {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitReadError
		return
	}
}

// runInteractive drives a check-one-line-at-a-time loop against re, reading
// from a GNU-readline-backed instance when stdin is a tty and falling back
// to a direct buffered reader otherwise, mirroring the teacher's
// direct/readline toggle.
func runInteractive(re *gorex.Regex) error {
	if !isTTY(os.Stdin) {
		return runDirect(re, os.Stdin)
	}

	rl, err := readline.NewEx(&readline.Config{Prompt: "> "})
	if err != nil {
		return fmt.Errorf("create readline config: %w", err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.EqualFold(line, "QUIT") {
			return nil
		}
		fmt.Println(re.Check(line))
	}
}

func runDirect(re *gorex.Regex, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.EqualFold(line, "QUIT") {
			return nil
		}
		fmt.Println(re.Check(line))
	}
	return scanner.Err()
}

func isTTY(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
