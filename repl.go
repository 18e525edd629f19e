// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-shellwords"
)

var errQuit = errors.New("quit")

const shellHelp = `commands:
  add WORD TRANSLATION   add or update a word (quote multi-word entries)
  get WORD               show the translation
  rm WORD                delete a word
  list [PREFIX]          list words in order
  size                   number of words
  help                   this text
  quit                   leave the shell`

// splitLine splits a shell line into words, honouring quotes.
func splitLine(line string) ([]string, error) {
	args, err := shellwords.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %q: %w", line, err)
	}
	return args, nil
}

// runShell reads commands from in until EOF or quit. Errors from single
// commands are printed and the loop goes on.
func runShell(ctx context.Context, s *session, in io.Reader, out io.Writer, prompt bool) error {
	scanner := bufio.NewScanner(in)
	for {
		if prompt {
			fmt.Fprint(out, "slovar> ")
		}
		if !scanner.Scan() {
			return scanner.Err()
		}

		args, err := splitLine(scanner.Text())
		if err != nil {
			fmt.Fprintf(out, "%serror:%s %v\n", Error, Reset, err)
			continue
		}
		if len(args) == 0 {
			continue
		}

		err = execShellCommand(ctx, s, args, out)
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(out, "%serror:%s %v\n", Error, Reset, err)
		}
	}
}

func execShellCommand(ctx context.Context, s *session, args []string, out io.Writer) error {
	cmd, rest := strings.ToLower(args[0]), args[1:]

	switch cmd {
	case "add", "set":
		if len(rest) != 2 {
			return fmt.Errorf("usage: add WORD TRANSLATION")
		}
		if err := s.add(ctx, rest[0], rest[1]); err != nil {
			return err
		}
		fmt.Fprintf(out, "%s = %s\n", rest[0], rest[1])
	case "get", "find":
		if len(rest) != 1 {
			return fmt.Errorf("usage: get WORD")
		}
		v, ok, err := s.dict.Find(rest[0])
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintf(out, "%s: not found\n", rest[0])
			return nil
		}
		fmt.Fprintln(out, v)
	case "rm", "delete":
		if len(rest) != 1 {
			return fmt.Errorf("usage: rm WORD")
		}
		deleted, err := s.remove(ctx, rest[0])
		if err != nil {
			return err
		}
		if deleted {
			fmt.Fprintf(out, "%s removed\n", rest[0])
		} else {
			fmt.Fprintf(out, "%s: not found\n", rest[0])
		}
	case "list", "ls":
		prefix := ""
		if len(rest) > 0 {
			prefix = rest[0]
		}
		for _, p := range s.dict.SearchPrefix(prefix) {
			fmt.Fprintf(out, "%s\t%s\n", p.Key, p.Value)
		}
	case "size":
		fmt.Fprintln(out, s.dict.Size())
	case "help", "?":
		fmt.Fprintln(out, shellHelp)
	case "quit", "exit":
		return errQuit
	default:
		return fmt.Errorf("unknown command %q, try help", cmd)
	}
	return nil
}
