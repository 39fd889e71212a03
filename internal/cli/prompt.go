// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"
)

// Prompter asks the user for input.
type Prompter interface {
	ReadLine(prompt string) (string, error)
	// ReadSecret reads a value without echoing it when the input is a
	// terminal.
	ReadSecret(prompt string) (string, error)
}

type terminalPrompter struct {
	in  *bufio.Reader
	out io.Writer
	fd  int
}

// NewTerminalPrompter reads from in and writes prompts to out. fd is the
// descriptor behind in; secrets are read with echo off when it is a
// terminal.
func NewTerminalPrompter(in io.Reader, out io.Writer, fd int) Prompter {
	return &terminalPrompter{in: bufio.NewReader(in), out: out, fd: fd}
}

func (p *terminalPrompter) ReadLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)

	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (p *terminalPrompter) ReadSecret(prompt string) (string, error) {
	if !term.IsTerminal(p.fd) {
		return p.ReadLine(prompt)
	}

	fmt.Fprint(p.out, prompt)
	secret, err := term.ReadPassword(p.fd)
	fmt.Fprintln(p.out)
	if err != nil {
		return "", fmt.Errorf("read secret: %w", err)
	}
	return string(secret), nil
}
