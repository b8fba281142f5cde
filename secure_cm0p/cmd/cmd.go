// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package cmd implements the console commands used to inspect, configure and
// tamper with the PSoC 6 protection units.
package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"regexp"
	"sort"
	"text/tabwriter"

	"golang.org/x/term"

	"github.com/usbarmory/GoTEE-psoc6/mem"
	"github.com/usbarmory/GoTEE-psoc6/prot"
	"github.com/usbarmory/GoTEE-psoc6/sim"
)

// CmdFn represents a command handler.
type CmdFn func(term *term.Terminal, arg []string) (res string, err error)

// Cmd represents a console command.
type Cmd struct {
	// Name is the command name, as shown in help
	Name string
	// Args is the number of arguments captured by Pattern
	Args int
	// Pattern matches the command line, when nil Name is matched
	Pattern *regexp.Regexp
	// Syntax is the argument syntax, as shown in help
	Syntax string
	// Help is the command description
	Help string
	// Fn is the command handler
	Fn CmdFn
}

var cmds []*Cmd

// Banner is the console welcome banner.
var Banner string

// Protection domain state operated on by commands
var (
	// Target is the device memory map
	Target *mem.Target
	// Layout is the linker layout
	Layout *mem.Layout
	// Unit is the protection unit driver
	Unit *prot.Unit
	// Machine is the register model backing Unit, nil on hardware
	Machine *sim.Machine
)

// Add registers a console command.
func Add(cmd Cmd) {
	cmds = append(cmds, &cmd)

	sort.SliceStable(cmds, func(i, j int) bool {
		return cmds[i].Name < cmds[j].Name
	})
}

// Help returns the list of registered commands.
func Help(term *term.Terminal) string {
	var help bytes.Buffer

	t := tabwriter.NewWriter(&help, 16, 8, 0, '\t', tabwriter.TabIndent)

	for _, cmd := range cmds {
		_, _ = fmt.Fprintf(t, "%s\t%s\t # %s\n", cmd.Name, cmd.Syntax, cmd.Help)
	}

	_ = t.Flush()

	if term == nil {
		return help.String()
	}

	return string(term.Escape.Cyan) + help.String() + string(term.Escape.Reset)
}

func match(line string) (cmd *Cmd, arg []string) {
	for _, cmd = range cmds {
		if cmd.Pattern == nil {
			if cmd.Name == line {
				return
			}

			continue
		}

		if m := cmd.Pattern.FindStringSubmatch(line); len(m) == cmd.Args+1 {
			return cmd, m[1:]
		}
	}

	return nil, nil
}

// Handle executes a console command line, io.EOF is returned when the
// session should be closed.
func Handle(term *term.Terminal, line string) (err error) {
	if len(line) == 0 {
		return
	}

	cmd, arg := match(line)

	if cmd == nil {
		return errors.New("unknown command, type `help`")
	}

	res, err := cmd.Fn(term, arg)

	if len(res) > 0 && term != nil {
		fmt.Fprintln(term, res)
	}

	return
}

// Serve runs a console session on the argument terminal until it is closed.
func Serve(rw io.ReadWriter) {
	t := term.NewTerminal(rw, "")
	t.SetPrompt(string(t.Escape.Red) + "> " + string(t.Escape.Reset))

	fmt.Fprintf(t, "%s\n", Banner)
	fmt.Fprintf(t, "%s\n", Help(t))

	for {
		line, err := t.ReadLine()

		if err == io.EOF {
			break
		}

		if err != nil {
			log.Printf("readline error, %v", err)
			continue
		}

		if err = Handle(t, line); err == io.EOF {
			break
		}

		if err != nil {
			fmt.Fprintf(t, "error: %v\n", err)
		}
	}
}
