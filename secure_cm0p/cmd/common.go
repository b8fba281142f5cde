// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package cmd

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"runtime/debug"

	"golang.org/x/term"
)

func init() {
	Add(Cmd{
		Name: "help",
		Help: "this help",
		Fn:   helpCmd,
	})

	Add(Cmd{
		Name:    "exit, quit",
		Args:    1,
		Pattern: regexp.MustCompile(`^(exit|quit)$`),
		Help:    "close session",
		Fn:      exitCmd,
	})

	Add(Cmd{
		Name: "info",
		Help: "device memory map and linker layout",
		Fn:   infoCmd,
	})

	Add(Cmd{
		Name: "stack",
		Help: "stack trace of current goroutine",
		Fn:   stackCmd,
	})
}

func helpCmd(term *term.Terminal, _ []string) (string, error) {
	return Help(term), nil
}

func exitCmd(_ *term.Terminal, _ []string) (string, error) {
	return "logout", io.EOF
}

func infoCmd(_ *term.Terminal, _ []string) (string, error) {
	var buf bytes.Buffer

	if Target == nil || Layout == nil {
		return "", errNoDomain
	}

	fmt.Fprintf(&buf, "target: %s (PERI v%d)\n", Target.Name, Target.Peri)
	fmt.Fprintf(&buf, "flash:  %#.8x %dKB\n", Target.FlashBase, Target.FlashSize>>10)
	fmt.Fprintf(&buf, "SRAM:   %#.8x %dKB\n", Target.SRAMBase, Target.SRAMSize>>10)

	fmt.Fprintf(&buf, "CM0+ flash:  %s\n", Layout.CM0PFlash)
	fmt.Fprintf(&buf, "CM0+ SRAM:   %s\n", Layout.CM0PSRAM)
	fmt.Fprintf(&buf, "shared SRAM: %s\n", Layout.SharedSRAM)
	fmt.Fprintf(&buf, "CM4 flash:   %s\n", Layout.CM4Flash)
	fmt.Fprintf(&buf, "CM4 SRAM:    %s", Layout.CM4SRAM)

	if Machine != nil {
		fmt.Fprintf(&buf, "\nemulated:  PERI v%d, initiator %s", Machine.Peri(), Machine.Initiator())
	}

	return buf.String(), nil
}

func stackCmd(_ *term.Terminal, _ []string) (string, error) {
	return string(debug.Stack()), nil
}
