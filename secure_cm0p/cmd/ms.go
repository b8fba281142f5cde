// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"golang.org/x/term"

	"github.com/usbarmory/GoTEE-psoc6/prot"
)

var busMasters = []prot.Master{
	prot.CM0,
	prot.Crypto,
	prot.DW0,
	prot.DW1,
	prot.CM4,
	prot.TC,
}

func init() {
	Add(Cmd{
		Name: "ms",
		Help: "show bus master settings and active PC",
		Fn:   msCmd,
	})

	Add(Cmd{
		Name:    "pc",
		Args:    2,
		Pattern: regexp.MustCompile(`^pc (\S+) (\d+)$`),
		Syntax:  "<master> <pc>",
		Help:    "set bus master active PC",
		Fn:      pcCmd,
	})

	Add(Cmd{
		Name:    "as",
		Args:    1,
		Pattern: regexp.MustCompile(`^as (\S+)$`),
		Syntax:  "<master>",
		Help:    "perform accesses as bus master (emulator only)",
		Fn:      asCmd,
	})

	Add(Cmd{
		Name: "reset",
		Help: "restore power-on protection unit state (emulator only)",
		Fn:   resetCmd,
	})
}

var errHardware = errors.New("unsupported on hardware")

func msCmd(_ *term.Terminal, _ []string) (res string, err error) {
	var buf bytes.Buffer

	if Unit == nil {
		return "", errNoDomain
	}

	for _, m := range busMasters {
		privileged, secure, pcMask, err := Unit.BusMaster(m)

		if err != nil {
			return "", err
		}

		pc, err := Unit.ActivePC(m)

		if err != nil {
			return "", err
		}

		fmt.Fprintf(&buf, "%-6s P:%v %-2s pc mask:%#.4x active pc:%d\n",
			m, privileged, secureString(secure), uint16(pcMask), pc)
	}

	return buf.String(), nil
}

func pcCmd(_ *term.Terminal, arg []string) (res string, err error) {
	if Unit == nil {
		return "", errNoDomain
	}

	m, err := prot.ParseMaster(arg[0])

	if err != nil {
		return
	}

	pc, err := strconv.ParseUint(arg[1], 10, 8)

	if err != nil {
		return "", fmt.Errorf("invalid pc, %v", err)
	}

	err = Unit.SetActivePC(m, prot.PC(pc))

	return
}

func asCmd(_ *term.Terminal, arg []string) (res string, err error) {
	if Machine == nil {
		return "", errHardware
	}

	m, err := prot.ParseMaster(arg[0])

	if err != nil {
		return
	}

	Machine.SetInitiator(m)

	return fmt.Sprintf("accessing protection units as %s", m), nil
}

func resetCmd(_ *term.Terminal, _ []string) (res string, err error) {
	if Machine == nil {
		return "", errHardware
	}

	Machine.Reset()

	return fmt.Sprintf("protection units reset (PERI v%d)", Machine.Peri()), nil
}
