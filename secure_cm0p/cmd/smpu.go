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
	"strings"

	"golang.org/x/term"

	"github.com/usbarmory/GoTEE-psoc6/prot"
)

var errNoDomain = errors.New("protection unit not available")

func init() {
	Add(Cmd{
		Name: "smpu",
		Help: "show SMPU structs",
		Fn:   smpuCmd,
	})

	Add(Cmd{
		Name:    "smpu ",
		Args:    1,
		Pattern: regexp.MustCompile(`^smpu (\d+)$`),
		Syntax:  "<index>",
		Help:    "read SMPU struct",
		Fn:      smpuCmd,
	})

	Add(Cmd{
		Name:    "smpu  ",
		Args:    7,
		Pattern: regexp.MustCompile(`^smpu (\d+) ([[:xdigit:]]+) (\w+) ([[:xdigit:]]+) ([rwx-]+) ([rwx-]+) ([[:xdigit:]]+)$`),
		Syntax:  "<index> <hex addr> <size|hex bytes> <hex subregions> <user> <priv> <hex pc mask>",
		Help:    "write and enable SMPU region",
		Fn:      smpuWrite,
	})
}

// parseSize converts a region size, either a class name (e.g. "1MB",
// "256KB") or a hex byte count (e.g. "100000"), to its class.
func parseSize(s string) (prot.RegionSize, error) {
	for n := prot.Size256B; n <= prot.Size4GB; n++ {
		if strings.EqualFold(s, n.String()) {
			return n, nil
		}
	}

	size, err := strconv.ParseUint(s, 16, 64)

	if err != nil {
		return 0, fmt.Errorf("invalid region size %q", s)
	}

	return prot.SizeOf(size)
}

func secureString(secure bool) string {
	if secure {
		return "S"
	}

	return "NS"
}

func smpuEntry(buf *bytes.Buffer, n int) (err error) {
	slave, slaveEnabled, err := Unit.SMPUSlave(n)

	if err != nil {
		return
	}

	master, masterEnabled, err := Unit.SMPUMaster(n)

	if err != nil {
		return
	}

	fmt.Fprintf(buf, "SMPU:%.2d addr:%#.8x size:%-6s sub:%#.2x u:%s p:%s %-2s pc:%#.4x en:%v",
		n, slave.Address, slave.RegionSize, slave.Subregions,
		slave.UserPermission, slave.PrivPermission, secureString(slave.Secure),
		uint16(slave.PCMask), slaveEnabled)

	fmt.Fprintf(buf, " | ms u:%s p:%s %-2s pc:%#.4x en:%v\n",
		master.UserPermission, master.PrivPermission, secureString(master.Secure),
		uint16(master.PCMask), masterEnabled)

	return
}

func smpuCmd(_ *term.Terminal, arg []string) (res string, err error) {
	var buf bytes.Buffer

	if Unit == nil {
		return "", errNoDomain
	}

	if len(arg) == 0 {
		for i := 0; i < prot.SMPUStructs; i++ {
			if err = smpuEntry(&buf, i); err != nil {
				return
			}
		}

		return buf.String(), nil
	}

	i, err := strconv.ParseUint(arg[0], 10, 8)

	if err != nil {
		return "", fmt.Errorf("invalid index, %v", err)
	}

	if err = smpuEntry(&buf, int(i)); err != nil {
		return
	}

	return buf.String(), nil
}

func smpuWrite(_ *term.Terminal, arg []string) (res string, err error) {
	if Unit == nil {
		return "", errNoDomain
	}

	i, err := strconv.ParseUint(arg[0], 10, 8)

	if err != nil {
		return "", fmt.Errorf("invalid index, %v", err)
	}

	addr, err := strconv.ParseUint(arg[1], 16, 32)

	if err != nil {
		return "", fmt.Errorf("invalid address, %v", err)
	}

	size, err := parseSize(arg[2])

	if err != nil {
		return
	}

	sub, err := strconv.ParseUint(arg[3], 16, 8)

	if err != nil {
		return "", fmt.Errorf("invalid subregions, %v", err)
	}

	user, err := prot.ParsePermission(arg[4])

	if err != nil {
		return
	}

	priv, err := prot.ParsePermission(arg[5])

	if err != nil {
		return
	}

	mask, err := strconv.ParseUint(arg[6], 16, 16)

	if err != nil {
		return "", fmt.Errorf("invalid pc mask, %v", err)
	}

	cfg := &prot.SMPUConfig{
		Address:        uint32(addr),
		RegionSize:     size,
		Subregions:     uint8(sub),
		UserPermission: user,
		PrivPermission: priv,
		PCMask:         prot.PCMask(mask),
	}

	if err = Unit.ConfigSMPUSlave(int(i), cfg); err != nil {
		return
	}

	err = Unit.EnableSMPUSlave(int(i))

	return
}
