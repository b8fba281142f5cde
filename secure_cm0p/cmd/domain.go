// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package cmd

import (
	"bytes"
	"fmt"
	"log"

	"golang.org/x/term"

	"github.com/usbarmory/GoTEE-psoc6/prot"
	"github.com/usbarmory/GoTEE-psoc6/secure_cm0p/internal"
)

func init() {
	Add(Cmd{
		Name: "init",
		Help: "configure and lock the protection units",
		Fn:   initCmd,
	})

	Add(Cmd{
		Name: "regions",
		Help: "show protection region descriptors",
		Fn:   regionsCmd,
	})

	Add(Cmd{
		Name: "ppu",
		Help: "show PPU structs guarding the protection units",
		Fn:   ppuCmd,
	})
}

func initCmd(_ *term.Terminal, _ []string) (res string, err error) {
	if Unit == nil || Target == nil || Layout == nil {
		return "", errNoDomain
	}

	if err = protunits.Init(Unit, Target, Layout); err != nil {
		return "", fmt.Errorf("protection unit initialization failed, %w", err)
	}

	log.Printf("SM protection units locked")

	return
}

func regionsCmd(_ *term.Terminal, _ []string) (res string, err error) {
	var buf bytes.Buffer

	if Target == nil || Layout == nil {
		return "", errNoDomain
	}

	regions, err := protunits.Regions(Target, Layout)

	if err != nil {
		return
	}

	for _, r := range regions {
		c := r.Config

		fmt.Fprintf(&buf, "SMPU:%.2d %-12s addr:%#.8x size:%-6s sub:%#.2x u:%s p:%s %-2s pc:%#.4x\n",
			r.Slot, r.Name, c.Address, c.RegionSize, c.Subregions,
			c.UserPermission, c.PrivPermission, secureString(c.Secure), uint16(c.PCMask))
	}

	return buf.String(), nil
}

func ppuEntry(buf *bytes.Buffer, name string, s prot.PPUState) {
	fmt.Fprintf(buf, "%-12s valid:%-5v", name, s.Valid)

	for pc := prot.PC(0); pc < prot.PCMax; pc++ {
		a := s.Attributes(pc)
		fmt.Fprintf(buf, " %d:%s/%s", pc, a.UserPermission, a.PrivPermission)
	}

	buf.WriteString("\n")
}

func ppuCmd(_ *term.Terminal, _ []string) (res string, err error) {
	var buf bytes.Buffer

	if Unit == nil || Target == nil {
		return "", errNoDomain
	}

	fx := prot.PPUFixedRGSMPU

	if Target.Peri == prot.PERI2 {
		fx = prot.PPUFixedSMPUMain
	}

	sl, err := Unit.PPUFixedSlave(fx)

	if err != nil {
		return
	}

	ms, err := Unit.PPUFixedMaster(fx)

	if err != nil {
		return
	}

	ppuEntry(&buf, fmt.Sprintf("FX:%.2d sl", fx), sl)
	ppuEntry(&buf, fmt.Sprintf("FX:%.2d ms", fx), ms)

	for i := 0; i < prot.PPUProgStructs; i++ {
		s, err := Unit.PPUProgMaster(i)

		if err != nil {
			return "", err
		}

		ppuEntry(&buf, fmt.Sprintf("PR:%.2d ms", i), s)
	}

	return buf.String(), nil
}
