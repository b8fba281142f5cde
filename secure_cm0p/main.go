// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tinygo
// +build tinygo

// The CM0+ secure image configures the protection units to isolate itself
// from the CM4 application image, then boots the CM4.
package main

import (
	"device/arm"
	"log"
	"os"
	"runtime"

	"github.com/usbarmory/GoTEE-psoc6/mem"
	"github.com/usbarmory/GoTEE-psoc6/prot"
	"github.com/usbarmory/GoTEE-psoc6/secure_cm0p/internal"
)

func init() {
	log.SetFlags(log.Ltime)
	log.SetOutput(os.Stdout)

	log.Printf("%s/%s (%s) • PSoC 6 CM0+ secure image", runtime.GOOS, runtime.GOARCH, runtime.Version())
}

func halt() {
	for {
		arm.Asm("wfi")
	}
}

func main() {
	target := &mem.DefaultTarget
	layout := linkerLayout()

	log.Printf("SM configuring protection units (%s, CM4 flash %s, CM4 SRAM %s)", target.Name, layout.CM4Flash, layout.CM4SRAM)

	if err := protunits.Init(prot.NewUnit(prot.MMIO{}), target, layout); err != nil {
		// the CM4 is never released from reset
		log.Printf("SM protection unit initialization failed, %v", err)
		halt()
	}

	log.Printf("SM protection units locked, booting CM4")
	bootCM4(layout.CM4Flash.Start)

	halt()
}
