// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package mem

import (
	"fmt"
	"sort"

	"github.com/usbarmory/GoTEE-psoc6/prot"
)

// Part associates a PSoC 6 part with the linker layout of its images.
type Part struct {
	Target Target
	Layout Layout
}

// CY8C624A is the part fitted on the CYSBSYSKIT-DEV-01 kit.
var CY8C624A = Part{
	Target: Target{
		Name:      "CYSBSYSKIT-DEV-01",
		FlashBase: FlashBase,
		FlashSize: 2 * MB,
		SRAMBase:  SRAMBase,
		SRAMSize:  1 * MB,
		Peri:      prot.PERI1,
	},
	Layout: Layout{
		// CM0+ secure image
		CM0PFlash: Region{0x10000000, 0x00040000}, // 256KB
		CM0PSRAM:  Region{0x08000000, 0x00020000}, // 128KB

		// CM4 application image
		CM4Flash: Region{0x10040000, 0x001c0000}, // 1.75MB
		CM4SRAM:  Region{0x08040000, 0x000bf800}, // 766KB

		// inter-processor communication
		SharedSRAM: Region{0x08020000, 0x00020000}, // 128KB
	},
}

// CY8C6347 is a 1MB flash, 288KB SRAM part.
var CY8C6347 = Part{
	Target: Target{
		Name:      "CY8C6347",
		FlashBase: FlashBase,
		FlashSize: 1 * MB,
		SRAMBase:  SRAMBase,
		SRAMSize:  288 * KB,
		Peri:      prot.PERI1,
	},
	Layout: Layout{
		CM0PFlash:  Region{0x10000000, 0x00020000}, // 128KB
		CM0PSRAM:   Region{0x08000000, 0x00008000}, // 32KB
		CM4Flash:   Region{0x10020000, 0x000e0000}, // 896KB
		CM4SRAM:    Region{0x08010000, 0x00037800}, // 222KB
		SharedSRAM: Region{0x08008000, 0x00008000}, // 32KB
	},
}

var parts = map[string]*Part{
	"2m": &CY8C624A,
	"1m": &CY8C6347,
}

// Lookup returns a copy of the part registered under the argument name
// ("2m", "1m").
func Lookup(name string) (p Part, err error) {
	part, ok := parts[name]

	if !ok {
		return p, fmt.Errorf("unknown target %q, supported: %v", name, Names())
	}

	return *part, nil
}

// Names returns the registered part names.
func Names() (names []string) {
	for name := range parts {
		names = append(names, name)
	}

	sort.Strings(names)

	return
}
