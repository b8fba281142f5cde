// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build !psoc6_1m
// +build !psoc6_1m

package mem

// DefaultTarget is the CYSBSYSKIT-DEV-01 kit (CY8C624ABZI, 2MB flash, 1MB
// SRAM).
var DefaultTarget = CY8C624A.Target

// DefaultLayout mirrors the CM0+/CM4 linker scripts of the kit.
var DefaultLayout = CY8C624A.Layout
