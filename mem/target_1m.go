// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build psoc6_1m
// +build psoc6_1m

package mem

// DefaultTarget is a CY8C6347 part (1MB flash, 288KB SRAM).
var DefaultTarget = CY8C6347.Target

// DefaultLayout mirrors the CM0+/CM4 linker scripts for the part.
var DefaultLayout = CY8C6347.Layout
