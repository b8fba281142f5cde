// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package prot

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSizeOf(t *testing.T) {
	for size, want := range map[uint64]RegionSize{
		256:       Size256B,
		128 << 10: Size128KB,
		256 << 10: Size256KB,
		1 << 20:   Size1MB,
		2 << 20:   Size2MB,
		4 << 30:   Size4GB,
	} {
		n, err := SizeOf(size)
		require.NoError(t, err, "%#x", size)
		assert.Equal(t, want, n, "%#x", size)
		assert.Equal(t, size, n.Bytes())
	}

	for _, size := range []uint64{0, 128, 288 << 10, 3 << 20, 8 << 30} {
		_, err := SizeOf(size)
		assert.ErrorIs(t, err, ErrRegionSize, "%#x", size)
	}
}

func TestRegionSize(t *testing.T) {
	assert.Equal(t, RegionSize(19), Size1MB)
	assert.Equal(t, uint64(128<<10), Size1MB.SubregionBytes())
	assert.Equal(t, "1MB", Size1MB.String())
	assert.Equal(t, "256B", Size256B.String())
	assert.Equal(t, "4GB", Size4GB.String())
	assert.False(t, RegionSize(6).Valid())
	assert.False(t, RegionSize(32).Valid())
}

func TestStatus(t *testing.T) {
	assert.Equal(t, Status(0xc20003), StatusBadParam)
	assert.Equal(t, Status(0xc2000f), StatusFailure)
	assert.Equal(t, "bad parameter (0x00c20003)", StatusBadParam.Error())
	assert.Equal(t, "not permitted (0x00c20004)", fmt.Sprintf("%v", StatusNotPermitted))
	assert.Equal(t, "SMPU struct 3: failure (0x00c2000f)", fmt.Errorf("SMPU struct 3: %w", StatusFailure).Error())
	assert.Equal(t, "status 0x1 (0x00000001)", Status(1).Error())

	assert.Equal(t, StatusSuccess, StatusOf(nil))
	assert.Equal(t, StatusNotPermitted, StatusOf(StatusNotPermitted))
	assert.Equal(t, StatusNotPermitted, StatusOf(fmt.Errorf("SMPU struct 3: %w", StatusNotPermitted)))
	assert.Equal(t, StatusFailure, StatusOf(errors.New("bus fault")))

	assert.NoError(t, result(StatusSuccess))
	assert.Equal(t, StatusUnavailable, result(StatusUnavailable))
}

func TestPermission(t *testing.T) {
	for s, want := range map[string]Permission{
		"":    PermDisabled,
		"-":   PermDisabled,
		"r":   PermR,
		"rw":  PermRW,
		"r-x": PermRX,
		"rwx": PermRWX,
	} {
		p, err := ParsePermission(s)
		require.NoError(t, err, s)
		assert.Equal(t, want, p, s)
	}

	_, err := ParsePermission("rwz")
	assert.Error(t, err)

	assert.Equal(t, "r-x", PermRX.String())
	assert.Equal(t, "---", PermDisabled.String())
	assert.False(t, Permission(0x10).Valid())
}

func TestParseMaster(t *testing.T) {
	for s, want := range map[string]Master{
		"cm0":    CM0,
		"CM0+":   CM0,
		"cm4":    CM4,
		"tc":     TC,
		"crypto": Crypto,
		"3":      DW1,
		"7":      Master(7),
	} {
		m, err := ParseMaster(s)
		require.NoError(t, err, s)
		assert.Equal(t, want, m, s)
	}

	for _, s := range []string{"16", "cm7", "-1"} {
		_, err := ParseMaster(s)
		assert.Error(t, err, s)
	}

	assert.Equal(t, "MS7", Master(7).String())
}

func TestPCMask(t *testing.T) {
	assert.Equal(t, PCMask(0x7f), DevicePCMask)
	assert.Equal(t, PCMask(0x7f80), PCLimitMask)
	assert.Equal(t, PCMask4, MaskOf(4))
	assert.Zero(t, MaskOf(0))

	m := PCMask1 | PCMask4

	assert.True(t, m.Has(0))
	assert.True(t, m.Has(1))
	assert.True(t, m.Has(4))
	assert.False(t, m.Has(2))
}
