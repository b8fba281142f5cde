// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package prot

import (
	"errors"
	"fmt"
)

const (
	driverID    = 0x30 << 18
	statusError = 2 << 16
)

// Status is the result of a protection unit operation, it implements error
// for every value other than StatusSuccess.
type Status uint32

// Protection unit status codes
const (
	StatusSuccess      Status = 0
	StatusInvalidState Status = driverID | statusError | 0x01
	StatusUnavailable  Status = driverID | statusError | 0x02
	StatusBadParam     Status = driverID | statusError | 0x03
	StatusNotPermitted Status = driverID | statusError | 0x04
	StatusFailure      Status = driverID | statusError | 0x0f
)

var statusNames = map[Status]string{
	StatusSuccess:      "success",
	StatusInvalidState: "invalid state",
	StatusUnavailable:  "unavailable",
	StatusBadParam:     "bad parameter",
	StatusNotPermitted: "not permitted",
	StatusFailure:      "failure",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}

	return fmt.Sprintf("status %#x", uint32(s))
}

func (s Status) Error() string {
	return fmt.Sprintf("%s (%#.8x)", s.String(), uint32(s))
}

// StatusOf converts an error returned by a Driver back to its status code,
// nil maps to StatusSuccess and errors which do not carry a Status map to
// StatusFailure.
func StatusOf(err error) Status {
	if err == nil {
		return StatusSuccess
	}

	var s Status

	if errors.As(err, &s) {
		return s
	}

	return StatusFailure
}

// result converts a status code to the error returned by Driver methods.
func result(s Status) error {
	if s == StatusSuccess {
		return nil
	}

	return s
}
