// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/bitmark-inc/logger"
)

// channel for the last message before a panic
var log *logger.L

// Initialise - setup the panic log channel
func Initialise() error {
	if nil != log {
		return ErrAlreadyInitialised
	}
	log = logger.New("PANIC")
	if nil == log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush any data
func Finalise() {
	if nil != log {
		log.Flush()
	}
}

// Panicf - log the formatted message with the caller position, then
// panic with the message
//
// inside host calls the panic becomes ErrTrapped and the call is
// rolled back
func Panicf(format string, arguments ...interface{}) {
	message := fmt.Sprintf(format, arguments...)
	critical(message)
	panic(message)
}

// PanicIfError - Panicf for a failed operation, no-op for nil
func PanicIfError(operation string, err error) {
	if nil == err {
		return
	}
	message := fmt.Sprintf("%s failed with error: %v", operation, err)
	critical(message)
	panic(message)
}

// two frames up is the caller of Panicf / PanicIfError
func critical(message string) {
	if _, file, line, ok := runtime.Caller(2); ok {
		message = fmt.Sprintf("%s:%d: %s", filepath.Base(file), line, message)
	}
	if nil == log {
		fmt.Fprintf(os.Stderr, "*** %s\n", message)
		return
	}
	log.Critical(message)
	log.Flush()
}
