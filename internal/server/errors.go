// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	ErrNoHTTPHandler   = errors.New("http handler is not configured")
	ErrEmptyAddress    = errors.New("server address is empty")
	ErrShutdownTimeout = errors.New("in-flight requests did not finish before shutdown timeout")
)
