// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexander Avdonin

package http

import "errors"

// Sentinel errors used by the authentication middleware when extracting a
// token from the request. Callers can match against them with [errors.Is].
var (
	// ErrNoTokenProvided is returned when neither the token cookie nor the
	// "Authorization" header carries a token.
	ErrNoTokenProvided = errors.New("no token provided")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but cannot be split into at least two space-separated
	// parts (i.e. the token value is missing entirely).
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// expected scheme prefix but the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)
