// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	// ErrRequestFailure wraps every failed call: transport errors and
	// undecodable response bodies.
	ErrRequestFailure = errors.New("request failure")

	// ErrUnexpectedBody is joined to ErrRequestFailure when the response
	// body is not the JSON the endpoint should return.
	ErrUnexpectedBody = errors.New("unexpected response body")
)

// Status sentinels, only produced when the adapter runs with StrictStatus.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
)
