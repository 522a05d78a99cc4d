/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package mapper

import (
	"fmt"
	"strings"

	"google.golang.org/grpc/codes"

	"dirpx.dev/apperror/apis"
	"dirpx.dev/apperror/status"
)

// New constructs an immutable apis.Mapper snapshot.
//
// The resulting apis.Mapper is fully thread-safe and designed for long-lived reuse.
// Each build creates a self-contained mapper instance: no shared references
// to global state or user-provided structures remain.
//
// Build process overview:
//
//  1. Seed the builder with library defaults.
//  2. Apply user-provided options (defaults, overrides, class fallbacks).
//  3. Validate every status and code that was configured.
//  4. Freeze all maps into immutable copies (fresh allocations).
//
// Errors returned from this function indicate out-of-range statuses or codes.
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()

	// (1) Seed the builder with package-level defaults.
	for k, v := range defaultGRPC {
		b.grpcDefaults[k] = v
	}

	// (2) Apply user-supplied options.
	for _, opt := range opts {
		opt(b)
	}

	// (3) Validate.
	for _, rules := range []map[int]codes.Code{b.grpcDefaults, b.grpcOverride} {
		for s, c := range rules {
			if err := validateHTTPKey(s); err != nil {
				return nil, fmt.Errorf("mapper: invalid rule for status %d: %w", s, err)
			}
			if err := validateGRPC(c); err != nil {
				return nil, fmt.Errorf("mapper: invalid rule for status %d: %w", s, err)
			}
		}
	}
	for c, s := range b.httpOverride {
		if err := validateGRPC(c); err != nil {
			return nil, fmt.Errorf("mapper: invalid HTTP override: %w", err)
		}
		if err := validateHTTPValue(s); err != nil {
			return nil, fmt.Errorf("mapper: invalid HTTP override for %s: %w", c, err)
		}
	}
	for _, c := range []codes.Code{b.clientFallback, b.serverFallback} {
		if err := validateGRPC(c); err != nil {
			return nil, fmt.Errorf("mapper: invalid fallback: %w", err)
		}
	}

	// (4) Freeze everything into a read-only snapshot.
	m := &mapper{
		grpcDefault:  freezeGRPC(b.grpcDefaults),
		grpcOverride: freezeGRPC(b.grpcOverride),
		httpDefault:  freezeHTTP(defaultHTTP),
		httpOverride: freezeHTTP(b.httpOverride),

		clientFallback: b.clientFallback,
		serverFallback: b.serverFallback,
		fallbackGRPC:   b.fallbackGRPC,
		fallbackHTTP:   b.fallbackHTTP,
	}

	return m, nil
}

// MustNew is the panic-on-error variant of New, for package-level vars.
func MustNew(opts ...Option) apis.Mapper {
	m, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// mapper is an immutable mapper implementation that combines per-status
// defaults, per-status exact overrides and per-class fallbacks. Lookups are
// O(1) and safe for concurrent use once constructed.
type mapper struct {
	// grpcDefault holds the base gRPC code for a given HTTP status.
	grpcDefault map[int]codes.Code

	// grpcOverride holds explicit gRPC codes for specific statuses.
	// These take precedence over defaults.
	grpcOverride map[int]codes.Code

	// httpDefault holds the base HTTP status for a given gRPC code.
	httpDefault map[codes.Code]int

	// httpOverride holds explicit HTTP statuses for specific gRPC codes.
	httpOverride map[codes.Code]int

	// clientFallback / serverFallback are used for 4xx / 5xx statuses that
	// have no rule.
	clientFallback codes.Code
	serverFallback codes.Code

	// fallbackGRPC is used outside the 4xx/5xx classes. Typically codes.Unknown.
	fallbackGRPC codes.Code

	// fallbackHTTP is used for gRPC codes without a rule. Typically 500.
	fallbackHTTP int
}

// GRPCCode resolves a gRPC code for the given HTTP status.
//
// Resolution order (highest to lowest):
//  1. exact per-status override;
//  2. per-status default (library or user overridden);
//  3. class fallback (4xx / 5xx);
//  4. hardcoded ultimate fallback (codes.Unknown).
func (m *mapper) GRPCCode(httpStatus int) codes.Code {
	c, _ := m.resolveGRPC(httpStatus)
	return c
}

// HTTPStatus resolves an HTTP error status for the given gRPC code.
//
// Resolution order: exact override, library default, 500.
func (m *mapper) HTTPStatus(c codes.Code) int {
	if v, ok := m.httpOverride[c]; ok {
		return v
	}
	if v, ok := m.httpDefault[c]; ok {
		return v
	}
	return m.fallbackHTTP
}

// Status resolves both sides for an HTTP status.
func (m *mapper) Status(httpStatus int) apis.Status {
	return apis.Status{
		HTTP: httpStatus,
		GRPC: m.GRPCCode(httpStatus),
	}
}

// Explain produces a textual trace of how the mapper resolved the gRPC code
// for a particular HTTP status.
//
// This is primarily a diagnostic tool: it shows which tier matched
// (override, default, class or fallback).
//
// Example output:
//
//	status=503 phrase="Service Unavailable"
//	grpc: source=default -> UNAVAILABLE(14)
//
// The format is intended for inspection and logging, not for stable machine
// parsing.
func (m *mapper) Explain(httpStatus int) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "status=%d phrase=%q\n", httpStatus, status.Code(httpStatus).Text())

	c, src := m.resolveGRPC(httpStatus)
	_, _ = fmt.Fprintf(&b, "grpc: source=%s -> %s", src, grpcLabel(c))

	return b.String()
}

// resolveGRPC returns the resolved code and the tier that produced it.
func (m *mapper) resolveGRPC(httpStatus int) (codes.Code, string) {
	// 1) exact per-status override
	if v, ok := m.grpcOverride[httpStatus]; ok {
		return v, "override"
	}

	// 2) per-status default
	if v, ok := m.grpcDefault[httpStatus]; ok {
		return v, "default"
	}

	// 3) class fallback
	sc := status.Code(httpStatus)
	switch {
	case sc.IsClient():
		return m.clientFallback, "class"
	case sc.IsServer():
		return m.serverFallback, "class"
	}

	// 4) global fallback
	return m.fallbackGRPC, "fallback"
}

func upper(s string) string { return strings.ToUpper(s) }
