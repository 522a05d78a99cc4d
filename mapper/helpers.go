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

	"github.com/samber/lo"
	"google.golang.org/grpc/codes"
)

// freezeGRPC makes an immutable copy of a status -> code map.
// Used when finalizing the mapper so later mutations to the builder
// (or caller-owned maps) cannot affect the mapper.
func freezeGRPC(src map[int]codes.Code) map[int]codes.Code {
	if len(src) == 0 {
		return nil
	}
	return lo.Assign(src)
}

// freezeHTTP makes an immutable copy of a code -> status map.
func freezeHTTP(src map[codes.Code]int) map[codes.Code]int {
	if len(src) == 0 {
		return nil
	}
	return lo.Assign(src)
}

// validateHTTPKey checks a status used as a rule key.
func validateHTTPKey(s int) error {
	if s < 100 || s > 599 {
		return fmt.Errorf("status %d out of range 100..599", s)
	}
	return nil
}

// validateHTTPValue checks a status produced by the reverse mapping: it must
// be usable to build an application error.
func validateHTTPValue(s int) error {
	if s < 400 || s > 599 {
		return fmt.Errorf("status %d is not an error status", s)
	}
	return nil
}

// validateGRPC checks that c is one of the canonical gRPC codes.
func validateGRPC(c codes.Code) error {
	if c > codes.Unauthenticated {
		return fmt.Errorf("unknown gRPC code %d", uint32(c))
	}
	return nil
}

// grpcLabel formats a code the way Explain prints it, e.g. NOTFOUND(5).
func grpcLabel(c codes.Code) string {
	return fmt.Sprintf("%s(%d)", upper(c.String()), int(c))
}
