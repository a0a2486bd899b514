// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package algebra

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument signals that a required collaborator (e.g. a ring, a
// coefficient or a substitution map) was absent.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrDomain signals that a structural rule was violated, such as a negative
// degree or an attempt to interpret a polynomial as something it is not.
var ErrDomain = errors.New("domain error")

// InvalidArgument constructs an error wrapping ErrInvalidArgument.
func InvalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// DomainError constructs an error wrapping ErrDomain.
func DomainError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrDomain, fmt.Sprintf(format, args...))
}
