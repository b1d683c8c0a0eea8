// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package parser

import (
	"errors"
	"fmt"
)

var (
	// ErrUnboundAction marks a leaf that was reached during resolution, or
	// found by Validate, without an action bound to it.
	ErrUnboundAction = errors.New("no action bound")

	// ErrTreeFrozen is raised when the tree is modified after the first parse.
	ErrTreeFrozen = errors.New("command tree is frozen")
)

// UnboundActionError is the panic value raised when resolution reaches a leaf
// without an action. It is a mistake in how the tree was built, never a
// user input error.
type UnboundActionError struct {
	Command string
}

func (e *UnboundActionError) Error() string {
	return fmt.Sprintf("command %q: %v", e.Command, ErrUnboundAction)
}

func (e *UnboundActionError) Unwrap() error { return ErrUnboundAction }
