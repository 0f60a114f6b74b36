// Copyright 2024 The Djot Scanner Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

//go:build djotscan_debug

package djotscan

// debugAssertions is true when built with -tags djotscan_debug. Fatal
// invariant violations (spec.md §7 case 3) panic instead of degrading to
// ERROR, matching the teacher's direct-panic style for impossible states
// (see Block.close in the ancestor commonmark parser).
const debugAssertions = true
