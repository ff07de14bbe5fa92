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

package collisions

import "errors"

var (
	// ErrInvalidDate is returned for empty or malformed dates.
	ErrInvalidDate = errors.New("invalid date")
	// ErrInvalidRecord is returned when a field fails validation.
	ErrInvalidRecord = errors.New("invalid collision record")
	// ErrTooFewFields is returned when a CSV row is too short to hold a record.
	ErrTooFewFields = errors.New("too few fields")
)
