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

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// recordValidate is shared by all record constructors.
var recordValidate *validator.Validate

func init() {
	recordValidate = validator.New()
}

// recordInput mirrors the identity fields of a Record for tag validation.
type recordInput struct {
	Zip    string `validate:"len=5,number"`
	Key    string `validate:"required,number"`
	Counts Counts
}

func validateRecord(zip string, date Date, key string, counts Counts) error {
	if date.IsZero() {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, ErrInvalidDate)
	}

	err := recordValidate.Struct(recordInput{Zip: zip, Key: key, Counts: counts})
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, fmt.Sprintf("%s=%q fails %s", fe.Field(), fmt.Sprint(fe.Value()), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidRecord, strings.Join(problems, ", "))
}
