/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package internal

import (
	"errors"
	"fmt"
)

var invalidStr = "is not valid"

var ErrInvalidBins = errors.New(fmt.Sprintf("number of bins %s", invalidStr))
var ErrInvalidRange = errors.New(fmt.Sprintf("histogram range %s", invalidStr))
var ErrInvalidCount = errors.New(fmt.Sprintf("sample count %s", invalidStr))
var ErrEmptyInput = errors.New("input data is empty")

// ErrRejectionLimit is returned by rejection samplers when no candidate
// was accepted within the configured number of attempts.
var ErrRejectionLimit = errors.New("rejection sampler exceeded the maximum number of attempts")
