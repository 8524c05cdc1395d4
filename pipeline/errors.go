// SPDX-License-Identifier: MIT

package pipeline

import "errors"

// NonCrystallineInput signals that the reduced graph has no single
// 3D-periodic component, or more than one.
var NonCrystallineInput = errors.New("pipeline: input has no single 3D-periodic component")
