// SPDX-License-Identifier: MIT

package field

import "errors"

// ErrDivisionByZero is returned by Div when the divisor is the zero element.
var ErrDivisionByZero = errors.New("field: division by zero")

// panicIncompatible is the panic message for operands of different fields.
const panicIncompatible = "field: incompatible field elements"

// panicInverseOfZero is the panic message for Inv on the zero element.
const panicInverseOfZero = "field: zero element is not invertible"
