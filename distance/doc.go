// Package distance converts decimal-mile values into the integer distance
// unit used everywhere else in raildesign: one-thousandth of a mile.
//
// Overview:
//
//   - Parse("12.345") == 12345. The scaled value must be integral; a value
//     such as "1.0005" has more precision than the unit can hold and fails
//     with ErrExcessPrecision instead of being truncated.
//   - Format renders a scaled distance back as a three-decimal mile string.
//
// Keeping every distance an int64 means path costs are summed and compared
// exactly, so two routes of equal length always tie.
//
// Errors (sentinel):
//
//   - ErrMalformed        the input is not a decimal number.
//   - ErrExcessPrecision  the input has a non-zero remainder after scaling
//     (returned as *ExcessPrecisionError).
//   - ErrOutOfRange       the scaled value does not fit in an int64.
package distance
