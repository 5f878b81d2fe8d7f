// Package colormath converts colours between hex, RGB and HSL and derives harmony palettes.
//
// Every function is pure and safe for concurrent use. Invalid input fails with an
// *domain.OpError of kind invalid_format or out_of_range instead of producing garbage values.
package colormath
