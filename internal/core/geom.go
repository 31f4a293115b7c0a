// Package core provides fundamental types and utilities for the platformer.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "fmt"

// Vector is an immutable 2D point or displacement measured in tiles.
// Every operation returns a new value.
type Vector struct {
	X, Y float64
}

// Zero is the origin.
var Zero = Vector{}

// V creates a vector from its components.
func V(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// Plus returns the componentwise sum of v and other.
func (v Vector) Plus(other Vector) Vector {
	return Vector{X: v.X + other.X, Y: v.Y + other.Y}
}

// Times returns v scaled by factor on both axes.
func (v Vector) Times(factor float64) Vector {
	return Vector{X: v.X * factor, Y: v.Y * factor}
}

// String implements fmt.Stringer.
func (v Vector) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

// OrDefault dereferences v, falling back to def when v is nil.
// Optional vector arguments are passed as pointers; nil means absent.
func OrDefault(v *Vector, def Vector) Vector {
	if v == nil {
		return def
	}
	return *v
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
