// susen.go - a web-based Sudoku game and teaching tool.
// Copyright (C) 2015 Daniel C. Brotsky.
//
// This program is free software; you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation; either version 2 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License along
// with this program; if not, write to the Free Software Foundation, Inc.,
// 51 Franklin Street, Fifth Floor, Boston, MA 02110-1301 USA.
// Licensed under the LGPL v3.  See the LICENSE file for details

package slant

import (
	"fmt"
)

/*

Errors

*/

// An Error describes a problem with a board or a requested
// operation.  It can produce an error message in English, but its
// main function is to tell a caller "this thing failed to meet this
// condition" along with supplemental details about the thing and the
// condition, the same way puzzle.Error does for the Sudoku package
// this one is modeled on.
type Error struct {
	Scope     ErrorScope     `json:"scope"`
	Structure ErrorStructure `json:"structure,omitempty"`
	Condition ErrorCondition `json:"condition,omitempty"`
	Attribute ErrorAttribute `json:"attribute,omitempty"`
	Values    ErrorData      `json:"values,omitempty"`
	Message   string         `json:"message,omitempty"`
}

// An ErrorScope explains what part of the solver the error concerns.
type ErrorScope int

// Constants for the various error scopes.
const (
	UnknownScope ErrorScope = iota
	GivensScope
	BoardScope
	RuleScope
	InternalScope
	MaxScope
)

// The ErrorStructure denotes whether the problem is in the overall
// Scope, an Attribute of the Scope, or the value of an Attribute.
type ErrorStructure int

// Constants for the various structure codes.
const (
	UnknownStructure ErrorStructure = iota
	ScopeStructure
	AttributeStructure
	AttributeValueStructure
	MaxStructure
)

// The ErrorCondition is the predicate that the scope/attribute/value
// failed to satisfy.
type ErrorCondition int

// Constants for the various error conditions.
const (
	UnknownCondition ErrorCondition = iota
	GeneralCondition
	WrongVertexCountCondition
	InvalidCharacterCondition
	LoopWouldFormCondition
	ClueOvershootCondition
	AlreadyAssignedCondition
	NotUnknownCondition
	MaxCondition
)

// An ErrorAttribute names the attribute that has a problem.
type ErrorAttribute int

// Constants for the various attribute codes.
const (
	UnknownAttribute ErrorAttribute = iota
	GivensStringAttribute
	DimensionsAttribute
	VertexCountAttribute
	CellAttribute
	ValueAttribute
	VertexAttribute
	MaxTierAttribute
	MaxAttribute
)

// ErrorData provides details about the thing that failed to meet the
// predicate, and about the predicate itself.
type ErrorData []interface{}

// Error returns an error string from an Error.  If the Error has a
// pre-canned message, this uses it; otherwise it produces an English
// message from the structured fields.
func (e Error) Error() string {
	es := e.Message
	if len(es) > 0 {
		return es
	}
	values := e.Values
	nextVal := func() interface{} {
		if len(values) == 0 {
			return "<unknown>"
		}
		val := values[0]
		values = values[1:]
		return val
	}
	switch e.Scope {
	case GivensScope:
		es = "Invalid givens: "
	case BoardScope:
		es = "Invalid board operation: "
	case RuleScope:
		es = fmt.Sprintf("Problem applying rule %v: ", nextVal())
	case InternalScope:
		es = "Internal logic error: "
	default:
		es = "Unknown error: "
	}
	if e.Structure == AttributeStructure || e.Structure == AttributeValueStructure {
		switch e.Attribute {
		case GivensStringAttribute:
			es += "Givens string"
		case DimensionsAttribute:
			es += "Board dimensions"
		case VertexCountAttribute:
			es += "Vertex count"
		case CellAttribute:
			es += "Cell"
		case ValueAttribute:
			es += "Value"
		case VertexAttribute:
			es += "Vertex"
		case MaxTierAttribute:
			es += "Maximum rule tier"
		default:
			es += "<Unknown attribute>"
		}
		if e.Structure == AttributeValueStructure {
			es += fmt.Sprintf(" (%v)", nextVal())
		}
		es += ": "
	}
	switch e.Condition {
	case GeneralCondition:
		es += fmt.Sprint(nextVal())
	case WrongVertexCountCondition:
		es += fmt.Sprintf("Decoded to %v vertices, expected %v", nextVal(), nextVal())
	case InvalidCharacterCondition:
		es += fmt.Sprintf("Unrecognized character %v in givens string", nextVal())
	case LoopWouldFormCondition:
		es += fmt.Sprintf("Placing %v at %v would close a loop", nextVal(), nextVal())
	case ClueOvershootCondition:
		es += fmt.Sprintf("Vertex %v already has its full count of %v diagonals", nextVal(), nextVal())
	case AlreadyAssignedCondition:
		es += fmt.Sprintf("Cell %v is already assigned value %v", nextVal(), nextVal())
	case NotUnknownCondition:
		es += fmt.Sprintf("Cell %v is not Unknown", nextVal())
	default:
		es += fmt.Sprintf("Supplemental data is %v", values)
	}
	return es
}
