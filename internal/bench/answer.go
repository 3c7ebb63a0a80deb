package bench

import (
	"encoding/json"
	"strconv"
)

type answerKind uint8

const (
	answerNone answerKind = iota
	answerInt
	answerString
)

// Answer is a solver result: an integer, a string, or nothing.
type Answer struct {
	kind answerKind
	num  int64
	str  string
}

// NoAnswer is the zero Answer.
var NoAnswer = Answer{}

func Int(n int64) Answer {
	return Answer{kind: answerInt, num: n}
}

func Str(s string) Answer {
	return Answer{kind: answerString, str: s}
}

// IsNone reports whether the solver produced no result.
func (a Answer) IsNone() bool {
	return a.kind == answerNone
}

// Int returns the integer value, if a holds one.
func (a Answer) Int() (int64, bool) {
	return a.num, a.kind == answerInt
}

func (a Answer) String() string {
	switch a.kind {
	case answerInt:
		return strconv.FormatInt(a.num, 10)
	case answerString:
		return a.str
	default:
		return "None"
	}
}

// Value returns the answer as a plain Go value (int64, string or nil).
func (a Answer) Value() any {
	switch a.kind {
	case answerInt:
		return a.num
	case answerString:
		return a.str
	default:
		return nil
	}
}

func (a Answer) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Value())
}

func (a Answer) MarshalYAML() (any, error) {
	return a.Value(), nil
}
