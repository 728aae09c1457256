// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package variant provides the tagged value type stored in the value
// columns of tree nodes. Every [Value] carries an explicit [Kind]
// discriminant, which renderers and editors dispatch on.
package variant

import (
	"fmt"
	"reflect"
	"slices"
	"strconv"
)

// Kind is the discriminant of a [Value].
type Kind int32

const (
	// Null is the absent value, rendered as an empty label.
	Null Kind = iota

	// Bool is a boolean value, rendered as a check box.
	Bool

	// Number is a float64 value.
	Number

	// String is a text value.
	String

	// List is a list of strings with one selected element.
	List

	// KindsN is the number of kinds.
	KindsN
)

var kindNames = [...]string{"Null", "Bool", "Number", "String", "List"}

func (k Kind) String() string {
	if k < 0 || k >= KindsN {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// EmptyListText is the display text of a list without elements.
const EmptyListText = "Empty list"

// Value is an immutable tagged value. The zero value is a [Null] value.
type Value struct {
	kind     Kind
	b        bool
	num      float64
	str      string
	items    []string
	selected int
}

// NullValue returns the [Null] value.
func NullValue() Value {
	return Value{}
}

// BoolOf returns a [Bool] value.
func BoolOf(b bool) Value {
	return Value{kind: Bool, b: b}
}

// NumberOf returns a [Number] value.
func NumberOf(f float64) Value {
	return Value{kind: Number, num: f}
}

// StringOf returns a [String] value.
func StringOf(s string) Value {
	return Value{kind: String, str: s}
}

// ListOf returns a [List] value holding a copy of the given items,
// with the first element selected.
func ListOf(items ...string) Value {
	return Value{kind: List, items: slices.Clone(items)}
}

// Of converts the given host value into a [Value]. It handles nil,
// bool, every integer and float kind, string, []string, and []any;
// any other value becomes a [String] holding its [fmt.Sprint] text.
func Of(v any) Value {
	switch x := v.(type) {
	case nil:
		return Value{}
	case Value:
		return x
	case bool:
		return BoolOf(x)
	case string:
		return StringOf(x)
	case []string:
		return ListOf(x...)
	case []any:
		items := make([]string, len(x))
		for i, it := range x {
			items[i] = fmt.Sprint(it)
		}
		return ListOf(items...)
	case fmt.Stringer:
		return StringOf(x.String())
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return NumberOf(float64(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return NumberOf(float64(rv.Uint()))
	case reflect.Float32, reflect.Float64:
		return NumberOf(rv.Float())
	}
	return StringOf(fmt.Sprint(v))
}

// Values converts each of the given host values with [Of].
func Values(vs ...any) []Value {
	res := make([]Value, len(vs))
	for i, v := range vs {
		res[i] = Of(v)
	}
	return res
}

// Kind returns the discriminant of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull returns whether the value is [Null].
func (v Value) IsNull() bool {
	return v.kind == Null
}

// Bool returns the boolean payload; it is false for other kinds.
func (v Value) Bool() bool {
	return v.kind == Bool && v.b
}

// Number returns the numeric payload; it is 0 for other kinds.
func (v Value) Number() float64 {
	if v.kind != Number {
		return 0
	}
	return v.num
}

// Str returns the string payload; it is "" for other kinds.
func (v Value) Str() string {
	if v.kind != String {
		return ""
	}
	return v.str
}

// Items returns a copy of the list elements; it is nil for other kinds.
func (v Value) Items() []string {
	if v.kind != List {
		return nil
	}
	return slices.Clone(v.items)
}

// Len returns the number of list elements.
func (v Value) Len() int {
	if v.kind != List {
		return 0
	}
	return len(v.items)
}

// Selected returns the selected list index, which defaults to 0.
func (v Value) Selected() int {
	return v.selected
}

// WithSelected returns a copy of the list with element j selected.
// It returns the value unchanged and false if v is not a list or
// j is out of range.
func (v Value) WithSelected(j int) (Value, bool) {
	if v.kind != List || j < 0 || j >= len(v.items) {
		return v, false
	}
	v.items = slices.Clone(v.items)
	v.selected = j
	return v, true
}

// IndexOf returns the index of s in the list, or -1.
func (v Value) IndexOf(s string) int {
	if v.kind != List {
		return -1
	}
	return slices.Index(v.items, s)
}

// WithItem returns a copy of the list with s appended if it is not
// already present, and then selected. A non-list value is returned
// unchanged.
func (v Value) WithItem(s string) Value {
	if v.kind != List {
		return v
	}
	idx := v.IndexOf(s)
	v.items = slices.Clone(v.items)
	if idx < 0 {
		v.items = append(v.items, s)
		idx = len(v.items) - 1
	}
	v.selected = idx
	return v
}

// Text returns the display text of the value. Lists display their
// selected element, or [EmptyListText] when they have none.
func (v Value) Text() string {
	switch v.kind {
	case Bool:
		return strconv.FormatBool(v.b)
	case Number:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case String:
		return v.str
	case List:
		if len(v.items) == 0 {
			return EmptyListText
		}
		if v.selected < 0 || v.selected >= len(v.items) {
			return v.items[0]
		}
		return v.items[v.selected]
	}
	return ""
}

// String implements [fmt.Stringer] with the kind and display text.
func (v Value) String() string {
	return v.kind.String() + "(" + v.Text() + ")"
}

// Equal returns whether the two values have the same kind and payload,
// including the list selection.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case Bool:
		return v.b == o.b
	case Number:
		return v.num == o.num
	case String:
		return v.str == o.str
	case List:
		return v.selected == o.selected && slices.Equal(v.items, o.items)
	}
	return true
}
