// Copyright 2025 KrakLabs
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.
//
// For commercial licensing, contact: licensing@kraklabs.com
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package runner

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/kraklabs/stride/internal/contract"
)

// Kind selects the element type a range is driven with.
type Kind string

const (
	KindInt   Kind = "int"
	KindFloat Kind = "float"
)

// ParseKind accepts "int" or "float" (case-insensitive).
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindInt:
		return KindInt, nil
	case KindFloat:
		return KindFloat, nil
	default:
		return "", fmt.Errorf("unknown kind %q (want int or float)", s)
	}
}

// Value is a single range element of either kind.
type Value struct {
	kind Kind
	i    int
	f    float64
}

// IntValue wraps an int element.
func IntValue(v int) Value { return Value{kind: KindInt, i: v} }

// FloatValue wraps a float64 element.
func FloatValue(v float64) Value { return Value{kind: KindFloat, f: v} }

func (v Value) Kind() Kind { return v.kind }

// Int returns the value as an int, truncating floats.
func (v Value) Int() int {
	if v.kind == KindFloat {
		return int(v.f)
	}
	return v.i
}

// Float returns the value as a float64.
func (v Value) Float() float64 {
	if v.kind == KindFloat {
		return v.f
	}
	return float64(v.i)
}

func (v Value) String() string {
	if v.kind == KindFloat {
		return strconv.FormatFloat(v.f, 'g', contract.FloatFormatPrecision, 64)
	}
	return strconv.Itoa(v.i)
}

// MarshalJSON writes the value as a bare JSON number.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.kind == KindFloat {
		return json.Marshal(v.f)
	}
	return json.Marshal(v.i)
}

// MarshalYAML writes the value as a YAML scalar of its own kind.
func (v Value) MarshalYAML() (any, error) {
	if v.kind == KindFloat {
		return v.f, nil
	}
	return v.i, nil
}

func parseValue(kind Kind, s string) (Value, error) {
	s = strings.TrimSpace(s)
	if kind == KindFloat {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Value{}, err
		}
		return FloatValue(f), nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return Value{}, err
	}
	return IntValue(n), nil
}
