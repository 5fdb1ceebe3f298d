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
	"fmt"

	"github.com/kraklabs/stride/internal/contract"
	"github.com/kraklabs/stride/internal/errors"
	"github.com/kraklabs/stride/pkg/ranges"
)

// Request is a range as typed by the user.
type Request struct {
	Kind  Kind
	Start string
	Stop  string
	Step  string
	// Limit caps the values produced; zero means contract.DefaultValueLimit.
	Limit uint64
}

// Plan is a parsed, checked Request ready to run.
type Plan struct {
	Kind  Kind
	Start Value
	Stop  Value
	Step  Value
	Limit uint64
}

// Parse converts a Request into a Plan. Malformed numbers and ranges that
// would never terminate come back as input errors.
func Parse(req Request) (*Plan, error) {
	if req.Kind == "" {
		req.Kind = KindInt
	}
	if _, err := ParseKind(string(req.Kind)); err != nil {
		return nil, errors.NewInputError("Invalid kind", err.Error(), "Use --kind int or --kind float")
	}

	plan := &Plan{Kind: req.Kind, Limit: req.Limit}
	if plan.Limit == 0 {
		plan.Limit = contract.DefaultValueLimit
	}

	for _, f := range []struct {
		name string
		raw  string
		dst  *Value
	}{
		{"start", req.Start, &plan.Start},
		{"stop", req.Stop, &plan.Stop},
		{"step", req.Step, &plan.Step},
	} {
		v, err := parseValue(req.Kind, f.raw)
		if err != nil {
			return nil, errors.NewInputError(
				fmt.Sprintf("Invalid %s", f.name),
				fmt.Sprintf("%q is not a valid %s number", f.raw, req.Kind),
				hintFor(req.Kind),
			)
		}
		*f.dst = v
	}

	var res *contract.ValidationResult
	if plan.Kind == KindFloat {
		res = contract.CheckBounds(plan.Start.Float(), plan.Stop.Float(), plan.Step.Float())
	} else {
		res = contract.CheckBounds(plan.Start.Int(), plan.Stop.Int(), plan.Step.Int())
	}
	if !res.OK {
		return nil, errors.NewInputError("Invalid range", res.Message, "Use a positive step and finite bounds")
	}

	return plan, nil
}

// Count reports how many values the plan yields when that is known up
// front (integer plans only).
func (p *Plan) Count() (uint64, bool) {
	if p.Kind != KindInt {
		return 0, false
	}
	return ranges.Count(p.Start.Int(), p.Stop.Int(), p.Step.Int())
}

func hintFor(kind Kind) string {
	if kind == KindFloat {
		return "Use decimal numbers such as 0.5 or -2e3"
	}
	return "Use whole numbers, or pass --kind float for decimals"
}
