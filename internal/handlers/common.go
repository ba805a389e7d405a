// common.go
//
// A scalable, high performance drop-in replacement for the biz-review nodejs server
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of reviewdb.
// reviewdb is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// reviewdb is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with reviewdb.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package handlers

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/reviewdb/internal/types"
)

// Field bounds enforced on request bodies. Lengths count runes, not bytes.
const (
	nameMin, nameMax             = 4, 200
	typeMin, typeMax             = 5, 25
	addressMin, addressMax       = 4, 50
	cityMin, cityMax             = 3, 100
	stateMin, stateMax           = 2, 25
	postalCodeMin, postalCodeMax = 3, 11
	scoreMin, scoreMax           = 0, 10
	textMin, textMax             = 25, 300
	usernameMin, usernameMax     = 3, 40
	passwordMin, passwordMax     = 8, 72 // bcrypt ignores bytes past 72
	captionMax                   = 200
)

func invalidLengthMessage(field string, min, max int) string {
	return fmt.Sprintf("%s must be between %d and %d characters", field, min, max)
}

func invalidRangeMessage(field string, min, max int) string {
	return fmt.Sprintf("%s must be an integer between %d and %d", field, min, max)
}

func checkLength(errs []string, field, value string, min, max int) []string {
	if n := utf8.RuneCountInString(value); n < min || n > max {
		errs = append(errs, invalidLengthMessage(field, min, max))
	}
	return errs
}

func checkLengthPtr(errs []string, field string, value *string, min, max int) []string {
	if value == nil {
		return errs
	}
	return checkLength(errs, field, *value, min, max)
}

func checkRange(errs []string, field string, value, min, max int) []string {
	if value < min || value > max {
		errs = append(errs, invalidRangeMessage(field, min, max))
	}
	return errs
}

// checkOptional validates a tri-state update field: bounds apply only when a
// concrete value was provided. Explicit null passes; nullability is checked
// separately.
func checkOptional(errs []string, field string, value types.Optional[string], min, max int) []string {
	if v, ok := value.Value(); ok {
		return checkLength(errs, field, v, min, max)
	}
	return errs
}

func checkOptionalRange(errs []string, field string, value types.Optional[int], min, max int) []string {
	if v, ok := value.Value(); ok {
		return checkRange(errs, field, v, min, max)
	}
	return errs
}

// checkNotNull rejects an explicit null on a field whose column cannot hold
// one.
func checkNotNull(errs []string, field string, present, null bool) []string {
	if present && null {
		errs = append(errs, fmt.Sprintf("%s cannot be null", field))
	}
	return errs
}

// parseID extracts a positive integer route parameter.
func parseID(c *fiber.Ctx, name string) (uint64, error) {
	return strconv.ParseUint(c.Params(name), 10, 64)
}

// parseIDFilter extracts entity ids from query parameters, supporting both
// multiple 'ids' keys and comma-separated values.
func parseIDFilter(c *fiber.Ctx) []uint64 {
	idSet := make(map[uint64]struct{})
	ids := make([]uint64, 0)

	args := c.Context().QueryArgs()
	for key, value := range args.All() {
		if string(key) == "ids" {
			// Split by comma in case the value itself is comma-separated
			vals := strings.Split(string(value), ",")
			for _, v := range vals {
				v = strings.TrimSpace(v)
				if v == "" {
					continue
				}
				id, err := strconv.ParseUint(v, 10, 64)
				if err != nil {
					continue
				}
				if _, seen := idSet[id]; !seen {
					idSet[id] = struct{}{}
					ids = append(ids, id)
				}
			}
		}
	}

	if len(ids) == 0 {
		return nil
	}
	return ids
}
