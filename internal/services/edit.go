package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/localnerve/reviewdb/internal/types"
	"gorm.io/gorm"
)

// EntityKind is the closed set of entity kinds the generic edit operation
// accepts. Unknown kinds are rejected before any row is touched.
type EntityKind string

const (
	KindBusiness EntityKind = "business"
	KindReview   EntityKind = "review"
)

// noNewDataMessage is the deliberate no-op rejection: an edit whose computed
// diff is empty performs zero writes and reports this, it is never silently
// ignored.
const noNewDataMessage = "None of the provided updates contained new data"

// EditEntity dispatches a raw partial-update document to the typed edit
// operation for the given kind.
func EditEntity(db *gorm.DB, kind EntityKind, id uint64, raw []byte) (types.Result, error) {
	switch EntityKind(strings.ToLower(string(kind))) {
	case KindBusiness:
		var upd BusinessUpdates
		if err := json.Unmarshal(raw, &upd); err != nil {
			return types.Failure("Invalid input", types.LevelError, nil), nil
		}
		return EditBusiness(db, id, upd)
	case KindReview:
		var upd ReviewUpdates
		if err := json.Unmarshal(raw, &upd); err != nil {
			return types.Failure("Invalid input", types.LevelError, nil), nil
		}
		return EditReview(db, id, upd)
	default:
		return types.Failure(fmt.Sprintf("Unknown entity kind '%s'", kind), types.LevelError, nil), nil
	}
}

// The diff helpers compare a tri-state update field against the stored value
// and record a column change only under strict inequality. An explicit null
// is a legitimate new value distinct from "not provided".

func diffString(changes map[string]interface{}, column string, upd types.Optional[string], current string) {
	if !upd.Present() {
		return
	}
	if v, ok := upd.Value(); ok {
		if v != current {
			changes[column] = v
		}
		return
	}
	// Explicit null always differs from a non-nullable stored string; whether
	// the column accepts it is the storage layer's call.
	changes[column] = nil
}

func diffStringPtr(changes map[string]interface{}, column string, upd types.Optional[string], current *string) {
	if !upd.Present() {
		return
	}
	if v, ok := upd.Value(); ok {
		if current == nil || *current != v {
			changes[column] = v
		}
		return
	}
	if current != nil {
		changes[column] = nil
	}
}

func diffBoolPtr(changes map[string]interface{}, column string, upd types.Optional[bool], current *bool) {
	if !upd.Present() {
		return
	}
	if v, ok := upd.Value(); ok {
		if current == nil || *current != v {
			changes[column] = v
		}
		return
	}
	if current != nil {
		changes[column] = nil
	}
}

func diffInt(changes map[string]interface{}, column string, upd types.Optional[int], current int) {
	if !upd.Present() {
		return
	}
	if v, ok := upd.Value(); ok {
		if v != current {
			changes[column] = v
		}
		return
	}
	changes[column] = nil
}
