// business_service.go
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

package services

import (
	"github.com/localnerve/reviewdb/internal/models"
	"github.com/localnerve/reviewdb/internal/store"
	"github.com/localnerve/reviewdb/internal/types"
	"gorm.io/gorm"
)

// AddBusinessInput carries the creation fields for a business.
type AddBusinessInput struct {
	Name       string  `json:"name"`
	Type       *string `json:"type"`
	Address    string  `json:"address"`
	City       string  `json:"city"`
	State      string  `json:"state"`
	PostalCode string  `json:"postalCode"`
}

// coercedBusiness is a business row with purchased normalized to a strict
// boolean for response payloads. The embedded nullable column stays untouched
// in storage.
type coercedBusiness struct {
	models.Business
	Purchased bool `json:"purchased"`
}

// AddBusiness inserts a business unless an exact (name, address, city, state,
// postalCode) match already exists. On a duplicate, the conflicting row is
// returned as data so the client can display it.
func AddBusiness(db *gorm.DB, in AddBusinessInput) (types.Result, error) {
	found, err := store.BusinessByIdentity(db, in.Name, in.Address, in.City, in.State, in.PostalCode)
	if err != nil {
		return types.Result{}, err
	}
	if found != nil {
		return types.Failure(
			"Business with that information already exists",
			types.LevelWarn,
			coercedBusiness{Business: *found, Purchased: found.Purchased != nil && *found.Purchased},
		), nil
	}

	b := models.Business{
		Name:       in.Name,
		Type:       in.Type,
		Address:    in.Address,
		City:       in.City,
		State:      in.State,
		PostalCode: in.PostalCode,
	}
	if err := store.InsertBusiness(db, &b); err != nil {
		return types.Result{}, err
	}
	return types.Success("Business successfully added", coercedBusiness{Business: b, Purchased: false}), nil
}

// BusinessUpdates is the typed partial-update document for a business. Every
// field is tri-state: absent, explicit null, or a value.
type BusinessUpdates struct {
	Name       types.Optional[string] `json:"name"`
	Type       types.Optional[string] `json:"type"`
	Address    types.Optional[string] `json:"address"`
	City       types.Optional[string] `json:"city"`
	State      types.Optional[string] `json:"state"`
	PostalCode types.Optional[string] `json:"postalCode"`
	Purchased  types.Optional[bool]   `json:"purchased"`
}

func (u BusinessUpdates) diff(current *models.Business) map[string]interface{} {
	changes := make(map[string]interface{})
	diffString(changes, "name", u.Name, current.Name)
	diffStringPtr(changes, "type", u.Type, current.Type)
	diffString(changes, "address", u.Address, current.Address)
	diffString(changes, "city", u.City, current.City)
	diffString(changes, "state", u.State, current.State)
	diffString(changes, "postal_code", u.PostalCode, current.PostalCode)
	diffBoolPtr(changes, "purchased", u.Purchased, current.Purchased)
	return changes
}

// EditBusiness applies the subset of upd that actually differs from the
// stored row, in a single update. An empty diff is rejected, not ignored.
// The returned data is the re-read raw row: purchased is not coerced here.
//
// Two concurrent edits of the same row can both read the pre-change values
// and apply disjoint diffs independently (last write wins per field). That
// race is a documented limitation of the diff model, not something this
// function guards against.
func EditBusiness(db *gorm.DB, id uint64, upd BusinessUpdates) (types.Result, error) {
	current, err := store.BusinessByID(db, id)
	if err != nil {
		return types.Result{}, err
	}
	if current == nil {
		return types.Failure("Business not found", types.LevelWarn, nil), nil
	}

	changes := upd.diff(current)
	if len(changes) == 0 {
		return types.Failure(noNewDataMessage, types.LevelWarn, nil), nil
	}

	if _, err := store.UpdateBusinessFields(db, id, changes); err != nil {
		return types.Result{}, err
	}
	updated, err := store.BusinessByID(db, id)
	if err != nil {
		return types.Result{}, err
	}
	return types.Success("Business successfully updated", updated), nil
}
