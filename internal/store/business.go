// business.go
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

// Package store holds the durable CRUD primitives per entity kind. No business
// rules live here: existence checks, duplicate detection and cascades belong
// to the services layer. Row-level "was anything affected" information is
// always reported so callers can distinguish not-found from no-op.
package store

import (
	"github.com/localnerve/reviewdb/internal/models"
	"gorm.io/gorm"
)

// InsertBusiness inserts b and backfills its auto-assigned id.
func InsertBusiness(db *gorm.DB, b *models.Business) error {
	return db.Create(b).Error
}

// BusinessByID returns the business row or (nil, nil) when absent.
func BusinessByID(db *gorm.DB, id uint64) (*models.Business, error) {
	var b models.Business
	err := db.Where("id = ?", id).First(&b).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// BusinessByIdentity looks up a business by the (name, address, city, state,
// postalCode) tuple used for duplicate detection. Returns (nil, nil) when no
// exact match exists.
func BusinessByIdentity(db *gorm.DB, name, address, city, state, postalCode string) (*models.Business, error) {
	var b models.Business
	err := db.Where(
		"name = ? AND address = ? AND city = ? AND state = ? AND postal_code = ?",
		name, address, city, state, postalCode,
	).First(&b).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// BusinessesByIDs returns the business rows for the given id set, in id
// order. Unknown ids are simply absent from the result.
func BusinessesByIDs(db *gorm.DB, ids []uint64) ([]models.Business, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var rows []models.Business
	if err := db.Where("id IN ?", ids).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// AllBusinesses returns every business row in id order.
func AllBusinesses(db *gorm.DB) ([]models.Business, error) {
	var rows []models.Business
	if err := db.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// UpdateBusinessFields applies the given column set in a single update and
// reports the number of rows affected.
func UpdateBusinessFields(db *gorm.DB, id uint64, fields map[string]interface{}) (int64, error) {
	result := db.Model(&models.Business{}).Where("id = ?", id).Updates(fields)
	return result.RowsAffected, result.Error
}

// DeleteBusinessByID deletes the row and reports rows affected, so the caller
// can turn zero into a domain-level not-found.
func DeleteBusinessByID(db *gorm.DB, id uint64) (int64, error) {
	result := db.Where("id = ?", id).Delete(&models.Business{})
	return result.RowsAffected, result.Error
}
