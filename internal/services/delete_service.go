// delete_service.go
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
	"context"
	"log"

	"github.com/localnerve/reviewdb/internal/blob"
	"github.com/localnerve/reviewdb/internal/store"
	"github.com/localnerve/reviewdb/internal/types"
	"gorm.io/gorm"
)

// DeleteBusiness removes the business and cascades to its reviews and photos
// in a single transaction: either the business and every dependent row go, or
// nothing does. Blob cleanup runs after commit and is best effort; the rows
// are the source of truth and an orphaned blob is only wasted space.
func DeleteBusiness(ctx context.Context, db *gorm.DB, photos blob.Store, id uint64) (types.Result, error) {
	var photoIDs []uint64
	found := false

	err := db.Transaction(func(tx *gorm.DB) error {
		ids, err := store.PhotoIDsByBusinessID(tx, id)
		if err != nil {
			return err
		}
		rows, err := store.DeleteBusinessByID(tx, id)
		if err != nil {
			return err
		}
		if rows == 0 {
			return nil
		}
		found = true
		photoIDs = ids
		if _, err := store.DeleteReviewsByBusinessID(tx, id); err != nil {
			return err
		}
		if _, err := store.DeletePhotosByBusinessID(tx, id); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return types.Result{}, err
	}
	if !found {
		return types.Failure("Business not found", types.LevelWarn, nil), nil
	}
	forgetBusinessPhotoLock(id)

	for _, photoID := range photoIDs {
		if err := photos.Delete(ctx, blob.PhotoKey(photoID)); err != nil {
			log.Printf("Failed to delete photo blob %d for business %d: %v", photoID, id, err)
		}
	}
	return types.Success("Business successfully deleted", nil), nil
}

// DeleteReview removes a single review. The author's account is untouched.
func DeleteReview(db *gorm.DB, id uint64) (types.Result, error) {
	rows, err := store.DeleteReviewByID(db, id)
	if err != nil {
		return types.Result{}, err
	}
	if rows == 0 {
		return types.Failure("Review not found", types.LevelWarn, nil), nil
	}
	return types.Success("Review successfully deleted", nil), nil
}
