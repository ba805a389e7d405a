// assemble.go
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

// Package graph turns flat entity rows into the cross-linked, cyclic object
// graph the API serves: businesses embed their reviews and photos, reviews
// point back at their business and author, users carry their own reviews.
// The graph is a transient projection rebuilt fresh on every read; it is
// never cached or mutated across requests. JSON back-references are elided to
// keep the wire format acyclic while the in-memory graph stays fully linked.
package graph

import (
	"github.com/localnerve/reviewdb/internal/models"
	"github.com/localnerve/reviewdb/internal/store"
	"gorm.io/gorm"
)

// Business is an assembled business with its reviews and photos attached.
// Purchased is normalized to a strict boolean here (NULL reads as false).
type Business struct {
	ID         uint64    `json:"id"`
	Name       string    `json:"name"`
	Type       *string   `json:"type"`
	Address    string    `json:"address"`
	City       string    `json:"city"`
	State      string    `json:"state"`
	PostalCode string    `json:"postalCode"`
	Purchased  bool      `json:"purchased"`
	Reviews    []*Review `json:"reviews"`
	Photos     []*Photo  `json:"photos"`
}

// Review is an assembled review. Business always points at the owning
// assembled business; User is nil when the author no longer exists (the
// deleted-user tombstone, not an error).
type Review struct {
	ID         uint64    `json:"id"`
	BusinessID uint64    `json:"businessId"`
	UserID     uint64    `json:"userId"`
	Score      int       `json:"score"`
	Date       int64     `json:"date"`
	Text       string    `json:"text"`
	Business   *Business `json:"-"`
	User       *User     `json:"user"`
}

// User is an assembled author with back-references to the reviews they wrote.
type User struct {
	ID       uint64    `json:"id"`
	Username string    `json:"username"`
	Reviews  []*Review `json:"-"`
}

// Photo is an assembled photo with a back-reference to its business.
type Photo struct {
	ID         uint64      `json:"id"`
	BusinessID uint64      `json:"businessId"`
	Position   int         `json:"position"`
	Caption    string      `json:"caption"`
	Meta       models.JSON `json:"meta,omitempty"`
	Business   *Business   `json:"-"`
}

// Assemble builds the cross-linked graph for the given business rows. The
// call is all-or-nothing: any storage failure propagates and no partially
// linked graph is returned. Assembly is read-only.
func Assemble(db *gorm.DB, rows []models.Business) ([]*Business, error) {
	businesses := make([]*Business, 0, len(rows))
	businessLookup := make(map[uint64]*Business, len(rows))
	businessIDs := make([]uint64, 0, len(rows))

	for _, row := range rows {
		b := &Business{
			ID:         row.ID,
			Name:       row.Name,
			Type:       row.Type,
			Address:    row.Address,
			City:       row.City,
			State:      row.State,
			PostalCode: row.PostalCode,
			Purchased:  row.Purchased != nil && *row.Purchased,
			Reviews:    []*Review{},
			Photos:     []*Photo{},
		}
		businesses = append(businesses, b)
		businessLookup[row.ID] = b
		businessIDs = append(businessIDs, row.ID)
	}

	reviewRows, err := store.ReviewsByBusinessIDs(db, businessIDs)
	if err != nil {
		return nil, err
	}

	// Fetch only the users the reviews actually reference.
	userIDSet := make(map[uint64]struct{})
	userIDs := make([]uint64, 0)
	for _, r := range reviewRows {
		if _, seen := userIDSet[r.UserID]; !seen {
			userIDSet[r.UserID] = struct{}{}
			userIDs = append(userIDs, r.UserID)
		}
	}
	userRows, err := store.UsersByIDs(db, userIDs)
	if err != nil {
		return nil, err
	}
	userLookup := make(map[uint64]*User, len(userRows))
	for _, row := range userRows {
		userLookup[row.ID] = &User{
			ID:       row.ID,
			Username: row.Username,
			Reviews:  []*Review{},
		}
	}

	for _, row := range reviewRows {
		review := &Review{
			ID:         row.ID,
			BusinessID: row.BusinessID,
			UserID:     row.UserID,
			Score:      row.Score,
			Date:       row.Date,
			Text:       row.Text,
		}
		business := businessLookup[row.BusinessID]
		review.Business = business
		business.Reviews = append(business.Reviews, review)

		if user, ok := userLookup[row.UserID]; ok {
			review.User = user
			user.Reviews = append(user.Reviews, review)
		}
		// review.User stays nil when the author was deleted.
	}

	photoRows, err := store.PhotosByBusinessIDs(db, businessIDs)
	if err != nil {
		return nil, err
	}
	for _, row := range photoRows {
		photo := &Photo{
			ID:         row.ID,
			BusinessID: row.BusinessID,
			Position:   row.Position,
			Caption:    row.Caption,
			Meta:       row.Meta,
			Business:   businessLookup[row.BusinessID],
		}
		photo.Business.Photos = append(photo.Business.Photos, photo)
	}

	return businesses, nil
}

// AssembleAll assembles the graph for every business.
func AssembleAll(db *gorm.DB) ([]*Business, error) {
	rows, err := store.AllBusinesses(db)
	if err != nil {
		return nil, err
	}
	return Assemble(db, rows)
}

// AssembleOne assembles the graph for a single business. Returns (nil, nil)
// when the business does not exist.
func AssembleOne(db *gorm.DB, id uint64) (*Business, error) {
	row, err := store.BusinessByID(db, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, nil
	}
	assembled, err := Assemble(db, []models.Business{*row})
	if err != nil {
		return nil, err
	}
	return assembled[0], nil
}
