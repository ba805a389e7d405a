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

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/reviewdb/internal/blob"
	"github.com/localnerve/reviewdb/internal/graph"
	"github.com/localnerve/reviewdb/internal/services"
	"github.com/localnerve/reviewdb/internal/store"
	"github.com/localnerve/reviewdb/internal/utils"
	"gorm.io/gorm"
)

// BusinessHandler handles business routes
type BusinessHandler struct {
	DB     *gorm.DB
	Photos blob.Store
}

// GetBusinesses handles GET /api/business?ids=...
// @Summary List businesses
// @Description Get every business with its reviews and photos attached, optionally filtered by id
// @Tags Business
// @Produce json
// @Param ids query string false "Comma-separated list of business ids to filter"
// @Success 200 {array} graph.Business
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /business [get]
func (h *BusinessHandler) GetBusinesses(c *fiber.Ctx) error {
	ids := parseIDFilter(c)

	var (
		businesses []*graph.Business
		err        error
	)
	if ids == nil {
		businesses, err = services.GetBusinesses(h.DB)
	} else {
		filtered, ferr := store.BusinessesByIDs(h.DB, ids)
		if ferr != nil {
			return utils.ErrorResponse(c, ferr.Error(), fiber.StatusInternalServerError, "getBusinesses")
		}
		businesses, err = graph.Assemble(h.DB, filtered)
	}
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "getBusinesses")
	}

	return c.Status(fiber.StatusOK).JSON(businesses)
}

// GetBusiness handles GET /api/business/:id
// @Summary Get one business
// @Description Get a single business with its reviews and photos attached
// @Tags Business
// @Produce json
// @Param id path int true "Business ID"
// @Success 200 {object} types.Result
// @Failure 404 {object} types.Result
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /business/{id} [get]
func (h *BusinessHandler) GetBusiness(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, "Invalid business id", fiber.StatusBadRequest, "business.validation.id")
	}

	result, err := services.GetBusiness(h.DB, id)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "getBusiness")
	}
	if !result.Success {
		return utils.NotFoundResponse(c, result)
	}
	return utils.ResultResponse(c, result)
}

// AddBusiness handles POST /api/business
// @Summary Add a business
// @Description Create a business unless an identical one already exists
// @Tags Business
// @Accept json
// @Produce json
// @Param body body services.AddBusinessInput true "Business to create"
// @Success 200 {object} types.Result
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 422 {object} types.Result
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /business [post]
func (h *BusinessHandler) AddBusiness(c *fiber.Ctx) error {
	var body services.AddBusinessInput
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "business.validation.input")
	}

	var errs []string
	errs = checkLength(errs, "name", body.Name, nameMin, nameMax)
	errs = checkLengthPtr(errs, "type", body.Type, typeMin, typeMax)
	errs = checkLength(errs, "address", body.Address, addressMin, addressMax)
	errs = checkLength(errs, "city", body.City, cityMin, cityMax)
	errs = checkLength(errs, "state", body.State, stateMin, stateMax)
	errs = checkLength(errs, "postalCode", body.PostalCode, postalCodeMin, postalCodeMax)
	if len(errs) > 0 {
		return utils.ValidationErrorResponse(c, errs)
	}

	result, err := services.AddBusiness(h.DB, body)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "addBusiness")
	}
	return utils.ResultResponse(c, result)
}

// EditBusiness handles PUT /api/business/:id
// @Summary Edit a business
// @Description Apply a partial update; only fields that differ from stored values are written
// @Tags Business
// @Accept json
// @Produce json
// @Param id path int true "Business ID"
// @Param body body services.BusinessUpdates true "Fields to update"
// @Success 200 {object} types.Result
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 422 {object} types.Result
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /business/{id} [put]
func (h *BusinessHandler) EditBusiness(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, "Invalid business id", fiber.StatusBadRequest, "business.validation.id")
	}

	var upd services.BusinessUpdates
	if err := c.BodyParser(&upd); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "business.validation.input")
	}

	var errs []string
	errs = checkOptional(errs, "name", upd.Name, nameMin, nameMax)
	errs = checkNotNull(errs, "name", upd.Name.Present(), upd.Name.IsNull())
	errs = checkOptional(errs, "type", upd.Type, typeMin, typeMax)
	errs = checkOptional(errs, "address", upd.Address, addressMin, addressMax)
	errs = checkNotNull(errs, "address", upd.Address.Present(), upd.Address.IsNull())
	errs = checkOptional(errs, "city", upd.City, cityMin, cityMax)
	errs = checkNotNull(errs, "city", upd.City.Present(), upd.City.IsNull())
	errs = checkOptional(errs, "state", upd.State, stateMin, stateMax)
	errs = checkNotNull(errs, "state", upd.State.Present(), upd.State.IsNull())
	errs = checkOptional(errs, "postalCode", upd.PostalCode, postalCodeMin, postalCodeMax)
	errs = checkNotNull(errs, "postalCode", upd.PostalCode.Present(), upd.PostalCode.IsNull())
	if len(errs) > 0 {
		return utils.ValidationErrorResponse(c, errs)
	}

	result, err := services.EditEntity(h.DB, services.KindBusiness, id, c.Body())
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "editBusiness")
	}
	return utils.ResultResponse(c, result)
}

// DeleteBusiness handles DELETE /api/business/:id
// @Summary Delete a business
// @Description Delete a business and cascade to its reviews and photos
// @Tags Business
// @Produce json
// @Param id path int true "Business ID"
// @Success 200 {object} types.Result
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /business/{id} [delete]
func (h *BusinessHandler) DeleteBusiness(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, "Invalid business id", fiber.StatusBadRequest, "business.validation.id")
	}

	result, err := services.DeleteBusiness(c.UserContext(), h.DB, h.Photos, id)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "deleteBusiness")
	}
	return utils.ResultResponse(c, result)
}
