// review.go
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
	"github.com/localnerve/reviewdb/internal/services"
	"github.com/localnerve/reviewdb/internal/utils"
	"gorm.io/gorm"
)

// ReviewHandler handles review routes
type ReviewHandler struct {
	DB *gorm.DB
}

// GetReviews handles GET /api/review
// @Summary List reviews
// @Description Get every review across all businesses, newest first, with authors attached
// @Tags Review
// @Produce json
// @Success 200 {array} graph.Review
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /review [get]
func (h *ReviewHandler) GetReviews(c *fiber.Ctx) error {
	reviews, err := services.GetReviews(h.DB)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "getReviews")
	}
	return c.Status(fiber.StatusOK).JSON(reviews)
}

// GetReview handles GET /api/review/:id
// @Summary Get one review
// @Description Get a single review with its author attached
// @Tags Review
// @Produce json
// @Param id path int true "Review ID"
// @Success 200 {object} types.Result
// @Failure 404 {object} types.Result
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /review/{id} [get]
func (h *ReviewHandler) GetReview(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, "Invalid review id", fiber.StatusBadRequest, "review.validation.id")
	}

	result, err := services.GetReview(h.DB, id)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "getReview")
	}
	if !result.Success {
		return utils.NotFoundResponse(c, result)
	}
	return utils.ResultResponse(c, result)
}

// AddReview handles POST /api/review
// @Summary Add a review
// @Description Create a review for an existing business; the date is assigned server-side
// @Tags Review
// @Accept json
// @Produce json
// @Param body body services.AddReviewInput true "Review to create"
// @Success 200 {object} types.Result
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 422 {object} types.Result
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /review [post]
func (h *ReviewHandler) AddReview(c *fiber.Ctx) error {
	var body services.AddReviewInput
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "review.validation.input")
	}

	var errs []string
	errs = checkRange(errs, "score", body.Score, scoreMin, scoreMax)
	errs = checkLength(errs, "text", body.Text, textMin, textMax)
	if len(errs) > 0 {
		return utils.ValidationErrorResponse(c, errs)
	}

	result, err := services.AddReview(h.DB, body)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "addReview")
	}
	return utils.ResultResponse(c, result)
}

// EditReview handles PUT /api/review/:id
// @Summary Edit a review
// @Description Apply a partial update; the review date never changes
// @Tags Review
// @Accept json
// @Produce json
// @Param id path int true "Review ID"
// @Param body body services.ReviewUpdates true "Fields to update"
// @Success 200 {object} types.Result
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 422 {object} types.Result
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /review/{id} [put]
func (h *ReviewHandler) EditReview(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, "Invalid review id", fiber.StatusBadRequest, "review.validation.id")
	}

	var upd services.ReviewUpdates
	if err := c.BodyParser(&upd); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "review.validation.input")
	}

	var errs []string
	errs = checkOptionalRange(errs, "score", upd.Score, scoreMin, scoreMax)
	errs = checkNotNull(errs, "score", upd.Score.Present(), upd.Score.IsNull())
	errs = checkOptional(errs, "text", upd.Text, textMin, textMax)
	errs = checkNotNull(errs, "text", upd.Text.Present(), upd.Text.IsNull())
	if len(errs) > 0 {
		return utils.ValidationErrorResponse(c, errs)
	}

	result, err := services.EditEntity(h.DB, services.KindReview, id, c.Body())
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "editReview")
	}
	return utils.ResultResponse(c, result)
}

// DeleteReview handles DELETE /api/review/:id
// @Summary Delete a review
// @Description Delete a single review; the author's account is untouched
// @Tags Review
// @Produce json
// @Param id path int true "Review ID"
// @Success 200 {object} types.Result
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /review/{id} [delete]
func (h *ReviewHandler) DeleteReview(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, "Invalid review id", fiber.StatusBadRequest, "review.validation.id")
	}

	result, err := services.DeleteReview(h.DB, id)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "deleteReview")
	}
	return utils.ResultResponse(c, result)
}
