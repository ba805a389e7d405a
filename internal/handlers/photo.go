// photo.go
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
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/reviewdb/internal/blob"
	"github.com/localnerve/reviewdb/internal/services"
	"github.com/localnerve/reviewdb/internal/utils"
	"gorm.io/gorm"
)

// PhotoHandler handles photo routes
type PhotoHandler struct {
	DB     *gorm.DB
	Photos blob.Store
}

// maxPhotoBytes caps an upload at 10 MiB.
const maxPhotoBytes = 10 << 20

// UploadPhoto handles POST /api/photo/:businessId
// @Summary Upload a photo
// @Description Attach a photo to a business; the position is assigned server-side
// @Tags Photo
// @Accept multipart/form-data
// @Produce json
// @Param businessId path int true "Business ID"
// @Param photo formData file true "Image bytes"
// @Param caption formData string false "Photo caption"
// @Success 200 {object} types.Result
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 422 {object} types.Result
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /photo/{businessId} [post]
func (h *PhotoHandler) UploadPhoto(c *fiber.Ctx) error {
	businessID, err := parseID(c, "businessId")
	if err != nil {
		return utils.ErrorResponse(c, "Invalid business id", fiber.StatusBadRequest, "photo.validation.id")
	}

	// Multipart when present, raw body otherwise. Either way the image
	// arrives as bytes; the content type is sniffed, never trusted.
	var (
		image   []byte
		caption string
	)
	if file, ferr := c.FormFile("photo"); ferr == nil {
		if file.Size > maxPhotoBytes {
			return utils.ErrorResponse(c, "Photo too large", fiber.StatusRequestEntityTooLarge, "photo.validation.size")
		}
		f, oerr := file.Open()
		if oerr != nil {
			return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "photo.validation.input")
		}
		defer f.Close()
		image, err = io.ReadAll(f)
		if err != nil {
			return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "photo.validation.input")
		}
		caption = c.FormValue("caption")
	} else {
		image = c.Body()
		caption = c.Get("X-Photo-Caption")
	}

	var errs []string
	if len(image) == 0 {
		errs = append(errs, "photo is required")
	}
	if len(image) > maxPhotoBytes {
		errs = append(errs, "photo exceeds the maximum size")
	}
	errs = checkLength(errs, "caption", caption, 0, captionMax)
	if len(errs) > 0 {
		return utils.ValidationErrorResponse(c, errs)
	}

	result, err := services.UploadPhoto(c.UserContext(), h.DB, h.Photos, businessID, image, caption)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "uploadPhoto")
	}
	return utils.ResultResponse(c, result)
}
