// user.go
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
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/localnerve/reviewdb/internal/middleware"
	"github.com/localnerve/reviewdb/internal/models"
	"github.com/localnerve/reviewdb/internal/services"
	"github.com/localnerve/reviewdb/internal/types"
	"github.com/localnerve/reviewdb/internal/utils"
	"gorm.io/gorm"
)

// UserHandler handles user and authentication routes
type UserHandler struct {
	DB         *gorm.DB
	Sessions   *session.Store
	BcryptCost int
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AddUser handles POST /api/user
// @Summary Register a user
// @Description Create a user account; usernames are unique case-insensitively
// @Tags User
// @Accept json
// @Produce json
// @Param body body credentials true "Username and password"
// @Success 200 {object} types.Result
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 422 {object} types.Result
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /user [post]
func (h *UserHandler) AddUser(c *fiber.Ctx) error {
	var body credentials
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "user.validation.input")
	}

	var errs []string
	errs = checkLength(errs, "username", body.Username, usernameMin, usernameMax)
	errs = checkLength(errs, "password", body.Password, passwordMin, passwordMax)
	if len(errs) > 0 {
		return utils.ValidationErrorResponse(c, errs)
	}

	result, err := services.AddUser(h.DB, body.Username, body.Password, h.BcryptCost)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "addUser")
	}
	return utils.ResultResponse(c, result)
}

// Login handles POST /api/login
// @Summary Log in
// @Description Verify credentials and set the session cookie
// @Tags User
// @Accept json
// @Produce json
// @Param body body credentials true "Username and password"
// @Success 200 {object} types.Result
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /login [post]
func (h *UserHandler) Login(c *fiber.Ctx) error {
	var body credentials
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "user.validation.input")
	}

	result, err := services.CanLogin(h.DB, body.Username, body.Password)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "login")
	}
	if result.Success {
		user := result.Data.(*models.User)
		if err := middleware.LoginUser(h.Sessions, c, user.ID); err != nil {
			return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "login.session")
		}
	}
	return utils.ResultResponse(c, result)
}

// Logout handles POST /api/logout
// @Summary Log out
// @Description Destroy the session and clear the cookie
// @Tags User
// @Produce json
// @Success 200 {object} types.Result
// @Router /logout [post]
func (h *UserHandler) Logout(c *fiber.Ctx) error {
	if err := middleware.LogoutUser(h.Sessions, c); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "logout.session")
	}
	return utils.ResultResponse(c, types.Success("Logout successful", nil))
}

// Me handles GET /api/user/me
// @Summary Get the logged-in user
// @Description Get the account behind the current session
// @Tags User
// @Produce json
// @Success 200 {object} types.Result
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /user/me [get]
func (h *UserHandler) Me(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint64)
	user, err := services.GetUser(h.DB, userID)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "me")
	}
	if user == nil {
		// The account was deleted while the session was live.
		return utils.NotFoundResponse(c, types.Failure("User not found", types.LevelWarn, nil))
	}
	return utils.ResultResponse(c, types.Success("User found", user))
}

// GetUser handles GET /api/user/:id
// @Summary Get a user
// @Description Get a user account by id
// @Tags User
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} types.Result
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} types.Result
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /user/{id} [get]
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, "Invalid user id", fiber.StatusBadRequest, "user.validation.id")
	}

	user, err := services.GetUser(h.DB, id)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "getUser")
	}
	if user == nil {
		return utils.NotFoundResponse(c, types.Failure("User not found", types.LevelWarn, nil))
	}
	return utils.ResultResponse(c, types.Success("User found", user))
}
