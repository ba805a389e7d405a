package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/reviewdb/internal/blob"
	"github.com/localnerve/reviewdb/internal/config"
	"github.com/localnerve/reviewdb/internal/services"
	"github.com/localnerve/reviewdb/internal/types"
	"github.com/localnerve/reviewdb/internal/utils"
	"gorm.io/gorm"
)

// AppHandler handles the heartbeat, payload and health routes
type AppHandler struct {
	DB     *gorm.DB
	Cfg    *config.Config
	Photos blob.Store
}

// Heartbeat handles GET /api
// @Summary API heartbeat
// @Description Confirm the API is up
// @Tags App
// @Produce json
// @Success 200 {object} types.Result
// @Router / [get]
func (h *AppHandler) Heartbeat(c *fiber.Ctx) error {
	return utils.ResultResponse(c, types.Success("API is running", fiber.Map{
		"timestamp": time.Now().UnixMilli(),
	}))
}

// Payload handles GET /api/payload
// @Summary Get the full payload
// @Description Get the complete assembled graph of businesses, reviews, users and photos
// @Tags App
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /payload [get]
func (h *AppHandler) Payload(c *fiber.Ctx) error {
	businesses, err := services.GetBusinesses(h.DB)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "payload")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"businesses": businesses,
	})
}

// Health handles GET /health
// @Summary Health check
// @Description Check database and photo store connectivity
// @Tags App
// @Produce json
// @Success 200 {object} services.HealthCheckResult
// @Failure 503 {object} services.HealthCheckResult
// @Router /health [get]
func (h *AppHandler) Health(c *fiber.Ctx) error {
	result := services.HealthCheck(c.UserContext(), h.Cfg, h.DB, h.Photos)
	status := fiber.StatusOK
	if result.Status != "healthy" {
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(result)
}
