package controller

import (
	"swingshift_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthController struct {
	DB *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{DB: db}
}

// @Summary Health check
// @Description Reports service and database health
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	status := gin.H{"status": "ok", "database": "ok"}
	sqlDB, err := c.DB.DB()
	if err != nil || sqlDB.Ping() != nil {
		status["database"] = "unreachable"
	}
	util.Success(ctx, status)
}
