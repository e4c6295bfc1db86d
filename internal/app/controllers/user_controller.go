package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/sectiontrack/internal/app/models"
	"github.com/yigit/sectiontrack/internal/app/services"
	"github.com/yigit/sectiontrack/internal/middleware"
)

// UserController handles user-related operations
type UserController struct {
	userService services.UserService
}

// NewUserController creates a new user controller
func NewUserController(userService services.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// ListUsers retrieves every user
// @Summary List users
// @Description Retrieves all users, unfiltered
// @Tags users
// @Produce json
// @Success 200 {array} models.User "Users retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users [get]
func (c *UserController) ListUsers(ctx *gin.Context) {
	users, err := c.userService.ListUsers(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if users == nil {
		users = []*models.User{}
	}
	ctx.JSON(http.StatusOK, users)
}
