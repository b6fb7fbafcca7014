package handler

import (
	identityapp "github.com/campaign/backend/internal/application/identity"
	"github.com/gin-gonic/gin"
)

// UserHandler handles user management HTTP requests
type UserHandler struct {
	BaseHandler
	userService *identityapp.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *identityapp.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// Create godoc
// @Summary      Register a user
// @Description  Creates a user. E-mail addresses are unique and stored lower-cased.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body identityapp.CreateUserRequest true "User creation request"
// @Success      201 {object} dto.Response{data=identityapp.UserResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req identityapp.CreateUserRequest
	if !h.BindJSON(c, &req) {
		return
	}

	user, err := h.userService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, user)
}

// List godoc
// @Summary      List users
// @Tags         users
// @Produce      json
// @Param        page      query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(50)
// @Success      200 {object} dto.Response{data=[]identityapp.UserResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /users [get]
func (h *UserHandler) List(c *gin.Context) {
	filter, err := listFilter(c)
	if err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	users, err := h.userService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, users, len(users), filter.Page, filter.PageSize)
}

// GetByID godoc
// @Summary      Get user by ID
// @Tags         users
// @Produce      json
// @Param        id path string true "User ID" format(uuid)
// @Success      200 {object} dto.Response{data=identityapp.UserResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /users/{id} [get]
func (h *UserHandler) GetByID(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c, "id", "user")
	if !ok {
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, user)
}

// Update godoc
// @Summary      Update a user
// @Description  Changes the e-mail and/or password
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id      path string                        true "User ID" format(uuid)
// @Param        request body identityapp.UpdateUserRequest true "Fields to update"
// @Success      200 {object} dto.Response{data=identityapp.UserResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /users/{id} [put]
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c, "id", "user")
	if !ok {
		return
	}

	var req identityapp.UpdateUserRequest
	if !h.BindJSON(c, &req) {
		return
	}

	user, err := h.userService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, user)
}

// Delete godoc
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Param        id path string true "User ID" format(uuid)
// @Success      200 {object} dto.Response{data=dto.MessageData}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c, "id", "user")
	if !ok {
		return
	}

	if err := h.userService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Message(c, "User deleted successfully")
}
