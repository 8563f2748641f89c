package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jack0rich/BigdataServer/internal/domain/users"
)

// UserHandler defines the interface for handling credential operations
type UserHandler interface {
	Register(ctx *gin.Context)
	Login(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
	UpdatePassword(ctx *gin.Context)
	RotateAPIKey(ctx *gin.Context)
}

type userHandler struct {
	userService users.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService users.UserService) UserHandler {
	return &userHandler{userService: userService}
}

// Register creates a user and returns its one-time API key
func (handler *userHandler) Register(ctx *gin.Context) {
	var request RegisterUserRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		writeError(ctx, http.StatusBadRequest, CodeInvalidRequest, "invalid request body")
		return
	}
	if err := request.Validate(); err != nil {
		writeError(ctx, http.StatusBadRequest, CodeInvalidRequest, err.Error())
		return
	}

	user, apiKey, err := handler.userService.Register(ctx, request.Username, request.Password)
	if err != nil {
		respondUserError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, RegisterUserResponse{
		User:   newUserResponse(user),
		APIKey: apiKey,
	})
}

// Login exchanges credentials for a session token
func (handler *userHandler) Login(ctx *gin.Context) {
	var request LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		writeError(ctx, http.StatusBadRequest, CodeInvalidRequest, "invalid request body")
		return
	}
	if err := request.Validate(); err != nil {
		writeError(ctx, http.StatusBadRequest, CodeInvalidRequest, err.Error())
		return
	}

	session, err := handler.userService.Login(ctx, request.Username, request.Password)
	if err != nil {
		respondUserError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, SessionResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
	})
}

// GetByID fetches a user by ID
func (handler *userHandler) GetByID(ctx *gin.Context) {
	user, err := handler.userService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		respondUserError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newUserResponse(user))
}

// DeleteByID removes a user
func (handler *userHandler) DeleteByID(ctx *gin.Context) {
	if err := handler.userService.DeleteByID(ctx, ctx.Param("id")); err != nil {
		respondUserError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, InfoResponse{Message: "user deleted"})
}

// UpdatePassword replaces a user's password
func (handler *userHandler) UpdatePassword(ctx *gin.Context) {
	var request UpdatePasswordRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		writeError(ctx, http.StatusBadRequest, CodeInvalidRequest, "invalid request body")
		return
	}
	if err := request.Validate(); err != nil {
		writeError(ctx, http.StatusBadRequest, CodeInvalidRequest, err.Error())
		return
	}

	if err := handler.userService.UpdatePassword(ctx, ctx.Param("id"), request.Password); err != nil {
		respondUserError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, InfoResponse{Message: "password updated"})
}

// RotateAPIKey replaces a user's API key and returns the new one once
func (handler *userHandler) RotateAPIKey(ctx *gin.Context) {
	apiKey, err := handler.userService.RotateAPIKey(ctx, ctx.Param("id"))
	if err != nil {
		respondUserError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, APIKeyResponse{APIKey: apiKey})
}
