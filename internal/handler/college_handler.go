package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/college-portal-api/internal/middleware"
	"github.com/noah-isme/college-portal-api/internal/models"
	appErrors "github.com/noah-isme/college-portal-api/pkg/errors"
	"github.com/noah-isme/college-portal-api/pkg/response"
)

type collegeService interface {
	Register(ctx context.Context, req models.RegisterCollegeRequest) (*models.RegisterCollegeResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error)
	Get(ctx context.Context, id string) (*models.College, error)
}

// CollegeHandler exposes registration, login and profile endpoints.
type CollegeHandler struct {
	colleges collegeService
}

// NewCollegeHandler constructs CollegeHandler.
func NewCollegeHandler(colleges collegeService) *CollegeHandler {
	return &CollegeHandler{colleges: colleges}
}

// Register godoc
// @Summary Register a college
// @Tags Colleges
// @Accept json
// @Produce json
// @Param payload body models.RegisterCollegeRequest true "Registration payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /register [post]
func (h *CollegeHandler) Register(c *gin.Context) {
	var req models.RegisterCollegeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "All fields are required"))
		return
	}
	resp, err := h.colleges.Register(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, resp)
}

// Login godoc
// @Summary College login
// @Tags Colleges
// @Accept json
// @Produce json
// @Param payload body models.LoginRequest true "Credentials"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /login [post]
func (h *CollegeHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "Email and password are required"))
		return
	}
	resp, err := h.colleges.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resp, nil)
}

// Me godoc
// @Summary Current college profile
// @Tags Colleges
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /colleges/me [get]
func (h *CollegeHandler) Me(c *gin.Context) {
	college, err := h.colleges.Get(c.Request.Context(), middleware.CollegeID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, college, nil)
}
