package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/noah-isme/students-api/internal/dto"
	"github.com/noah-isme/students-api/internal/models"
	appErrors "github.com/noah-isme/students-api/pkg/errors"
	"github.com/noah-isme/students-api/pkg/logger"
	"github.com/noah-isme/students-api/pkg/response"
)

type studentService interface {
	Create(ctx context.Context, candidate models.Student) error
	ListActive(ctx context.Context, page, size int) ([]models.Student, error)
}

// StudentHandler exposes student endpoints.
type StudentHandler struct {
	students    studentService
	defaultSize int
	logger      *zap.Logger
}

// NewStudentHandler constructs StudentHandler. defaultSize is used when the
// size query parameter is omitted.
func NewStudentHandler(students studentService, defaultSize int, logger *zap.Logger) *StudentHandler {
	if defaultSize <= 0 {
		defaultSize = models.DefaultPageSize
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentHandler{students: students, defaultSize: defaultSize, logger: logger}
}

// Create godoc
// @Summary Create student
// @Tags Students
// @Accept json
// @Produce json
// @Param payload body dto.CreateStudentRequest true "Student payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /students [post]
func (h *StudentHandler) Create(c *gin.Context) {
	var req dto.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, bindError(err))
		return
	}
	student := req.ToModel()
	if err := h.students.Create(c.Request.Context(), student); err != nil {
		h.fail(c, translateError(err))
		return
	}
	response.Created(c, dto.NewStudentResponse(student))
}

// ListActive godoc
// @Summary List active students
// @Tags Students
// @Produce json
// @Param page query int false "Page number, starting at 1" default(1)
// @Param size query int false "Page size, 1 to 100" default(10)
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /students/active [get]
func (h *StudentHandler) ListActive(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(models.DefaultPage)))
	if err != nil {
		h.fail(c, translateError(models.NewInvalidPaginationError("page must be an integer")))
		return
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(h.defaultSize)))
	if err != nil {
		h.fail(c, translateError(models.NewInvalidPaginationError("page size must be an integer")))
		return
	}

	students, err := h.students.ListActive(c.Request.Context(), page, size)
	if err != nil {
		h.fail(c, translateError(err))
		return
	}
	response.JSON(c, http.StatusOK, dto.NewStudentResponses(students), &models.Pagination{Page: page, PageSize: size})
}

func (h *StudentHandler) fail(c *gin.Context, appErr *appErrors.Error) {
	_ = c.Error(appErr)
	if appErr.Status >= http.StatusInternalServerError {
		logger.FromContext(h.logger, c).Error("student request failed", zap.String("code", appErr.Code), zap.Error(appErr.Unwrap()))
	}
	response.Error(c, appErr)
}
