package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/painless-lms/lms-api/internal/core/ports"
)

type CourseHandler struct {
	courseService ports.CourseService
}

func NewCourseHandler(courseService ports.CourseService) *CourseHandler {
	return &CourseHandler{courseService: courseService}
}

// ListPublished returns all published courses.
//
// @Summary      List published courses
// @Tags         courses
// @Produce      json
// @Success      200  {array}  courseResponse
// @Router       /courses [get]
func (h *CourseHandler) ListPublished(c echo.Context) error {
	courses, err := h.courseService.ListPublished(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCourseList(courses))
}

// GetDetails returns a course and its lessons ordered by sequence.
//
// @Summary      Get course details
// @Tags         courses
// @Produce      json
// @Param        id  path  string  true  "Course id"
// @Success      200  {object}  courseDetailsResponse
// @Failure      404  {object}  errorResponse
// @Router       /courses/{id} [get]
func (h *CourseHandler) GetDetails(c echo.Context) error {
	course, lessons, err := h.courseService.GetDetails(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, courseDetailsResponse{
		Course:  toCourseResponse(course),
		Lessons: toLessonList(lessons),
	})
}

// Create creates a new unpublished course owned by the calling instructor.
//
// @Summary      Create a course
// @Tags         courses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCourseRequest  true  "Course details"
// @Success      201   {object}  courseResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /courses/management [post]
func (h *CourseHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createCourseRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload", Code: codeValidation})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error(), Code: codeValidation})
	}

	course, err := h.courseService.Create(c.Request().Context(), identity, ports.CreateCourseInput{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Price:        req.Price,
		ThumbnailURL: req.ThumbnailURL,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toCourseResponse(course))
}

// ListMine returns the calling instructor's own courses.
//
// @Summary      List my courses
// @Tags         courses
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   courseResponse
// @Failure      401  {object}  errorResponse
// @Router       /courses/management/my [get]
func (h *CourseHandler) ListMine(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	courses, err := h.courseService.ListMine(c.Request().Context(), identity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCourseList(courses))
}

// Delete removes a course. Allowed for the course's creator or an admin.
//
// @Summary      Delete a course
// @Tags         courses
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Course id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /courses/{id} [delete]
func (h *CourseHandler) Delete(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.courseService.Delete(c.Request().Context(), identity, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "course removed"})
}
