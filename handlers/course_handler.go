package handlers

import (
	"github.com/chayanon-dev/game_academy/database"
	"github.com/chayanon-dev/game_academy/middleware"
	"github.com/chayanon-dev/game_academy/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CourseRequest struct {
	Title        string  `json:"title" validate:"required"`
	Description  string  `json:"description" validate:"required"`
	Category     string  `json:"category" validate:"required"`
	Price        float64 `json:"price" validate:"min=0"`
	ThumbnailURL *string `json:"thumbnail_url" validate:"omitempty,url"`
}

func courseView(course models.Course) fiber.Map {
	var lessonCount, enrollmentCount int64
	database.DB.Model(&models.Lesson{}).Where("course_id = ?", course.ID).Count(&lessonCount)
	database.DB.Model(&models.Enrollment{}).Where("course_id = ?", course.ID).Count(&enrollmentCount)

	return fiber.Map{
		"id":               course.ID,
		"title":            course.Title,
		"description":      course.Description,
		"category":         course.Category,
		"price":            course.Price,
		"thumbnail_url":    course.ThumbnailURL,
		"instructor_id":    course.InstructorID,
		"instructor_name":  course.Instructor.FullName(),
		"lesson_count":     lessonCount,
		"enrollment_count": enrollmentCount,
		"created_at":       course.CreatedAt,
	}
}

func courseViews(courses []models.Course) []fiber.Map {
	views := make([]fiber.Map, 0, len(courses))
	for _, course := range courses {
		views = append(views, courseView(course))
	}
	return views
}

// canManageCourse allows the owning instructor or an admin.
func canManageCourse(c *fiber.Ctx, course models.Course) bool {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return false
	}
	role := middleware.GetUserRole(c)
	return role == models.RoleAdmin || (role == models.RoleInstructor && course.InstructorID == userID)
}

func GetCourses(c *fiber.Ctx) error {
	var courses []models.Course
	if err := database.DB.Preload("Instructor").Order("created_at desc").Find(&courses).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch courses"})
	}
	return c.JSON(courseViews(courses))
}

func GetCourse(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid course ID"})
	}

	var course models.Course
	if err := database.DB.Preload("Instructor").First(&course, "id = ?", courseID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
	}
	return c.JSON(courseView(course))
}

func GetCoursesByInstructor(c *fiber.Ctx) error {
	instructorID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid instructor ID"})
	}

	var courses []models.Course
	if err := database.DB.Preload("Instructor").
		Where("instructor_id = ?", instructorID).Order("created_at desc").Find(&courses).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch courses"})
	}
	return c.JSON(courseViews(courses))
}

func GetCoursesByCategory(c *fiber.Ctx) error {
	category := c.Params("category")

	var courses []models.Course
	if err := database.DB.Preload("Instructor").
		Where("category = ?", category).Order("created_at desc").Find(&courses).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch courses"})
	}
	return c.JSON(courseViews(courses))
}

func CreateCourse(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req CourseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	course := models.Course{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Price:        req.Price,
		ThumbnailURL: req.ThumbnailURL,
		InstructorID: userID,
	}
	if err := database.DB.Create(&course).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create course"})
	}
	return c.Status(fiber.StatusCreated).JSON(course)
}

func UpdateCourse(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid course ID"})
	}

	var course models.Course
	if err := database.DB.First(&course, "id = ?", courseID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
	}

	if !canManageCourse(c, course) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You can only manage your own courses"})
	}

	var req CourseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	course.Title = req.Title
	course.Description = req.Description
	course.Category = req.Category
	course.Price = req.Price
	course.ThumbnailURL = req.ThumbnailURL

	if err := database.DB.Save(&course).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update course"})
	}
	return c.JSON(course)
}

func DeleteCourse(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid course ID"})
	}

	var course models.Course
	if err := database.DB.First(&course, "id = ?", courseID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
	}

	if !canManageCourse(c, course) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You can only manage your own courses"})
	}

	var enrolled int64
	database.DB.Model(&models.Enrollment{}).Where("course_id = ?", courseID).Count(&enrolled)
	if enrolled > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot delete a course with active enrollments"})
	}

	if err := database.DB.Where("course_id = ?", courseID).Delete(&models.Lesson{}).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete course lessons"})
	}
	if err := database.DB.Delete(&course).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete course"})
	}
	return c.JSON(fiber.Map{"message": "Course deleted successfully"})
}
