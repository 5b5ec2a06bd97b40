package handlers

import (
	"github.com/chayanon-dev/game_academy/database"
	"github.com/chayanon-dev/game_academy/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type LessonRequest struct {
	Title       string `json:"title" validate:"required"`
	Content     string `json:"content" validate:"required"`
	OrderNumber int    `json:"order_number" validate:"required,min=1"`
}

func GetCourseLessons(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid course ID"})
	}

	var lessons []models.Lesson
	if err := database.DB.Where("course_id = ?", courseID).Order("order_number asc").Find(&lessons).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch lessons"})
	}
	return c.JSON(lessons)
}

func GetLesson(c *fiber.Ctx) error {
	lessonID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid lesson ID"})
	}

	var lesson models.Lesson
	if err := database.DB.First(&lesson, "id = ?", lessonID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Lesson not found"})
	}
	return c.JSON(lesson)
}

func CreateLesson(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("courseId"))
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

	var req LessonRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	lesson := models.Lesson{
		CourseID:    courseID,
		Title:       req.Title,
		Content:     req.Content,
		OrderNumber: req.OrderNumber,
	}
	if err := database.DB.Create(&lesson).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create lesson"})
	}
	return c.Status(fiber.StatusCreated).JSON(lesson)
}

func UpdateLesson(c *fiber.Ctx) error {
	lessonID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid lesson ID"})
	}

	var lesson models.Lesson
	if err := database.DB.First(&lesson, "id = ?", lessonID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Lesson not found"})
	}

	var course models.Course
	if err := database.DB.First(&course, "id = ?", lesson.CourseID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
	}

	if !canManageCourse(c, course) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You can only manage your own courses"})
	}

	var req LessonRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	lesson.Title = req.Title
	lesson.Content = req.Content
	lesson.OrderNumber = req.OrderNumber

	if err := database.DB.Save(&lesson).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update lesson"})
	}
	return c.JSON(lesson)
}

func DeleteLesson(c *fiber.Ctx) error {
	lessonID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid lesson ID"})
	}

	var lesson models.Lesson
	if err := database.DB.First(&lesson, "id = ?", lessonID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Lesson not found"})
	}

	var course models.Course
	if err := database.DB.First(&course, "id = ?", lesson.CourseID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
	}

	if !canManageCourse(c, course) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You can only manage your own courses"})
	}

	if err := database.DB.Delete(&lesson).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete lesson"})
	}
	return c.JSON(fiber.Map{"message": "Lesson deleted successfully"})
}
