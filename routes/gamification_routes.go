package routes

import (
	"github.com/chayanon-dev/game_academy/handlers"
	"github.com/chayanon-dev/game_academy/middleware"
	"github.com/gofiber/fiber/v2"
)

func GamificationRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	levels := api.Group("/levels")
	levels.Get("", handlers.GetLevels)
	levels.Get("/:id", handlers.GetLevel)
	levels.Post("", middleware.Protected(), middleware.AdminRequired(), handlers.CreateLevel)
	levels.Put("/:id", middleware.Protected(), middleware.AdminRequired(), handlers.UpdateLevel)
	levels.Delete("/:id", middleware.Protected(), middleware.AdminRequired(), handlers.DeleteLevel)

	userLevel := api.Group("/user-level", middleware.Protected())
	userLevel.Get("/my", handlers.GetMyUserLevel)
	userLevel.Get("/user/:id", middleware.InstructorRequired(), handlers.GetUserLevelByID)
	userLevel.Post("/add-xp", handlers.AddXP)
	userLevel.Put("/:id", middleware.AdminRequired(), handlers.SetUserLevel)
	userLevel.Delete("/:id", middleware.AdminRequired(), handlers.DeleteUserLevel)

	seasons := api.Group("/rank-seasons")
	seasons.Get("", handlers.GetRankSeasons)
	seasons.Get("/active", handlers.GetActiveRankSeason)
	seasons.Get("/:id", handlers.GetRankSeason)
	seasons.Post("", middleware.Protected(), middleware.AdminRequired(), handlers.CreateRankSeason)
	seasons.Put("/:id", middleware.Protected(), middleware.AdminRequired(), handlers.UpdateRankSeason)
	seasons.Delete("/:id", middleware.Protected(), middleware.AdminRequired(), handlers.DeleteRankSeason)

	ranks := api.Group("/ranks")
	ranks.Get("", handlers.GetRanks)
	ranks.Get("/active", handlers.GetActiveSeasonRanks)
	ranks.Get("/season/:id", handlers.GetSeasonRanks)
	ranks.Post("", middleware.Protected(), middleware.AdminRequired(), handlers.CreateRank)
	ranks.Put("/:id", middleware.Protected(), middleware.AdminRequired(), handlers.UpdateRank)
	ranks.Delete("/:id", middleware.Protected(), middleware.AdminRequired(), handlers.DeleteRank)

	userRank := api.Group("/user-rank", middleware.Protected())
	userRank.Get("/my", handlers.GetMyUserRank)
	userRank.Get("/my/all", handlers.GetMyUserRanks)
	userRank.Get("/user/:id", middleware.InstructorRequired(), handlers.GetUserRankByID)
	userRank.Post("/add-points", handlers.AddPoints)
	userRank.Put("/:userId/:seasonId", middleware.AdminRequired(), handlers.SetUserRank)
	userRank.Delete("/:userId/:seasonId", middleware.AdminRequired(), handlers.DeleteUserRank)

	achievements := api.Group("/achievements")
	achievements.Get("", handlers.GetAchievements)
	achievements.Get("/:id", handlers.GetAchievement)
	achievements.Post("", middleware.Protected(), middleware.AdminRequired(), handlers.CreateAchievement)
	achievements.Put("/:id", middleware.Protected(), middleware.AdminRequired(), handlers.UpdateAchievement)
	achievements.Delete("/:id", middleware.Protected(), middleware.AdminRequired(), handlers.DeleteAchievement)

	userAchievements := api.Group("/user-achievements", middleware.Protected())
	userAchievements.Get("/my", handlers.GetMyAchievements)
	userAchievements.Get("/user/:id", middleware.InstructorRequired(), handlers.GetUserAchievementsByID)
	userAchievements.Post("/unlock", middleware.AdminRequired(), handlers.UnlockAchievement)
	userAchievements.Post("/check-criteria", handlers.CheckCriteria)
	userAchievements.Delete("/:id", middleware.AdminRequired(), handlers.DeleteUserAchievement)

	streak := api.Group("/streak", middleware.Protected())
	streak.Get("", handlers.GetMyStreak)
	streak.Get("/all", middleware.AdminRequired(), handlers.GetAllStreaks)
	streak.Post("", handlers.CreateStreak)
	streak.Put("/increment", handlers.IncrementStreak)
	streak.Put("/reset", handlers.ResetStreak)
	streak.Delete("", handlers.DeleteStreak)

	gamification := api.Group("/gamification")
	gamification.Get("/leaderboard", handlers.GetLeaderboard)
	gamification.Get("/certificates/me", middleware.Protected(), handlers.ListMyCertificates)
}
