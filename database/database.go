package database

import (
	"fmt"
	"log"

	config "github.com/chayanon-dev/game_academy/configs"
	"github.com/chayanon-dev/game_academy/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	dsn := config.Config("DATABASE_URL")

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt:                              false,
		SkipDefaultTransaction:                   true,
		DisableForeignKeyConstraintWhenMigrating: true,
		DisableNestedTransaction:                 true,
	})
	if err != nil {
		log.Fatalf("🔥 Failed to connect to database: %v", err)
	}

	fmt.Println("✅ Database connected successfully")
}

func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Level{},
		&models.UserLevel{},
		&models.RankSeason{},
		&models.Rank{},
		&models.UserRank{},
		&models.Achievement{},
		&models.UserAchievement{},
		&models.Course{},
		&models.Lesson{},
		&models.Enrollment{},
		&models.Challenge{},
		&models.UserChallenge{},
		&models.Streak{},
		&models.Tournament{},
		&models.TournamentResult{},
		&models.Payment{},
		&models.Review{},
		&models.InstructorApplication{},
		&models.QuizQuestion{},
		&models.Career{},
		&models.Certificate{},
	)
	if err != nil {
		log.Fatalf("🔥 Failed to migrate database: %v", err)
	}
	fmt.Println("✅ Database migration successful")
}

func SeedAdmin() {
	adminEmail := config.Config("ADMIN_EMAIL")
	adminPassword := config.Config("ADMIN_PASSWORD")

	var count int64
	err := DB.Model(&models.User{}).Where("email = ?", adminEmail).Count(&count).Error
	if err != nil {
		log.Fatalf("🔥 Failed to check for admin user: %v", err)
		return
	}

	if count > 0 {
		log.Println("Admin user already exists.")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("🔥 Failed to hash admin password: %v", err)
		return
	}

	adminUser := models.User{
		Username:  config.Config("ADMIN_USERNAME"),
		FirstName: "Platform",
		LastName:  "Admin",
		Email:     adminEmail,
		Password:  string(hashedPassword),
		Role:      models.RoleAdmin,
	}

	if err := DB.Create(&adminUser).Error; err != nil {
		log.Fatalf("🔥 Failed to seed admin user: %v", err)
		return
	}

	log.Println("✅ Admin user seeded successfully")
}

// SeedLevels installs a default level catalog on an empty database so the
// XP engine has a level 1 to assign lazily.
func SeedLevels() {
	var count int64
	if err := DB.Model(&models.Level{}).Count(&count).Error; err != nil {
		log.Fatalf("🔥 Failed to check level catalog: %v", err)
		return
	}
	if count > 0 {
		return
	}

	levels := []models.Level{
		{LevelNumber: 1, Name: "Novice", MinXP: 0, MaxXP: 100},
		{LevelNumber: 2, Name: "Apprentice", MinXP: 100, MaxXP: 250},
		{LevelNumber: 3, Name: "Adept", MinXP: 250, MaxXP: 500},
		{LevelNumber: 4, Name: "Expert", MinXP: 500, MaxXP: 1000},
		{LevelNumber: 5, Name: "Master", MinXP: 1000, MaxXP: 2000},
	}
	if err := DB.Create(&levels).Error; err != nil {
		log.Fatalf("🔥 Failed to seed level catalog: %v", err)
		return
	}
	log.Println("✅ Level catalog seeded successfully")
}

// SeedCareers installs the career quiz reference data when missing.
func SeedCareers() {
	var count int64
	if err := DB.Model(&models.Career{}).Count(&count).Error; err != nil {
		log.Fatalf("🔥 Failed to check career catalog: %v", err)
		return
	}
	if count > 0 {
		return
	}

	careers := []models.Career{
		{Title: "Game Developer", Description: "Builds gameplay systems and engine code.", Tags: "coding,logic,systems"},
		{Title: "Game Artist", Description: "Creates 2D and 3D art for games.", Tags: "art,design,visual"},
		{Title: "Game Designer", Description: "Designs rules, levels and player experience.", Tags: "design,logic,creative"},
		{Title: "Game Tester", Description: "Finds defects and verifies game quality.", Tags: "detail,logic,patience"},
		{Title: "Sound Designer", Description: "Crafts music and audio effects.", Tags: "audio,creative,art"},
		{Title: "Esports Athlete", Description: "Competes professionally in tournaments.", Tags: "competitive,teamwork,reflex"},
		{Title: "Esports Coach", Description: "Trains and leads competitive teams.", Tags: "teamwork,leadership,competitive"},
		{Title: "Game Streamer", Description: "Entertains audiences with live play.", Tags: "social,creative,performance"},
		{Title: "Esports Commentator", Description: "Narrates live competitive matches.", Tags: "social,performance,competitive"},
		{Title: "Game Marketer", Description: "Promotes games and builds communities.", Tags: "social,leadership,creative"},
	}
	if err := DB.Create(&careers).Error; err != nil {
		log.Fatalf("🔥 Failed to seed career catalog: %v", err)
		return
	}

	questions := []models.QuizQuestion{
		{Question: "Do you enjoy solving logic puzzles and writing step-by-step instructions?", Tags: "coding,logic"},
		{Question: "Do you like drawing, painting or building visual scenes?", Tags: "art,visual,design"},
		{Question: "Would you rather design the rules of a game than play it?", Tags: "design,creative"},
		{Question: "Do you notice small mistakes that other people miss?", Tags: "detail,patience"},
		{Question: "Do you pay close attention to music and sound in games?", Tags: "audio,creative"},
		{Question: "Do you enjoy competing against other people under pressure?", Tags: "competitive,reflex"},
		{Question: "Do you like presenting or performing in front of an audience?", Tags: "social,performance"},
		{Question: "Do you enjoy organizing people and leading group projects?", Tags: "leadership,teamwork"},
	}
	if err := DB.Create(&questions).Error; err != nil {
		log.Fatalf("🔥 Failed to seed quiz questions: %v", err)
		return
	}
	log.Println("✅ Career quiz seeded successfully")
}
