package main

import (
	"context"
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"studentboard/internal/config"
	"studentboard/internal/db"
	"studentboard/internal/model"
	"studentboard/internal/repository"
)

// Fixture content for local development.
var seedItems = map[string][]model.BoardItem{
	"announcements": {
		{Title: "Semester registration open", Description: "Course registration for the new semester is open until the end of the month.", Category: "academic", Date: "2026-09-01", Priority: model.PriorityHigh, Author: "admin"},
		{Title: "Library hours extended", Description: "The department library stays open until 22:00 during exam weeks.", Category: "general", Date: "2026-09-05", Priority: model.PriorityNormal, Author: "admin"},
	},
	"events": {
		{Title: "Orientation day", Description: "Welcome session for first-year students.", Category: "orientation", Date: "2026-09-08", Time: "10:00", Location: "Main auditorium", Priority: model.PriorityNormal, Author: "admin"},
	},
	"timetable": {
		{Title: "Algorithms lecture", Description: "Weekly lecture, all groups.", Category: "lecture", Date: "2026-09-09", Time: "09:00", Location: "Room 204", Priority: model.PriorityNormal, Author: "admin"},
	},
	"results": {
		{Title: "Spring exam results", Description: "Final grades for the spring term are published on the portal.", Category: "exams", Date: "2026-08-30", Priority: model.PriorityHigh, Author: "admin"},
	},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	for table := range seedItems {
		if err := gormDB.Table(table).AutoMigrate(&model.BoardItem{}); err != nil {
			log.Fatalf("Failed to migrate table %s: %v", table, err)
		}
	}

	ctx := context.Background()

	if err := seedAdmin(ctx, gormDB); err != nil {
		log.Fatalf("Failed to seed admin: %v", err)
	}

	created := 0
	for table, items := range seedItems {
		repo := repository.NewBoardRepository(gormDB, table)
		for i := range items {
			item := items[i]
			if err := repo.Create(ctx, &item); err != nil {
				log.Fatalf("Failed to seed %s: %v", table, err)
			}
			created++
		}
	}

	log.Printf("Seed completed: %d board items created", created)
}

// seedAdmin creates a default admin credential when none exists yet.
func seedAdmin(ctx context.Context, gormDB *gorm.DB) error {
	userRepo := repository.NewUserRepository(gormDB)

	if _, err := userRepo.FindByUsername(ctx, "admin"); err == nil {
		log.Println("Admin user already exists, skipping")
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), 10)
	if err != nil {
		return err
	}
	if err := userRepo.Create(ctx, &model.User{
		Username:     "admin",
		PasswordHash: string(hashed),
		Role:         model.RoleAdmin,
	}); err != nil {
		return err
	}
	log.Println("Default admin created (username: admin)")
	return nil
}
