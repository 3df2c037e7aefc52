package main

import (
	"context"
	"log"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/job-board/internal/auth"
	"github.com/spec-kit/job-board/internal/config"
	"github.com/spec-kit/job-board/internal/domain"
	"github.com/spec-kit/job-board/internal/observability"
	"github.com/spec-kit/job-board/internal/persistence"
	"github.com/spec-kit/job-board/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	users := repository.NewUserRepository(pg.PoolHandle())
	jobs := repository.NewJobRepository(pg.PoolHandle())

	admin := seedUser(ctx, logger, users, cfg.Auth.BcryptCost, &domain.User{
		Name:  "Platform Admin",
		Email: "admin@jobboard.local",
		Role:  domain.RoleAdmin,
		Bio:   "System administrator",
	})
	employer := seedUser(ctx, logger, users, cfg.Auth.BcryptCost, &domain.User{
		Name:           "TechCorp",
		Email:          "hr@techcorp.local",
		Role:           domain.RoleEmployer,
		CompanyName:    "TechCorp",
		CompanyWebsite: "https://techcorp.example.com",
		Bio:            "Leading technology company",
	})
	seedUser(ctx, logger, users, cfg.Auth.BcryptCost, &domain.User{
		Name:  "Alice Candidate",
		Email: "alice@jobboard.local",
		Role:  domain.RoleCandidate,
		Bio:   "Full-stack developer looking for the next challenge",
	})

	if admin == nil || employer == nil {
		logger.Fatal("seeding users failed")
	}

	salaryMin, salaryMax := 90000, 140000
	postings := []domain.Job{
		{
			Title:           "Senior Backend Engineer",
			Description:     "Design and operate our job matching platform services.",
			Requirements:    "5+ years building networked services",
			Company:         employer.CompanyName,
			Location:        "Remote",
			SalaryMin:       &salaryMin,
			SalaryMax:       &salaryMax,
			JobType:         domain.JobTypeRemote,
			Industry:        "Technology",
			ExperienceLevel: domain.ExperienceSenior,
			IsActive:        true,
			IsFeatured:      true,
			CreatedBy:       employer.ID,
		},
		{
			Title:           "Frontend Developer",
			Description:     "Build the candidate-facing single page application.",
			Company:         employer.CompanyName,
			Location:        "Berlin, Germany",
			JobType:         domain.JobTypeFullTime,
			Industry:        "Technology",
			ExperienceLevel: domain.ExperienceMid,
			IsActive:        true,
			CreatedBy:       employer.ID,
		},
	}
	for i := range postings {
		if err := jobs.Create(ctx, &postings[i]); err != nil {
			logger.Error("seed job failed", zap.String("title", postings[i].Title), zap.Error(err))
			continue
		}
		logger.Info("seeded job", zap.Int64("id", postings[i].ID), zap.String("title", postings[i].Title))
	}

	logger.Info("seeding complete")
}

func seedUser(ctx context.Context, logger *zap.Logger, users repository.UserRepository, bcryptCost int, user *domain.User) *domain.User {
	if existing, err := users.GetByEmail(ctx, user.Email); err == nil {
		logger.Info("user already present", zap.String("email", user.Email))
		return existing
	}

	hash, err := auth.HashPassword("changeme123", bcryptCost)
	if err != nil {
		logger.Error("hash password failed", zap.Error(err))
		return nil
	}
	user.PasswordHash = hash
	user.IsActive = true

	if err := users.Create(ctx, user); err != nil {
		logger.Error("seed user failed", zap.String("email", user.Email), zap.Error(err))
		return nil
	}
	logger.Info("seeded user", zap.Int64("id", user.ID), zap.String("email", user.Email), zap.String("role", string(user.Role)))
	return user
}
