package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"marketplace/internal/app"
	"marketplace/internal/config"
	"marketplace/internal/database"
	"marketplace/internal/domain/auth"
	"marketplace/internal/domain/catalog"
	"marketplace/internal/domain/subscription"
	"marketplace/internal/logger"
	jwtsvc "marketplace/internal/pkg/jwt"
)

type seedUser struct {
	email, name, password string
	role                  auth.Role
}

var seedUsers = []seedUser{
	{"admin@marketplace.local", "Administrator", "admin123", auth.RoleAdmin},
	{"anna@mail.local", "Anna Client", "client123", auth.RoleClient},
	{"ben@mail.local", "Ben Client", "client123", auth.RoleClient},
	{"pro@fixit.local", "FixIt Pro", "provider123", auth.RoleProvider},
	{"starter@clean.local", "Clean Starter", "provider123", auth.RoleProvider},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log := logger.New(cfg.AppEnv, cfg.LogLevel)

	db, err := database.Connect(cfg.DatabaseURL, log)
	if err != nil {
		log.Fatal().Err(err).Msg("DB connection failed")
	}

	log.Info().Msg("running AutoMigrate")
	if err := db.AutoMigrate(app.Models()...); err != nil {
		log.Fatal().Err(err).Msg("AutoMigrate failed")
	}

	// Cleanup old data in dependency order
	log.Info().Msg("cleaning old data")
	for _, table := range []string{"notifications", "messages", "reviews", "payments", "bookings", "services", "subscriptions", "users"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			log.Fatal().Err(err).Str("table", table).Msg("cleanup failed")
		}
	}

	ctx := context.Background()
	users := auth.NewUserRepository(db)
	created := make([]auth.User, 0, len(seedUsers))
	for _, su := range seedUsers {
		hash, err := auth.HashPassword(su.password)
		if err != nil {
			log.Fatal().Err(err).Msg("hash password")
		}
		u := auth.User{Email: su.email, Name: su.name, Role: su.role, PasswordHash: hash}
		if err := users.Create(ctx, &u); err != nil {
			log.Fatal().Err(err).Str("email", su.email).Msg("create user")
		}
		created = append(created, u)
	}

	subs := subscription.NewService(subscription.NewRepository(db), log)
	listings := catalog.NewService(catalog.NewRepository(db), subs, log)
	if err := listings.SeedCategories(ctx); err != nil {
		log.Fatal().Err(err).Msg("seed categories")
	}

	premium, starter := created[3], created[4]
	if _, err := subs.Create(ctx, premium.ID, 29.90, subscription.PlanPremium); err != nil {
		log.Fatal().Err(err).Msg("premium subscription")
	}
	if _, err := subs.Create(ctx, starter.ID, 9.90, subscription.PlanBasic); err != nil {
		log.Fatal().Err(err).Msg("basic subscription")
	}

	demo := []struct {
		provider auth.User
		in       catalog.CreateInput
	}{
		{premium, catalog.CreateInput{CategoryID: 1, Title: "Leak repair", Description: "Taps, pipes and radiators", Price: 45}},
		{premium, catalog.CreateInput{CategoryID: 2, Title: "Socket installation", Description: "Per socket, materials included", Price: 30}},
		{starter, catalog.CreateInput{CategoryID: 3, Title: "Apartment deep clean", Description: "Up to 80 m2", Price: 90}},
	}
	for _, d := range demo {
		if _, err := listings.Create(ctx, d.provider.ID, d.in); err != nil {
			log.Fatal().Err(err).Str("title", d.in.Title).Msg("create service")
		}
	}

	printTokens(cfg, log, created)
	log.Info().Int("users", len(created)).Int("services", len(demo)).Msg("seed complete")
}

func printTokens(cfg *config.Config, log zerolog.Logger, users []auth.User) {
	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)
	fmt.Println("\nDemo accounts (bearer tokens valid for", cfg.JWTTTL, "):")
	for i, u := range users {
		tok, err := j.GenerateToken(u.ID, string(u.Role))
		if err != nil {
			log.Error().Err(err).Int64("user_id", u.ID).Msg("generate token")
			continue
		}
		fmt.Printf("  %-9s %-22s password=%s\n    %s\n", u.Role, u.Email, seedUsers[i].password, tok)
	}
}
