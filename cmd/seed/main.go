// Seeds a demo account through the domain layer so the stored hash and
// normalized email match what the service itself would write.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"user-management-api/config"
	"user-management-api/internal/domain/user"
	"user-management-api/internal/infrastructure/postgres"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	repo := postgres.NewUserRepository(pool)

	email, err := user.NewEmail("demo@example.com")
	if err != nil {
		log.Fatalf("invalid seed email: %v", err)
	}

	if exists, err := repo.ExistsWithEmail(ctx, email); err != nil {
		log.Fatalf("failed to check seed user: %v", err)
	} else if exists {
		fmt.Println("seed user already present")
		return
	}

	const rawPassword = "DemoPass123"
	u, err := user.Register(email, rawPassword, "Demo", "User", 30)
	if err != nil {
		log.Fatalf("failed to build seed user: %v", err)
	}
	if err := repo.Save(ctx, u); err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}

	fmt.Printf("seeded user: id=%d email=%s password=%s\n", u.ID().Int64(), u.Email(), rawPassword)
}
