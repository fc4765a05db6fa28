package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/bacauscout/scout/go/internal/dbconfig"
	"github.com/bacauscout/scout/go/internal/models"
	"github.com/bacauscout/scout/go/internal/users"
)

func main() {
	// 1) Read the bootstrap account from the environment
	email := strings.ToLower(strings.TrimSpace(os.Getenv("ADMIN_EMAIL")))
	name := strings.TrimSpace(os.Getenv("ADMIN_NAME"))
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		fmt.Fprintln(os.Stderr, "ADMIN_EMAIL and ADMIN_PASSWORD are required")
		os.Exit(1)
	}
	if len(password) < users.MinPasswordLength {
		fmt.Fprintf(os.Stderr, "ADMIN_PASSWORD must be at least %d characters\n", users.MinPasswordLength)
		os.Exit(1)
	}
	if name == "" {
		name = "Admin"
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), users.BcryptCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hash password: %v\n", err)
		os.Exit(1)
	}

	// 2) Connect using shared dbconfig
	cfg := dbconfig.NewConfigFromEnv()
	pool, err := pgxpool.New(context.Background(), cfg.DSN())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	// 3) Insert unless the email is taken
	cmdTag, err := pool.Exec(context.Background(), `
            INSERT INTO scouts (id, email, password, name, role, created_at)
            VALUES ($1,$2,$3,$4,$5,$6)
            ON CONFLICT (email) DO NOTHING
        `,
		uuid.New(), email, string(hash), name, string(models.ScoutRoleAdmin), time.Now().UTC(),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error inserting admin %s: %v\n", email, err)
		os.Exit(1)
	}

	if cmdTag.RowsAffected() == 1 {
		fmt.Printf("Admin seed: created %s\n", email)
	} else {
		fmt.Printf("Admin seed: %s already exists, skipped\n", email)
	}
}
