// Command createadmin bootstraps an ADMIN-role account interactively.
// Registration over HTTP always produces USER-role records; this is the
// only supported way to create an administrator.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/securebase/user-api/internal/core/domain"
	"github.com/securebase/user-api/internal/core/service"
	"github.com/securebase/user-api/internal/infrastructure/config"
	mongodb "github.com/securebase/user-api/internal/infrastructure/db/mongo"
	"github.com/securebase/user-api/pkg/logger"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	reader := bufio.NewReader(os.Stdin)

	email, err := prompt(reader, "Enter admin email: ")
	if err != nil {
		log.Fatal().Err(err).Msg("reading email failed")
	}
	if !emailPattern.MatchString(email) {
		log.Fatal().Msg("provided email is invalid")
	}

	password, err := prompt(reader, "Enter admin password: ")
	if err != nil {
		log.Fatal().Err(err).Msg("reading password failed")
	}
	if !domain.NewPasswordPolicy(0).IsAcceptable(password) {
		log.Fatal().Msg(domain.ErrWeakPassword.Error())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	hash, err := service.NewCredentialHasher(cfg.BcryptCost).Hash(password)
	if err != nil {
		log.Fatal().Err(err).Msg("password hashing failed")
	}

	now := time.Now().UTC()
	admin, err := mongodb.NewUserRepository(db).Create(ctx, &domain.User{
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("admin creation failed")
	}

	log.Info().Str("id", admin.ID).Str("email", admin.Email).Msg("admin user created")
}

func prompt(reader *bufio.Reader, question string) (string, error) {
	fmt.Print(question)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
