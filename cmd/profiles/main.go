// profiles is a small admin tool for seeding coach, admin and client accounts
// and the coaching relationships between them.
//
//	profiles -env dev add -email coach@fitcoach.io -name "Jane Coach" -role coach -password secret
//	profiles -env dev link -coach <coach uuid> -client <client uuid> -status active
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/2beens/fitcoach/internal/auth"
	"github.com/2beens/fitcoach/internal/config"
	"github.com/2beens/fitcoach/internal/db"
	"github.com/2beens/fitcoach/pkg"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var validStatuses = map[string]bool{
	"active":   true,
	"inactive": true,
	"pending":  true,
}

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: profiles [-env ENV] [-config PATH] <add | link> [flags]")
		os.Exit(2)
	}

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     cfg.PostgresUser,
		DBPassword: os.Getenv("FITCOACH_POSTGRES_PASS"),
	})
	if err != nil {
		log.Fatalf("new db pool: %s", err)
	}
	defer dbPool.Close()

	repo := auth.NewRepo(dbPool)

	switch cmd, args := flag.Arg(0), flag.Args()[1:]; cmd {
	case "add":
		err = addProfile(ctx, repo, args)
	case "link":
		err = linkClient(ctx, repo, args)
	default:
		err = fmt.Errorf("unknown command: %s", cmd)
	}
	if err != nil {
		log.Fatalf("%s", err)
	}
}

func addProfile(ctx context.Context, repo *auth.Repo, args []string) error {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	email := fs.String("email", "", "profile email")
	name := fs.String("name", "", "full name")
	role := fs.String("role", string(auth.RoleClient), "coach | admin | client")
	password := fs.String("password", "", "login password, optional for clients")
	avatarURL := fs.String("avatar", "", "avatar url")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *email == "" || *name == "" {
		return errors.New("email and name are required")
	}

	profile := auth.Profile{
		Email:    *email,
		FullName: *name,
		Role:     auth.Role(*role),
	}
	if !profile.Role.IsValid() {
		return fmt.Errorf("invalid role: %s", *role)
	}
	if *avatarURL != "" {
		profile.AvatarURL = avatarURL
	}
	if *password != "" {
		hash, err := pkg.HashPassword(*password)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		profile.PasswordHash = hash
	}

	added, err := repo.AddProfile(ctx, profile)
	if err != nil {
		return fmt.Errorf("add profile: %w", err)
	}

	log.Infof("profile added: %s [%s] %s", added.ID, added.Role, added.Email)
	return nil
}

func linkClient(ctx context.Context, repo *auth.Repo, args []string) error {
	fs := flag.NewFlagSet("link", flag.ExitOnError)
	coachID := fs.String("coach", "", "coach profile id")
	clientID := fs.String("client", "", "client profile id")
	status := fs.String("status", "active", "active | inactive | pending")
	if err := fs.Parse(args); err != nil {
		return err
	}

	for _, id := range []string{*coachID, *clientID} {
		if _, err := uuid.Parse(id); err != nil {
			return fmt.Errorf("invalid profile id [%s]: %w", id, err)
		}
	}
	if !validStatuses[*status] {
		return fmt.Errorf("invalid status: %s", *status)
	}

	coach, err := repo.ProfileByID(ctx, *coachID)
	if err != nil {
		return fmt.Errorf("get coach: %w", err)
	}
	if !coach.Role.CanCoach() {
		return fmt.Errorf("profile %s is a %s, not a coach", coach.ID, coach.Role)
	}

	if err := repo.SetClientStatus(ctx, *coachID, *clientID, *status); err != nil {
		return fmt.Errorf("set client status: %w", err)
	}

	log.Infof("coach %s -> client %s: %s", *coachID, *clientID, *status)
	return nil
}
