// Command issue-token prints a bearer token for local testing of the API.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"eventPlanner/internal/access"
	"eventPlanner/internal/config"
	"eventPlanner/internal/http-server/middleware/auth"
	"eventPlanner/internal/lib/clock"
)

func main() {
	userID := flag.Int64("user", 1, "user id the token is issued for")
	roles := flag.String("roles", "", "comma separated roles, e.g. ROLE_ADMIN")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")

	// parses the flags above along with -config
	cfg := config.MustLoad()

	actor := access.Actor{UserID: *userID}
	if *roles != "" {
		actor.Roles = strings.Split(*roles, ",")
	}

	now := clock.Real{}.Now()

	token, err := auth.Issue([]byte(cfg.Auth.JWTSecret), cfg.Auth.Issuer, actor, *ttl, now)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error signing token: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("User ID:  %d\n", actor.UserID)
	fmt.Printf("Roles:    %s\n", strings.Join(actor.Roles, ","))
	fmt.Printf("Expires:  %s\n", now.Add(*ttl).Format(time.RFC3339))
	fmt.Println()
	fmt.Println(token)
}
