package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/cmlabs-hris/hris-attendance/internal/config"
	"github.com/cmlabs-hris/hris-attendance/internal/domain/user"
	"github.com/cmlabs-hris/hris-attendance/internal/pkg/jwt"
)

// token mints an access token with the configured secret, for operator
// scripts that call the API directly.
func main() {
	var (
		userID     = flag.String("user", "", "user id placed in the user_id claim (required)")
		employeeID = flag.String("employee", "", "employee id placed in the employee_id claim")
		role       = flag.String("role", string(user.RoleEmployee), "owner, manager or employee")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	token, expiresAt, err := issueToken(jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration), *userID, *employeeID, *role)
	if err != nil {
		log.Fatalf("failed to issue token: %v", err)
	}

	fmt.Fprintln(os.Stdout, token)
	fmt.Fprintf(os.Stderr, "expires at %s\n", time.Unix(expiresAt, 0).Format(time.RFC3339))
}

func issueToken(svc jwt.Service, userID, employeeID, role string) (string, int64, error) {
	if userID == "" {
		return "", 0, fmt.Errorf("-user is required")
	}

	switch user.Role(role) {
	case user.RoleOwner, user.RoleManager, user.RoleEmployee:
	default:
		return "", 0, fmt.Errorf("unknown role %q", role)
	}

	var employee *string
	if employeeID != "" {
		employee = &employeeID
	}

	return svc.GenerateAccessToken(userID, employee, user.Role(role))
}
