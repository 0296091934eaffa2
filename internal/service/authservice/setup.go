package authservice

import "backoffice/internal/domain"

// SetupInstructions descreve como provisionar o banco manualmente.
func SetupInstructions() domain.SetupInfo {
	return domain.SetupInfo{
		Message: "Manual setup required",
		Instructions: []string{
			"1. Configure DATABASE_URL pointing to your PostgreSQL instance",
			"2. Apply the schema migrations:",
			"   go run ./cmd/migrate up",
			"3. Seed the default administrator:",
			"   go run ./cmd/adminctl bootstrap",
			"",
			"The server also seeds the default administrator on startup when the superadmin table is empty.",
			"",
			"4. After seeding, you can login with:",
			"   Username: " + DefaultUsername,
			"   Password: " + DefaultPassword,
			"",
			"Change this password immediately in production.",
		},
		Migrate: "go run ./cmd/migrate up",
	}
}
