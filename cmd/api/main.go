package main

import (
	"os"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Estimaflow API
// @version         1.0
// @description     Estimations, projects and live pricing for the admin dashboard.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
