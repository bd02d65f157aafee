package main

import (
	"os"

	"pin-packs/pkg/config"
	app "pin-packs/services/catalog/internal/app"

	_ "pin-packs/services/catalog/docs" // Swagger docs
)

// @title           Catalog Service API
// @version         1.0
// @description     Pack and pin creation for the Pin Packs marketplace
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8101
// @BasePath  /api/v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if os.Getenv("SERVER_PORT") == "" {
		cfg.ServerPort = "8101"
	}

	application, err := app.NewApp(cfg)
	if err != nil {
		panic(err)
	}

	if err := application.Run(); err != nil {
		panic(err)
	}

	application.Wait()

	if err := application.Shutdown(); err != nil {
		panic(err)
	}
}
