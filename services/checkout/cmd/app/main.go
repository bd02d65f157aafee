package main

import (
	"os"

	"pin-packs/pkg/config"
	app "pin-packs/services/checkout/internal/app"

	_ "pin-packs/services/checkout/docs" // Swagger docs
)

// @title           Checkout Service API
// @version         1.0
// @description     Order fulfillment for the Pin Packs marketplace
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8102
// @BasePath  /api/v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if os.Getenv("SERVER_PORT") == "" {
		cfg.ServerPort = "8102"
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
