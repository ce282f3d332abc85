package config

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

const shutdownTimeout = 10 * time.Second

// Serve listens on addr until a signal arrives on quit, then shuts the app
// down. A listener that fails to start is returned as an error right away.
func Serve(app *fiber.App, addr string, quit <-chan os.Signal) error {
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- app.Listen(addr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-quit:
	}

	log.Info("Shutting down server...")
	return app.ShutdownWithTimeout(shutdownTimeout)
}
