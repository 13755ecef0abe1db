package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"homestay-client/internal/nav"
	"homestay-client/internal/wire"
	"homestay-client/pkg/notice"

	"go.uber.org/zap"
)

// Run boots the client shell: restore any stored session, land on the
// starting route, and block until interrupted. The render layer hooks
// into the navigator and notice callbacks.
func Run(app *wire.App, logger *zap.Logger) {
	app.Navigator.OnChange(func(path string) {
		fmt.Printf("-> %s\n", path)
	})
	app.Notices.OnChange(func(n *notice.Notice) {
		if n != nil {
			fmt.Printf("[%s] %s\n", n.Severity, n.Message)
		}
	})

	// Session bootstrap
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	app.Store.Session.CheckAuth(ctx)
	cancel()

	app.Navigator.Navigate(nav.HomePath)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down")
}
