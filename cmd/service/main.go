// @title        Heritage API
// @version      1.0
// @description  Tourism and heritage content graph: narratives, sites, experiences and the tours built from them.
// @host         localhost:8080
// @BasePath     /api
// @securityDefinitions.oauth2.password OAuth2Password
// @tokenUrl /api/login/access-token
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		exitFunc(1)
	}
}
