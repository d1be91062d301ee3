// @title           Trail Fit Uploader API
// @version         1.0
// @description     Upload and catalogue .fit activity files with session metadata.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import "trailfit_backend/internal/app"

func main() {
	app.Run()
}
