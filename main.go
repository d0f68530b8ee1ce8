package main

import "ecomauth/internal/app"

// @title           Ecomauth API
// @version         1.0
// @description     Registration, email verification and login backend.

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	app.Run()
}
