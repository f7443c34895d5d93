package main

// General API documentation for swaggo. Regenerate with `swag init -g cmd/yieldd/docs.go`.
//
// @title           yieldd API
// @version         1.0
// @description     Crop yield prediction for Sri Lankan agricultural inputs.
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
