package main

import (
	"log"

	"servicedesk/internal/api"
)

// @title Service Desk API
// @version 1.0
// @description Бэкенд учёта заявок на обслуживание механизмов

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	log.Println("App start")
	api.StartServer()
	log.Println("App terminated")
}
