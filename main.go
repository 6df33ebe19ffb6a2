package main

import (
	"log"

	"FleetOffice/CronJobs"
	"FleetOffice/FiberConfig"
	"FleetOffice/Models"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment defaults")
	}

	Models.Connect()

	expiryChecker := CronJobs.NewExpiryChecker(30, false)
	if err := expiryChecker.Start(); err != nil {
		log.Println("Failed to start expiry checker:", err)
	}

	FiberConfig.FiberConfig()
}
