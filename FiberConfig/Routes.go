package FiberConfig

import (
	"fmt"

	"FleetOffice/Apis"
	"FleetOffice/Controllers"
	"FleetOffice/Models"
	"FleetOffice/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Initialize handlers
	assignmentController := Controllers.NewAssignmentController(db)
	fuelRequestController := Controllers.NewFuelRequestController(db)
	advanceController := Controllers.NewAdvanceController(db)
	expenseController := Controllers.NewExpenseController(db)
	payOnBehalfController := Controllers.NewPayOnBehalfController(db)
	refundController := Controllers.NewRefundController(db)
	salaryController := Controllers.NewSalaryController(db)
	reportController := Controllers.NewReportController(db)

	api := app.Group("/api")

	// Assignment routes
	assignments := api.Group("/assignments", middleware.Verify(3))
	assignments.Get("/", assignmentController.GetAssignments)
	assignments.Post("/", assignmentController.CreateAssignment)
	assignments.Get("/active/vehicle", assignmentController.GetActiveForVehicle)
	assignments.Get("/active/driver", assignmentController.GetActiveForDriver)
	assignments.Put("/:id", assignmentController.UpdateAssignment)
	assignments.Delete("/:id", assignmentController.DeleteAssignment)

	// Fuel request routes
	fuel := api.Group("/fuel-requests", middleware.Verify(1))
	fuel.Get("/", fuelRequestController.GetFuelRequests)
	fuel.Post("/", fuelRequestController.CreateFuelRequest)
	fuel.Post("/:id/approve", middleware.Verify(3), fuelRequestController.ApproveFuelRequest)
	fuel.Post("/:id/reject", middleware.Verify(3), fuelRequestController.RejectFuelRequest)
	fuel.Post("/:id/complete", middleware.Verify(3), fuelRequestController.CompleteFuelRequest)
	fuel.Post("/:id/revert", middleware.Verify(3), fuelRequestController.RevertFuelRequest)
	fuel.Put("/:id", middleware.Verify(3), fuelRequestController.UpdateFuelRequest)
	fuel.Delete("/:id", middleware.Verify(3), fuelRequestController.DeleteFuelRequest)

	// Money advance routes
	advances := api.Group("/advances", middleware.Verify(1))
	advances.Get("/", advanceController.GetAdvances)
	advances.Post("/", advanceController.CreateAdvance)
	advances.Post("/:id/approve", middleware.Verify(3), advanceController.ApproveAdvance)
	advances.Post("/:id/reject", middleware.Verify(3), advanceController.RejectAdvance)
	advances.Put("/:id", middleware.Verify(3), advanceController.UpdateAdvance)
	advances.Delete("/:id", middleware.Verify(3), advanceController.DeleteAdvance)

	// Driver expense routes
	expenses := api.Group("/expenses", middleware.Verify(1))
	expenses.Get("/", expenseController.GetExpenses)
	expenses.Post("/", expenseController.CreateExpense)
	expenses.Post("/:id/approve", middleware.Verify(3), expenseController.ApproveExpense)
	expenses.Post("/:id/reject", middleware.Verify(3), expenseController.RejectExpense)
	expenses.Put("/:id", middleware.Verify(3), expenseController.UpdateExpense)
	expenses.Delete("/:id", middleware.Verify(3), expenseController.DeleteExpense)

	// Pay-on-behalf ledger, import and slips
	pob := api.Group("/pay-on-behalf", middleware.Verify(3))
	pob.Get("/", payOnBehalfController.GetPayOnBehalf)
	pob.Post("/import/preview", payOnBehalfController.PreviewImport)
	pob.Post("/import", payOnBehalfController.SaveImport)
	pob.Post("/slips/plan", payOnBehalfController.PlanSlips)
	pob.Post("/slips", payOnBehalfController.CreateSlips)
	pob.Get("/slips", payOnBehalfController.GetSlips)
	pob.Put("/slips/:id", payOnBehalfController.UpdateSlip)
	pob.Delete("/slips/:id", payOnBehalfController.DeleteSlip)
	pob.Put("/:id", payOnBehalfController.UpdatePayOnBehalf)
	pob.Delete("/:id", payOnBehalfController.DeletePayOnBehalf)

	// Refunds and reconciliation
	refunds := api.Group("/refunds", middleware.Verify(3))
	refunds.Get("/", refundController.GetRefundEntries)
	refunds.Post("/", refundController.SaveRefundEntry)
	api.Get("/reconciliation", middleware.Verify(3), refundController.GetReconciliation)
	api.Get("/reconciliation/export", middleware.Verify(3), reportController.ExportReconciliation)

	// Salary routes
	salaries := api.Group("/salaries", middleware.Verify(3))
	salaries.Get("/", salaryController.GetSalaries)
	salaries.Post("/import/preview", salaryController.PreviewImport)
	salaries.Post("/import", salaryController.SaveImport)
	salaries.Delete("/:id", salaryController.DeleteSalary)
}

func FiberConfig() {
	fmt.Println("Server Up...")
	app := fiber.New()
	app.Use(middleware.RequestLogger())
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestCompression, // 2
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS,PATCH",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With",
		AllowCredentials: true, // Important for cookies
		MaxAge:           300,
	}))

	SetupRoutes(app, Models.DB)

	// Auth and user management
	app.Post("/api/Login", Controllers.Login)
	app.Get("/api/validate-token", middleware.Verify(1), Controllers.ValidateToken)
	app.Use("/api/User", middleware.Verify(1), Controllers.CurrentUser)
	app.Use("/api/Logout", Controllers.Logout)
	app.Post("/api/RegisterUser", middleware.Verify(4), Controllers.RegisterUser)
	app.Patch("/api/UpdateUser", middleware.Verify(4), Controllers.UpdateUser)
	app.Get("/api/FetchUsers", middleware.Verify(4), Controllers.FetchUsers)
	app.Delete("/api/DeleteUser", middleware.Verify(4), Controllers.DeleteUser)
	app.Post("/api/ResetPassword", middleware.Verify(4), Controllers.ResetPassword)

	// Fleet master data
	app.Get("/api/GetDrivers", middleware.Verify(1), Apis.GetDrivers)
	app.Get("/api/GetDriver/:id", middleware.Verify(1), Apis.GetDriver)
	app.Post("/api/CreateDriver", middleware.Verify(3), Apis.CreateDriver)
	app.Put("/api/UpdateDriver/:id", middleware.Verify(3), Apis.UpdateDriver)
	app.Delete("/api/DeleteDriver/:id", middleware.Verify(3), Apis.DeleteDriver)
	app.Get("/api/GetVehicles", middleware.Verify(1), Apis.GetVehicles)
	app.Get("/api/GetVehicle/:id", middleware.Verify(1), Apis.GetVehicle)
	app.Post("/api/CreateVehicle", middleware.Verify(3), Apis.CreateVehicle)
	app.Put("/api/UpdateVehicle/:id", middleware.Verify(3), Apis.UpdateVehicle)
	app.Delete("/api/DeleteVehicle/:id", middleware.Verify(3), Apis.DeleteVehicle)

	// Odometers and tires
	app.Get("/api/GetOdometers", middleware.Verify(1), Apis.GetOdometers)
	app.Post("/api/CreateOdometer", middleware.Verify(1), Apis.CreateOdometer)
	app.Put("/api/UpdateOdometer/:id", middleware.Verify(3), Apis.UpdateOdometer)
	app.Delete("/api/DeleteOdometer/:id", middleware.Verify(3), Apis.DeleteOdometer)
	app.Get("/api/GetTireReplacements", middleware.Verify(1), Apis.GetTireReplacements)
	app.Post("/api/CreateTireReplacement", middleware.Verify(3), Apis.CreateTireReplacement)
	app.Delete("/api/DeleteTireReplacement/:id", middleware.Verify(3), Apis.DeleteTireReplacement)

	// Announcements
	app.Get("/api/GetAnnouncements", middleware.Verify(1), Apis.GetAnnouncements)
	app.Post("/api/CreateAnnouncement", middleware.Verify(3), Apis.CreateAnnouncement)
	app.Post("/api/MarkAnnouncementRead/:id", middleware.Verify(1), Apis.MarkAnnouncementRead)
	app.Delete("/api/DeleteAnnouncement/:id", middleware.Verify(3), Apis.DeleteAnnouncement)

	// Reference data
	config := app.Group("/api/config", middleware.Verify(3))
	config.Get("/stations", Apis.GetGasStations)
	config.Post("/stations", Apis.CreateGasStation)
	config.Post("/stations/:id/default", Apis.SetDefaultGasStation)
	config.Delete("/stations/:id", Apis.DeleteGasStation)
	config.Get("/fuel-prices", Apis.GetFuelPrices)
	config.Post("/fuel-prices", Apis.CreateFuelPrice)
	config.Delete("/fuel-prices/:id", Apis.DeleteFuelPrice)
	config.Get("/expense-categories", Apis.GetExpenseCategories)
	config.Post("/expense-categories", Apis.CreateExpenseCategory)
	config.Delete("/expense-categories/:id", Apis.DeleteExpenseCategory)
	config.Get("/recipients", Apis.GetPaymentRecipients)
	config.Post("/recipients", Apis.CreatePaymentRecipient)
	config.Post("/recipients/import", Apis.ImportPaymentRecipients)
	config.Delete("/recipients/:id", Apis.DeletePaymentRecipient)
	config.Get("/pob-reasons", Apis.GetPayOnBehalfReasons)
	config.Post("/pob-reasons", Apis.CreatePayOnBehalfReason)
	config.Delete("/pob-reasons/:id", Apis.DeletePayOnBehalfReason)

	app.Listen(":3000")
}
