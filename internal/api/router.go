package api

import (
	"safar/internal/api/controllers"
	"safar/pkg/middleware"

	"github.com/gin-gonic/gin"
)

type Controllers struct {
	Auth        *controllers.AuthController
	Submissions *controllers.SubmissionController
	Itineraries *controllers.ItineraryController
	Attractions *controllers.AttractionController
	Hotels      *controllers.HotelController
	Transports  *controllers.TransportController
	Bookings    *controllers.BookingController
	Dashboard   *controllers.DashboardController
}

// RegisterRoutes wires the public planning surface and the admin surface.
// Admin routes sit behind JWT + role checks; everything else is open.
func RegisterRoutes(r *gin.Engine, ctrls Controllers) {
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	v1 := r.Group("/api/v1")

	v1.POST("/auth/login", ctrls.Auth.Login)

	v1.POST("/submissions", ctrls.Submissions.Submit)
	v1.GET("/submissions/:id", ctrls.Submissions.GetByID)

	v1.GET("/attractions", ctrls.Attractions.List)
	v1.GET("/attractions/search", ctrls.Attractions.Search)
	v1.GET("/attractions/:id", ctrls.Attractions.GetByID)
	v1.GET("/hotels", ctrls.Hotels.List)
	v1.GET("/hotels/:id", ctrls.Hotels.GetByID)
	v1.GET("/transport", ctrls.Transports.List)
	v1.GET("/transport/:id", ctrls.Transports.GetByID)

	itineraries := v1.Group("/itineraries")
	{
		itineraries.POST("/generate", ctrls.Itineraries.Generate)
		itineraries.POST("/select", ctrls.Itineraries.SelectPackage)
		itineraries.GET("/generated/:submissionId", ctrls.Itineraries.GetGenerated)
		itineraries.GET("/:submissionId", ctrls.Itineraries.GetSaved)

		itineraries.PUT("/:submissionId/days/:day/hotel", ctrls.Itineraries.SwapHotel)
		itineraries.PUT("/:submissionId/days/:day/transport", ctrls.Itineraries.SwapTransport)
		itineraries.POST("/:submissionId/days/:day/attractions", ctrls.Itineraries.ToggleAttraction)
		itineraries.PUT("/:submissionId/days/:day", ctrls.Itineraries.UpdateDay)
	}

	v1.POST("/bookings", ctrls.Bookings.Create)

	admin := v1.Group("/admin")
	admin.Use(middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"))
	{
		admin.POST("/attractions", ctrls.Attractions.Create)
		admin.PUT("/attractions", ctrls.Attractions.Update)
		admin.DELETE("/attractions/:id", ctrls.Attractions.Delete)

		admin.POST("/hotels", ctrls.Hotels.Create)
		admin.PUT("/hotels", ctrls.Hotels.Update)
		admin.DELETE("/hotels/:id", ctrls.Hotels.Delete)

		admin.POST("/transport", ctrls.Transports.Create)
		admin.PUT("/transport", ctrls.Transports.Update)
		admin.DELETE("/transport/:id", ctrls.Transports.Delete)

		admin.GET("/submissions", ctrls.Submissions.List)
		admin.GET("/bookings", ctrls.Bookings.List)
		admin.GET("/bookings/:id", ctrls.Bookings.GetByID)
		admin.PUT("/bookings/:id/status", ctrls.Bookings.UpdateStatus)

		admin.GET("/dashboard", ctrls.Dashboard.Report)
	}
}
