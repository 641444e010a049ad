package routes

import (
	"garage_api/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathClients      = "/clients"
	PathAppointments = "/appointments"
	PathInvoices     = "/invoices"
)

func addGarageRoutes(
	rg *gin.RouterGroup,
	clientHandler *handlers.ClientHandler,
	appointmentHandler *handlers.AppointmentHandler,
	invoiceHandler *handlers.InvoiceHandler,
) {
	clients := rg.Group(PathClients)
	{
		clients.POST("", clientHandler.CreateClient)
		clients.GET("", clientHandler.ListClients)
		clients.GET("/:id", clientHandler.GetClientByID)
		clients.PATCH("/:id/status", clientHandler.UpdateClientStatus)
		clients.GET("/:id/invoices", invoiceHandler.ListClientInvoices)
	}

	appointments := rg.Group(PathAppointments)
	{
		appointments.GET("", appointmentHandler.ListAppointments)
		appointments.POST("", appointmentHandler.CreateAppointment)
		appointments.PUT("/:id", appointmentHandler.UpdateAppointment)
		appointments.DELETE("/:id", appointmentHandler.DeleteAppointment)
		appointments.PATCH("/:id/status", appointmentHandler.UpdateAppointmentStatus)
	}

	invoices := rg.Group(PathInvoices)
	{
		invoices.POST("", invoiceHandler.CreateInvoice)
		invoices.GET("", invoiceHandler.ListInvoices)
		invoices.GET("/:id", invoiceHandler.GetInvoiceByID)
		invoices.POST("/:id/payments", invoiceHandler.RegisterInvoicePayment)
	}
}
