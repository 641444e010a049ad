package routes

import (
	_ "garage_api/docs" // This will be auto-generated
	"garage_api/internal/adapter/http/handlers"
	repository2 "garage_api/internal/adapter/persistence/repository"
	"garage_api/internal/infrastructure/database"
	"garage_api/internal/infrastructure/payments"
	"garage_api/internal/usecase"
	"garage_api/internal/usecase/interfaces"
	"log"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	clientRepo := repository2.NewClientDynamoRepository(ddb)
	invoiceRepo := repository2.NewInvoiceDynamoRepository(ddb)
	appointmentRepo := repository2.NewAppointmentDynamoRepository(ddb)

	clientUseCase := usecase.NewClientUseCase(clientRepo)
	appointmentUseCase := usecase.NewAppointmentUseCase(appointmentRepo, clientRepo, invoiceRepo)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	invoiceUseCase := usecase.NewInvoiceUseCase(invoiceRepo, clientRepo, paymentGateway)

	clientHandler := handlers.NewClientHandler(clientUseCase)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentUseCase)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addGarageRoutes(v1, clientHandler, appointmentHandler, invoiceHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
