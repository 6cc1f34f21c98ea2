package routes

import (
	"truckops-backend/internal/api/handlers"
	"truckops-backend/internal/api/middleware"
	"truckops-backend/internal/config"
	"truckops-backend/internal/models"
	"truckops-backend/internal/repository"
	"truckops-backend/internal/services"
	"truckops-backend/pkg/cache"
	"truckops-backend/pkg/ratelimit"
	"truckops-backend/pkg/upload"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

// SetupRoutes constructs every repository, service and handler once and
// mounts the full API surface. Repositories are shared through the
// services rather than re-created per handler.
func SetupRoutes(router *gin.Engine, db *mongo.Database, redisClient *redis.Client, cfg *config.Config) {
	var cacheManager *cache.Manager
	if redisClient != nil {
		cacheManager = cache.NewManager(redisClient, "truckops:")
	}

	employeeService := services.NewEmployeeService(repository.NewRepository[models.Employee](db, "employees"))
	clientService := services.NewClientService(repository.NewRepository[models.Client](db, "clients"))
	supplierService := services.NewSupplierService(repository.NewRepository[models.Supplier](db, "suppliers"))
	truckService := services.NewTruckService(repository.NewRepository[models.Truck](db, "trucks"), cacheManager)
	trailerService := services.NewTrailerService(repository.NewRepository[models.Trailer](db, "trailers"))
	tripService := services.NewTripService(repository.NewRepository[models.Trip](db, "trips"))
	maintenanceService := services.NewMaintenanceService(repository.NewRepository[models.Maintenance](db, "maintenance"))
	fineService := services.NewFineService(repository.NewRepository[models.Fine](db, "fines"))
	partService := services.NewPartService(repository.NewRepository[models.Part](db, "parts"))
	tirService := services.NewTIRService(repository.NewRepository[models.TIR](db, "tirs"))
	visaService := services.NewVisaService(repository.NewRepository[models.Visa](db, "visas"))
	insuranceService := services.NewInsuranceService(repository.NewRepository[models.Insurance](db, "insurances"))
	accountService := services.NewAccountService(repository.NewRepository[models.AccountEntry](db, "accounts"))
	documentService := services.NewDocumentService(repository.NewRepository[models.Document](db, "documents"))

	saver := upload.NewSaver(cfg.UploadDir)

	healthHandler := handlers.NewHealthHandler(db, redisClient)

	api := router.Group("/api/v1")

	limiter := ratelimit.NewMemoryLimiter(&ratelimit.Config{
		RequestsPerMinute: cfg.RateLimitRPM,
		BurstSize:         cfg.RateLimitBurst,
		Enabled:           cfg.RateLimitOn,
	})
	api.Use(middleware.RateLimit(limiter))

	api.GET("/health", healthHandler.HealthCheck)

	handlers.NewResourceHandler[models.Employee](employeeService, "Employee", "Employees").Register(api.Group("/employees"))
	handlers.NewResourceHandler[models.Client](clientService, "Client", "Clients").Register(api.Group("/clients"))
	handlers.NewResourceHandler[models.Supplier](supplierService, "Supplier", "Suppliers").Register(api.Group("/suppliers"))
	handlers.NewResourceHandler[models.Truck](truckService, "Truck", "Trucks").Register(api.Group("/trucks"))
	handlers.NewResourceHandler[models.Trailer](trailerService, "Trailer", "Trailers").Register(api.Group("/trailers"))
	handlers.NewResourceHandler[models.Trip](tripService, "Trip", "Trips").Register(api.Group("/trips"))
	handlers.NewResourceHandler[models.Maintenance](maintenanceService, "Maintenance record", "Maintenance records").Register(api.Group("/maintenance"))
	handlers.NewResourceHandler[models.Fine](fineService, "Fine", "Fines").Register(api.Group("/fines"))
	handlers.NewResourceHandler[models.Part](partService, "Part", "Parts").Register(api.Group("/parts"))
	handlers.NewResourceHandler[models.TIR](tirService, "TIR", "TIRs").Register(api.Group("/tirs"))
	handlers.NewResourceHandler[models.Visa](visaService, "Visa", "Visas").Register(api.Group("/visas"))
	handlers.NewResourceHandler[models.Insurance](insuranceService, "Insurance", "Insurances").Register(api.Group("/insurances"))
	handlers.NewResourceHandler[models.AccountEntry](accountService, "Account entry", "Account entries").Register(api.Group("/accounts"))

	handlers.NewVehicleDocumentHandler(documentService, models.DocumentParentTruck).Register(api.Group("/trucks"))
	handlers.NewVehicleDocumentHandler(documentService, models.DocumentParentTrailer).Register(api.Group("/trailers"))
	handlers.NewEmployeeDocumentHandler(documentService, saver).Register(api.Group("/employees"))
}
