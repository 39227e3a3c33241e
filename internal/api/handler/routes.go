package handler

import (
	"net/http"

	"github.com/pricepal/pricepal-api/internal/api/handler/router"
	"github.com/pricepal/pricepal-api/internal/scheduler"
	"github.com/pricepal/pricepal-api/internal/usecases/authenticating"
	"github.com/pricepal/pricepal-api/internal/usecases/catalog"
	"github.com/pricepal/pricepal-api/internal/usecases/pricing"
	"github.com/pricepal/pricepal-api/pkg/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: Register(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Users(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Products(service catalog.CatalogService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/products",
			Method:      http.MethodGet,
			Handler:     ListProducts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/products",
			Method:      http.MethodPost,
			Handler:     CreateProduct(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/products/:id",
			Method:      http.MethodGet,
			Handler:     GetProduct(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/products/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteProduct(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Suppliers(service catalog.CatalogService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/suppliers",
			Method:      http.MethodGet,
			Handler:     ListSuppliers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/suppliers",
			Method:      http.MethodPost,
			Handler:     CreateSupplier(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/suppliers/:id",
			Method:      http.MethodGet,
			Handler:     GetSupplier(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/suppliers/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteSupplier(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Prices(service pricing.PricingService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/prices",
			Method:      http.MethodGet,
			Handler:     ListPriceEntries(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/prices",
			Method:      http.MethodPost,
			Handler:     CreatePriceEntry(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/prices/:id",
			Method:      http.MethodDelete,
			Handler:     DeletePriceEntry(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Dashboard(service pricing.PricingService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dashboard/summary",
			Method:      http.MethodGet,
			Handler:     GetProductSummaries(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard/comparison",
			Method:      http.MethodGet,
			Handler:     GetComparisonTable(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard/stats",
			Method:      http.MethodGet,
			Handler:     GetDashboardStats(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard/alerts",
			Method:      http.MethodGet,
			Handler:     GetPriceAlerts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Trends(service pricing.PricingService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/trends/series",
			Method:      http.MethodGet,
			Handler:     GetTrendSeries(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/trends/suppliers",
			Method:      http.MethodGet,
			Handler:     GetSupplierMatrix(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(alertService *scheduler.PriceAlertService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/price-alerts/run",
			Method:      http.MethodPost,
			Handler:     RunPriceAlertJob(alertService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(alertService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}
