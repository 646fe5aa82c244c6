package handlers

import (
	"net/http"

	_ "github.com/Galina9911/test-api/docs"
	authhandlers "github.com/Galina9911/test-api/internal/handlers/auth"
	citieshandlers "github.com/Galina9911/test-api/internal/handlers/cities"
	infohandlers "github.com/Galina9911/test-api/internal/handlers/info"
	ordershandlers "github.com/Galina9911/test-api/internal/handlers/orders"
	uploadshandlers "github.com/Galina9911/test-api/internal/handlers/uploads"
	usershandlers "github.com/Galina9911/test-api/internal/handlers/users"
	"github.com/Galina9911/test-api/internal/service"
	"github.com/Galina9911/test-api/pkg/auth"
	"github.com/Galina9911/test-api/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	"github.com/swaggo/swag"
	"go.uber.org/zap"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

const maxBodySize = 50 << 20

type AuthHandler interface {
	IssueToken(w http.ResponseWriter, r *http.Request)
}

type UserHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Replace(w http.ResponseWriter, r *http.Request)
	Patch(w http.ResponseWriter, r *http.Request)
	UpdateCity(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type OrderHandler interface {
	GetOrders(w http.ResponseWriter, r *http.Request)
	CreateOrder(w http.ResponseWriter, r *http.Request)
}

type CityHandler interface {
	CreateCity(w http.ResponseWriter, r *http.Request)
}

type UploadHandler interface {
	Upload(w http.ResponseWriter, r *http.Request)
	UploadBase64(w http.ResponseWriter, r *http.Request)
	GetFile(w http.ResponseWriter, r *http.Request)
}

type InfoHandler interface {
	CompanyInfo(w http.ResponseWriter, r *http.Request)
	SecureEndpoint(w http.ResponseWriter, r *http.Request)
	Error(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler   AuthHandler
	UserHandler   UserHandler
	OrderHandler  OrderHandler
	CityHandler   CityHandler
	UploadHandler UploadHandler
	InfoHandler   InfoHandler

	jwtService auth.JWTServiceInterface
}

func New(s *service.Services, jwtService auth.JWTServiceInterface) *Handlers {
	return &Handlers{
		AuthHandler:   authhandlers.New(s.AuthService),
		UserHandler:   usershandlers.New(s.UserService),
		OrderHandler:  ordershandlers.New(s.OrderService),
		CityHandler:   citieshandlers.New(s.CityService),
		UploadHandler: uploadshandlers.New(s.UploadService),
		InfoHandler:   infohandlers.New(),
		jwtService:    jwtService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		middleware.RequestSize(maxBodySize),
	)

	r.Get("/swagger.json", swaggerJSON)
	r.Get("/api-docs/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger.json"),
	))

	r.Post("/auth/token", h.AuthHandler.IssueToken)
	r.Get("/company-info", h.InfoHandler.CompanyInfo)
	r.Get("/error", h.InfoHandler.Error)
	r.Get("/uploads/{filename}", h.UploadHandler.GetFile)

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware(h.jwtService))

		r.Route("/users", func(r chi.Router) {
			r.Get("/", h.UserHandler.List)
			r.Post("/", h.UserHandler.Create)
			r.Route("/{id}", func(r chi.Router) {
				r.Put("/", h.UserHandler.Replace)
				r.Patch("/", h.UserHandler.Patch)
				r.With(auth.RequireRole(auth.RoleAdmin)).Delete("/", h.UserHandler.Delete)
				r.Put("/city", h.UserHandler.UpdateCity)
				r.Get("/orders", h.OrderHandler.GetOrders)
				r.Post("/orders", h.OrderHandler.CreateOrder)
			})
		})
		r.Post("/cities", h.CityHandler.CreateCity)
		r.Get("/secure-endpoint", h.InfoHandler.SecureEndpoint)
		r.Post("/upload", h.UploadHandler.Upload)
		r.Post("/upload-base64", h.UploadHandler.UploadBase64)
	})

	return r
}

func swaggerJSON(w http.ResponseWriter, _ *http.Request) {
	doc, err := swag.ReadDoc()
	if err != nil {
		zap.L().Error("can't read swagger doc", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write([]byte(doc)); err != nil {
		zap.L().Error("can't write swagger doc", zap.Error(err))
	}
}
