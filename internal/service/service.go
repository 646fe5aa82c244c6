package service

import (
	authhandlers "github.com/Galina9911/test-api/internal/handlers/auth"
	citieshandlers "github.com/Galina9911/test-api/internal/handlers/cities"
	ordershandlers "github.com/Galina9911/test-api/internal/handlers/orders"
	uploadshandlers "github.com/Galina9911/test-api/internal/handlers/uploads"
	usershandlers "github.com/Galina9911/test-api/internal/handlers/users"
	"github.com/Galina9911/test-api/internal/repo"
	"github.com/Galina9911/test-api/internal/service/authservice"
	"github.com/Galina9911/test-api/internal/service/cityservice"
	"github.com/Galina9911/test-api/internal/service/orderservice"
	"github.com/Galina9911/test-api/internal/service/uploadservice"
	"github.com/Galina9911/test-api/internal/service/userservice"
	"github.com/Galina9911/test-api/pkg/auth"
)

type Services struct {
	AuthService   authhandlers.Service
	UserService   usershandlers.Service
	OrderService  ordershandlers.Service
	CityService   citieshandlers.Service
	UploadService uploadshandlers.Service
}

func New(repo *repo.Repositories, jwtService auth.JWTServiceInterface, files uploadservice.FileStore) *Services {
	return &Services{
		AuthService:   authservice.New(jwtService),
		UserService:   userservice.New(repo.UserRepo),
		OrderService:  orderservice.New(repo.OrderRepo),
		CityService:   cityservice.New(repo.CityRepo),
		UploadService: uploadservice.New(files),
	}
}
