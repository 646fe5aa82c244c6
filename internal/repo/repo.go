package repo

import (
	"github.com/Galina9911/test-api/internal/pg"
	cityrepo "github.com/Galina9911/test-api/internal/repo/city-repo"
	orderrepo "github.com/Galina9911/test-api/internal/repo/order-repo"
	userrepo "github.com/Galina9911/test-api/internal/repo/user-repo"
	"github.com/Galina9911/test-api/internal/service/cityservice"
	"github.com/Galina9911/test-api/internal/service/orderservice"
	"github.com/Galina9911/test-api/internal/service/userservice"
)

type Repositories struct {
	UserRepo  userservice.Repo
	OrderRepo orderservice.Repo
	CityRepo  cityservice.Repo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:  userrepo.New(conn, txManager),
		OrderRepo: orderrepo.New(conn),
		CityRepo:  cityrepo.New(conn),
	}
}
