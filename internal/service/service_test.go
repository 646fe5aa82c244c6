package service

import (
	"testing"

	"github.com/Galina9911/test-api/internal/repo"
	"github.com/Galina9911/test-api/internal/service/cityservice"
	"github.com/Galina9911/test-api/internal/service/orderservice"
	"github.com/Galina9911/test-api/internal/service/uploadservice"
	"github.com/Galina9911/test-api/internal/service/userservice"
	"github.com/Galina9911/test-api/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)

	repos := &repo.Repositories{
		UserRepo:  userservice.NewMockRepo(ctrl),
		OrderRepo: orderservice.NewMockRepo(ctrl),
		CityRepo:  cityservice.NewMockRepo(ctrl),
	}

	services := New(repos, auth.NewMockJWTServiceInterface(ctrl), uploadservice.NewMockFileStore(ctrl))

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.UserService)
	assert.NotNil(t, services.OrderService)
	assert.NotNil(t, services.CityService)
	assert.NotNil(t, services.UploadService)
}
