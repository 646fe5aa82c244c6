package repo

import (
	"testing"

	"github.com/Galina9911/test-api/internal/pg"
	cityrepo "github.com/Galina9911/test-api/internal/repo/city-repo"
	orderrepo "github.com/Galina9911/test-api/internal/repo/order-repo"
	userrepo "github.com/Galina9911/test-api/internal/repo/user-repo"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)
	mockTxManager := pg.NewMockTXManager(ctrl)

	return New(mockDB, mockTxManager), mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.UserRepo)
	assert.NotNil(t, repo.OrderRepo)
	assert.NotNil(t, repo.CityRepo)

	assert.IsType(t, &userrepo.Repository{}, repo.UserRepo)
	assert.IsType(t, &orderrepo.Repository{}, repo.OrderRepo)
	assert.IsType(t, &cityrepo.Repository{}, repo.CityRepo)

	assert.NoError(t, mock.ExpectationsWereMet())
}
