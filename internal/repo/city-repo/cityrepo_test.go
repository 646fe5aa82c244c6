package cityrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/Galina9911/test-api/internal/domain"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func TestRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mock.Close()
	repo := New(mock)
	query := regexp.QuoteMeta("INSERT INTO cities (name, country) VALUES ($1, $2) RETURNING id")

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.City
	}{
		{
			name: "Create city",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("Kazan", "Russia").
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(4))
			},
			result: &domain.City{ID: 4, Name: "Kazan", Country: "Russia"},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("Kazan", "Russia").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), &domain.City{Name: "Kazan", Country: "Russia"})
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
