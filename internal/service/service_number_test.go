package service

import (
	"context"
	"testing"

	"github.com/Lysande2902/Numeros/internal/logger"
	"github.com/Lysande2902/Numeros/internal/store"
	"github.com/Lysande2902/Numeros/internal/store/mock"
	"github.com/Lysande2902/Numeros/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestNumberService(t *testing.T) (NumberService, *mock.MockNumberRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockNumberRepository(ctrl)
	return NewNumberService(repo, logger.Nop()), repo
}

// TestNumberCreate_DerivesParity verifies the Even/Odd derivation on create
// and that whatever the client claims for parity never reaches the store.
func TestNumberCreate_DerivesParity(t *testing.T) {
	cases := []struct {
		value  int64
		parity string
	}{
		{0, models.ParityEven},
		{1, models.ParityOdd},
		{2, models.ParityEven},
		{41, models.ParityOdd},
		{1000, models.ParityEven},
	}

	for _, c := range cases {
		svc, repo := newTestNumberService(t)
		repo.EXPECT().
			Create(gomock.Any(), models.Number{Value: c.value, Parity: c.parity}).
			Return(models.Number{ID: 1, Value: c.value, Parity: c.parity}, nil)

		created, err := svc.Create(context.Background(), c.value)
		require.NoError(t, err)
		assert.Equal(t, c.parity, created.Parity, "value %d", c.value)
	}
}

// TestNumberCreate_NegativeRejected verifies values below zero never reach
// the repository.
func TestNumberCreate_NegativeRejected(t *testing.T) {
	svc, _ := newTestNumberService(t)

	_, err := svc.Create(context.Background(), -1)
	require.ErrorIs(t, err, ErrNegativeNumber)
}

// TestNumberUpdate_IDMismatch verifies the path/body id check fires before
// anything is written.
func TestNumberUpdate_IDMismatch(t *testing.T) {
	svc, _ := newTestNumberService(t)

	err := svc.Update(context.Background(), 1, models.Number{ID: 2, Value: 4})
	require.ErrorIs(t, err, ErrIDMismatch)
}

// TestNumberUpdate_RederivesParity verifies a full replace recomputes the
// parity from the new value.
func TestNumberUpdate_RederivesParity(t *testing.T) {
	svc, repo := newTestNumberService(t)

	repo.EXPECT().
		Update(gomock.Any(), models.Number{ID: 7, Value: 3, Parity: models.ParityOdd}).
		Return(nil)

	err := svc.Update(context.Background(), 7, models.Number{ID: 7, Value: 3, Parity: "Even"})
	require.NoError(t, err)
}

// TestNumberUpdate_ConflictPassesThrough verifies repository conflicts reach
// the caller unchanged so the handler can apply its mapping policy.
func TestNumberUpdate_ConflictPassesThrough(t *testing.T) {
	svc, repo := newTestNumberService(t)

	repo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		Return(store.ErrUpdateConflict)

	err := svc.Update(context.Background(), 7, models.Number{ID: 7, Value: 2})
	require.ErrorIs(t, err, store.ErrUpdateConflict)
}

// TestNumberList_EnvelopeMath checks the documented pagination example:
// 25 records at pageSize 10 make 3 pages; page 3 holds the last 5 and has a
// previous page but no next one.
func TestNumberList_EnvelopeMath(t *testing.T) {
	svc, repo := newTestNumberService(t)

	lastPage := make([]models.Number, 5)
	repo.EXPECT().Count(gomock.Any()).Return(25, nil)
	repo.EXPECT().List(gomock.Any(), uint64(10), uint64(20)).Return(lastPage, nil)

	resp, err := svc.List(context.Background(), 3, 10)
	require.NoError(t, err)

	assert.Len(t, resp.Data, 5)
	assert.Equal(t, 3, resp.Pagination.CurrentPage)
	assert.Equal(t, 25, resp.Pagination.TotalRecords)
	assert.Equal(t, 3, resp.Pagination.TotalPages)
	assert.False(t, resp.Pagination.HasNextPage)
	assert.True(t, resp.Pagination.HasPreviousPage)
	require.NotNil(t, resp.Pagination.PreviousPage)
	assert.Equal(t, 2, *resp.Pagination.PreviousPage)
	assert.Nil(t, resp.Pagination.NextPage)
}

// TestNumberList_ClampsInputs verifies out-of-range paging falls back to
// page 1 and pageSize 10.
func TestNumberList_ClampsInputs(t *testing.T) {
	cases := []struct {
		name           string
		page, pageSize int
	}{
		{"zero page", 0, 10},
		{"negative page", -5, 10},
		{"oversized pageSize", 1, 500},
		{"zero pageSize", 1, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			svc, repo := newTestNumberService(t)

			repo.EXPECT().Count(gomock.Any()).Return(0, nil)
			repo.EXPECT().List(gomock.Any(), uint64(10), uint64(0)).Return([]models.Number{}, nil)

			resp, err := svc.List(context.Background(), c.page, c.pageSize)
			require.NoError(t, err)
			assert.Equal(t, 1, resp.Pagination.CurrentPage)
			assert.Equal(t, 10, resp.Pagination.PageSize)
		})
	}
}
