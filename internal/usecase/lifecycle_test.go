package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"fine-reconciliation/internal/domain"
	"fine-reconciliation/internal/usecase"
	mock_usecase "fine-reconciliation/internal/usecase/mocks"
)

func newLifecycle(api *mock_usecase.MockFineAPI) *usecase.Lifecycle {
	norm := usecase.NewNormalizer(api, decimal.NewFromInt(1))
	loader := usecase.NewLoader(api, norm)
	return usecase.NewLifecycle(api, loader)
}

func TestLifecycle_Waive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	refreshed := []domain.RawRecord{
		{"id": "f1", "bookTitle": "Dune", "dueDate": "2024-05-01T00:00:00Z", "fineAmount": float64(10), "status": "Waived"},
	}

	tests := []struct {
		name        string
		bookIssueID string
		reason      string
		setup       func(api *mock_usecase.MockFineAPI)
		wantErr     bool
		wantValid   bool
	}{
		{
			name:        "successful waive refetches the collection",
			bookIssueID: "issue-1",
			reason:      "book lost in transit",
			setup: func(api *mock_usecase.MockFineAPI) {
				api.EXPECT().WaiveFine(gomock.Any(), "issue-1", "book lost in transit", "see ticket 42").Return(nil)
				api.EXPECT().FetchAllFines(gomock.Any()).Return(refreshed, nil)
			},
		},
		{
			name:        "empty reason fails before any network call",
			bookIssueID: "issue-1",
			reason:      "",
			setup:       func(api *mock_usecase.MockFineAPI) {}, // any call would fail the test
			wantErr:     true,
			wantValid:   true,
		},
		{
			name:        "whitespace reason fails before any network call",
			bookIssueID: "issue-1",
			reason:      "   ",
			setup:       func(api *mock_usecase.MockFineAPI) {},
			wantErr:     true,
			wantValid:   true,
		},
		{
			name:        "missing book issue id fails locally",
			bookIssueID: "",
			reason:      "book lost in transit",
			setup:       func(api *mock_usecase.MockFineAPI) {},
			wantErr:     true,
			wantValid:   true,
		},
		{
			name:        "remote failure propagates",
			bookIssueID: "issue-1",
			reason:      "book lost in transit",
			setup: func(api *mock_usecase.MockFineAPI) {
				api.EXPECT().WaiveFine(gomock.Any(), "issue-1", "book lost in transit", "see ticket 42").
					Return(&domain.RemoteError{Op: "POST /fine/waive", StatusCode: 500, Message: "fine already settled"})
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := mock_usecase.NewMockFineAPI(ctrl)
			tt.setup(api)

			lc := newLifecycle(api)
			fines, err := lc.Waive(context.Background(), tt.bookIssueID, tt.reason, "see ticket 42")

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, fines)
				var validation *domain.ValidationError
				assert.Equal(t, tt.wantValid, errors.As(err, &validation))
			} else {
				assert.NoError(t, err)
				assert.Len(t, fines, 1)
				assert.Equal(t, domain.StatusWaived, fines[0].Status)
			}
		})
	}
}

func TestLifecycle_Adjust(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("successful adjust refetches", func(t *testing.T) {
		api := mock_usecase.NewMockFineAPI(ctrl)
		api.EXPECT().AdjustFine(gomock.Any(), "f1", decimal.NewFromInt(25), "recount after appeal").Return(nil)
		api.EXPECT().FetchAllFines(gomock.Any()).Return([]domain.RawRecord{}, nil)

		lc := newLifecycle(api)
		fines, err := lc.Adjust(context.Background(), "f1", decimal.NewFromInt(25), "recount after appeal")
		assert.NoError(t, err)
		assert.NotNil(t, fines)
	})

	t.Run("negative amount fails locally", func(t *testing.T) {
		api := mock_usecase.NewMockFineAPI(ctrl)

		lc := newLifecycle(api)
		_, err := lc.Adjust(context.Background(), "f1", decimal.NewFromInt(-1), "recount")

		var validation *domain.ValidationError
		assert.ErrorAs(t, err, &validation)
		assert.Equal(t, "newAmount", validation.Field)
	})

	t.Run("empty reason fails locally", func(t *testing.T) {
		api := mock_usecase.NewMockFineAPI(ctrl)

		lc := newLifecycle(api)
		_, err := lc.Adjust(context.Background(), "f1", decimal.NewFromInt(5), "")

		var validation *domain.ValidationError
		assert.ErrorAs(t, err, &validation)
	})
}

func TestLifecycle_Pay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("successful payment returns the created record", func(t *testing.T) {
		api := mock_usecase.NewMockFineAPI(ctrl)

		created := domain.Payment{
			ID:     "p1",
			FineID: "f1",
			Amount: decimal.NewFromInt(10),
			Method: domain.MethodCard,
			Status: domain.PaymentCompleted,
		}
		api.EXPECT().
			PayFine(gomock.Any(), "f1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, req domain.PaymentRequest) (domain.Payment, error) {
				// The lifecycle attaches a client reference when missing.
				assert.NotEmpty(t, req.ClientReference)
				assert.Equal(t, domain.MethodCard, req.Method)
				return created, nil
			})
		api.EXPECT().FetchAllFines(gomock.Any()).Return([]domain.RawRecord{}, nil)

		lc := newLifecycle(api)
		payment, fines, err := lc.Pay(context.Background(), "f1", domain.PaymentRequest{
			Amount: decimal.NewFromInt(10),
			Method: domain.MethodCard,
		})

		assert.NoError(t, err)
		assert.Equal(t, created, payment)
		assert.NotNil(t, fines)
	})

	t.Run("non-positive amount fails locally", func(t *testing.T) {
		api := mock_usecase.NewMockFineAPI(ctrl)

		lc := newLifecycle(api)
		_, _, err := lc.Pay(context.Background(), "f1", domain.PaymentRequest{
			Amount: decimal.Zero,
			Method: domain.MethodCash,
		})

		var validation *domain.ValidationError
		assert.ErrorAs(t, err, &validation)
		assert.Equal(t, "amount", validation.Field)
	})

	t.Run("waived is not an accepted payment method", func(t *testing.T) {
		api := mock_usecase.NewMockFineAPI(ctrl)

		lc := newLifecycle(api)
		_, _, err := lc.Pay(context.Background(), "f1", domain.PaymentRequest{
			Amount: decimal.NewFromInt(5),
			Method: domain.MethodWaived,
		})

		var validation *domain.ValidationError
		assert.ErrorAs(t, err, &validation)
		assert.Equal(t, "paymentMethod", validation.Field)
	})

	t.Run("remote failure propagates", func(t *testing.T) {
		api := mock_usecase.NewMockFineAPI(ctrl)
		api.EXPECT().
			PayFine(gomock.Any(), "f1", gomock.Any()).
			Return(domain.Payment{}, &domain.RemoteError{Op: "POST /payment/pay/f1", StatusCode: 409, Message: "fine already paid"})

		lc := newLifecycle(api)
		_, _, err := lc.Pay(context.Background(), "f1", domain.PaymentRequest{
			Amount: decimal.NewFromInt(5),
			Method: domain.MethodCash,
		})

		var remote *domain.RemoteError
		assert.ErrorAs(t, err, &remote)
		assert.Equal(t, "fine already paid", remote.Message)
	})
}

func TestLifecycle_Receipt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("downloads the blob", func(t *testing.T) {
		api := mock_usecase.NewMockFineAPI(ctrl)
		api.EXPECT().FetchReceipt(gomock.Any(), "p1").Return([]byte("%PDF-1.4"), nil)

		lc := newLifecycle(api)
		blob, err := lc.Receipt(context.Background(), "p1")
		assert.NoError(t, err)
		assert.Equal(t, []byte("%PDF-1.4"), blob)
	})

	t.Run("empty payment id fails locally", func(t *testing.T) {
		api := mock_usecase.NewMockFineAPI(ctrl)

		lc := newLifecycle(api)
		_, err := lc.Receipt(context.Background(), "")

		var validation *domain.ValidationError
		assert.ErrorAs(t, err, &validation)
	})
}
