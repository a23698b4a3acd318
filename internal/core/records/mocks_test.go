package records_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/woodybriggs/ledger/internal/core/domain"
	portsrepo "github.com/woodybriggs/ledger/internal/core/ports/repositories"
)

// MockRecordRepository mocks portsrepo.RecordRepositoryFacade
type MockRecordRepository struct {
	mock.Mock
}

var _ portsrepo.RecordRepositoryFacade = (*MockRecordRepository)(nil)

func (m *MockRecordRepository) FindRecordByID(ctx context.Context, recordID string, withRelations bool) (*domain.Record, error) {
	args := m.Called(ctx, recordID, withRelations)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Record), args.Error(1)
}

func (m *MockRecordRepository) ListRecordsByCounterparty(ctx context.Context, kind domain.RecordKind, counterpartyID string, limit int, nextToken *string) ([]domain.Record, *string, error) {
	args := m.Called(ctx, kind, counterpartyID, limit, nextToken)
	var token *string
	if t := args.Get(1); t != nil {
		token = t.(*string)
	}
	if args.Get(0) == nil {
		return nil, token, args.Error(2)
	}
	return args.Get(0).([]domain.Record), token, args.Error(2)
}

func (m *MockRecordRepository) CreateRecordWithJournal(ctx context.Context, record domain.Record) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockRecordRepository) UpdateRecordStatus(ctx context.Context, recordID string, status domain.RecordStatus, updatedAt time.Time) error {
	args := m.Called(ctx, recordID, status, updatedAt)
	return args.Error(0)
}
