package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"zeneasy/config"
	"zeneasy/internal/domain/repository"
	mockRepo "zeneasy/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		OTP:     &config.OTPConfig{},
		Rating:  &config.RatingConfig{},
		Storage: &config.StorageConfig{MaxUploadSize: 1024},
	}
}

// nopMetrics satisfies service.MetricsRecorder for tests that do not assert counters.
type nopMetrics struct{}

func (nopMetrics) OTPIssued(string)          {}
func (nopMetrics) OTPValidated(string)       {}
func (nopMetrics) LinkCompleted(_, _ string) {}
func (nopMetrics) RatingAppended()           {}
func (nopMetrics) PushesSent(_, _ int)       {}

// expectTransaction makes the mocked manager run the closure against factory,
// returning whatever the closure returns.
func expectTransaction(ctx context.Context, txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

// txRepos holds transaction-bound repository mocks behind a factory mock.
// Only the accessors a test actually uses are expected.
type txRepos struct {
	factory *mockRepo.MockRepositoryFactory
	users   *mockRepo.MockUserRepository
	rents   *mockRepo.MockRentRepository
	profile *mockRepo.MockServiceProfileRepository
	links   *mockRepo.MockOwnerLinkRepository
}

func newTxRepos(t *testing.T) *txRepos {
	return &txRepos{
		factory: mockRepo.NewMockRepositoryFactory(t),
		users:   mockRepo.NewMockUserRepository(t),
		rents:   mockRepo.NewMockRentRepository(t),
		profile: mockRepo.NewMockServiceProfileRepository(t),
		links:   mockRepo.NewMockOwnerLinkRepository(t),
	}
}
