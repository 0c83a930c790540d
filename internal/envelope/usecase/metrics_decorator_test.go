package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	envelopeDomain "github.com/allisson/gitops-secrets/internal/envelope/domain"
	envelopeUsecaseMocks "github.com/allisson/gitops-secrets/internal/envelope/usecase/mocks"
	"github.com/allisson/gitops-secrets/internal/metrics"
)

// mockBusinessMetrics is a mock implementation of metrics.BusinessMetrics for testing.
type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

var _ metrics.BusinessMetrics = (*mockBusinessMetrics)(nil)

func expectRecord(ctx context.Context, m *mockBusinessMetrics, operation, status string) {
	m.On("RecordOperation", ctx, "envelope", operation, status).Return().Once()
	m.On("RecordDuration", ctx, "envelope", operation, mock.AnythingOfType("time.Duration"), status).
		Return().
		Once()
}

// The mocks satisfy the interfaces they stand in for.
var _ EnvelopeUseCase = (*envelopeUsecaseMocks.MockEnvelopeUseCase)(nil)

func TestNewEnvelopeUseCaseWithMetrics(t *testing.T) {
	t.Parallel()

	mockUseCase := envelopeUsecaseMocks.NewMockEnvelopeUseCase(t)
	decorator := NewEnvelopeUseCaseWithMetrics(mockUseCase, &mockBusinessMetrics{})

	assert.NotNil(t, decorator)
	assert.Implements(t, (*EnvelopeUseCase)(nil), decorator)
}

func TestMetricsDecorator_Encode(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	set := envelopeDomain.SecretSet{"A": "1"}

	t.Run("Success_RecordsSuccessMetrics", func(t *testing.T) {
		t.Parallel()
		mockUseCase := envelopeUsecaseMocks.NewMockEnvelopeUseCase(t)
		mockMetrics := &mockBusinessMetrics{}

		mockUseCase.On("Encode", ctx, set).Return("base64:envelope", nil).Once()
		expectRecord(ctx, mockMetrics, "envelope_encode", "success")

		decorator := NewEnvelopeUseCaseWithMetrics(mockUseCase, mockMetrics)
		envelope, err := decorator.Encode(ctx, set)

		assert.NoError(t, err)
		assert.Equal(t, "base64:envelope", envelope)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Error_RecordsErrorMetrics", func(t *testing.T) {
		t.Parallel()
		mockUseCase := envelopeUsecaseMocks.NewMockEnvelopeUseCase(t)
		mockMetrics := &mockBusinessMetrics{}
		expectedErr := errors.New("derive failed")

		mockUseCase.On("Encode", ctx, set).Return("", expectedErr).Once()
		expectRecord(ctx, mockMetrics, "envelope_encode", "error")

		decorator := NewEnvelopeUseCaseWithMetrics(mockUseCase, mockMetrics)
		_, err := decorator.Encode(ctx, set)

		assert.Equal(t, expectedErr, err)
		mockMetrics.AssertExpectations(t)
	})
}

func TestMetricsDecorator_Decode(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("Success_RecordsSuccessMetrics", func(t *testing.T) {
		t.Parallel()
		mockUseCase := envelopeUsecaseMocks.NewMockEnvelopeUseCase(t)
		mockMetrics := &mockBusinessMetrics{}
		set := envelopeDomain.SecretSet{"A": "1"}

		mockUseCase.On("Decode", ctx, "base64:envelope").Return(set, nil).Once()
		expectRecord(ctx, mockMetrics, "envelope_decode", "success")

		decorator := NewEnvelopeUseCaseWithMetrics(mockUseCase, mockMetrics)
		got, err := decorator.Decode(ctx, "base64:envelope")

		assert.NoError(t, err)
		assert.Equal(t, set, got)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Error_RecordsErrorMetrics", func(t *testing.T) {
		t.Parallel()
		mockUseCase := envelopeUsecaseMocks.NewMockEnvelopeUseCase(t)
		mockMetrics := &mockBusinessMetrics{}

		mockUseCase.On("Decode", ctx, "garbage").Return(nil, envelopeDomain.ErrUnknownFormatTag).Once()
		expectRecord(ctx, mockMetrics, "envelope_decode", "error")

		decorator := NewEnvelopeUseCaseWithMetrics(mockUseCase, mockMetrics)
		got, err := decorator.Decode(ctx, "garbage")

		assert.ErrorIs(t, err, envelopeDomain.ErrUnknownFormatTag)
		assert.Nil(t, got)
		mockMetrics.AssertExpectations(t)
	})
}

func TestMetricsDecorator_SealOpen(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	mockUseCase := envelopeUsecaseMocks.NewMockEnvelopeUseCase(t)
	mockMetrics := &mockBusinessMetrics{}
	payload := []byte("A=1")

	mockUseCase.On("Seal", ctx, payload).Return("base64:sealed", nil).Once()
	mockUseCase.On("Open", ctx, "base64:sealed").Return(payload, nil).Once()
	expectRecord(ctx, mockMetrics, "envelope_seal", "success")
	expectRecord(ctx, mockMetrics, "envelope_open", "success")

	decorator := NewEnvelopeUseCaseWithMetrics(mockUseCase, mockMetrics)

	envelope, err := decorator.Seal(ctx, payload)
	assert.NoError(t, err)

	opened, err := decorator.Open(ctx, envelope)
	assert.NoError(t, err)
	assert.Equal(t, payload, opened)
	mockMetrics.AssertExpectations(t)
}
