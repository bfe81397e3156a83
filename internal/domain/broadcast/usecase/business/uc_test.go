package business

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/muhammadrizo00/Kinamax-Pro/internal/domain/broadcast/entities"
)

// mockBroadcastRepository is a mock implementation of deps.BroadcastRepository
type mockBroadcastRepository struct {
	created   *entities.Broadcast
	completed *entities.Result
}

func (m *mockBroadcastRepository) Create(ctx context.Context, broadcast *entities.Broadcast) error {
	broadcast.ID = 1
	m.created = broadcast
	return nil
}

func (m *mockBroadcastRepository) Complete(ctx context.Context, id uint, result entities.Result) error {
	m.completed = &result
	return nil
}

// mockSender fails delivery for the recipients listed in failFor
type mockSender struct {
	failFor map[int64]bool
	sentTo  []int64
}

func (m *mockSender) Send(ctx context.Context, recipientTgID int64, payload entities.Payload) error {
	if m.failFor[recipientTgID] {
		return errors.New("forbidden: bot was blocked by the user")
	}
	m.sentTo = append(m.sentTo, recipientTgID)
	return nil
}

// mockUserSource is a mock implementation of deps.UserSource
type mockUserSource struct {
	ids []int64
	err error
}

func (m *mockUserSource) ListActiveRecipientIDs(ctx context.Context) ([]int64, error) {
	return m.ids, m.err
}

// mockBroadcastEvents counts completion events
type mockBroadcastEvents struct {
	completed int
}

func (m *mockBroadcastEvents) BroadcastCompleted(ctx context.Context, broadcastID uint, sent, failed, total int, createdBy int64) error {
	m.completed++
	return nil
}

func recipientIDs(n int) []int64 {
	ids := make([]int64, n)
	for i := range ids {
		ids[i] = int64(i + 1)
	}
	return ids
}

func TestDispatch_CountsFailuresAndContinues(t *testing.T) {
	repo := &mockBroadcastRepository{}
	sender := &mockSender{failFor: map[int64]bool{3: true, 7: true}}
	events := &mockBroadcastEvents{}
	uc := NewUseCase(repo, &mockUserSource{ids: recipientIDs(10)}, sender, events, zerolog.Nop())

	payload := entities.Payload{FromChatID: 500, MessageID: 9}
	result, err := uc.Dispatch(context.Background(), payload, 42, nil)
	require.NoError(t, err)
	require.Equal(t, 8, result.Sent)
	require.Equal(t, 2, result.Failed)
	require.Equal(t, 10, result.Total)
	require.Len(t, sender.sentTo, 8)

	require.NotNil(t, repo.created)
	require.Equal(t, int64(42), repo.created.CreatedBy)
	require.Equal(t, int64(500), repo.created.PayloadChatID)
	require.Equal(t, 9, repo.created.PayloadMessageID)
	require.NotNil(t, repo.completed)
	require.Equal(t, *result, *repo.completed)
	require.Equal(t, 1, events.completed)
}

func TestDispatch_EmptyRecipientSet(t *testing.T) {
	repo := &mockBroadcastRepository{}
	uc := NewUseCase(repo, &mockUserSource{}, &mockSender{}, &mockBroadcastEvents{}, zerolog.Nop())

	result, err := uc.Dispatch(context.Background(), entities.Payload{}, 42, nil)
	require.NoError(t, err)
	require.Zero(t, result.Sent)
	require.Zero(t, result.Failed)
	require.Zero(t, result.Total)
	require.NotNil(t, repo.completed, "an empty run still gets an audit record")
}

func TestDispatch_ProgressAtCoarseSteps(t *testing.T) {
	uc := NewUseCase(&mockBroadcastRepository{}, &mockUserSource{ids: recipientIDs(100)}, &mockSender{}, &mockBroadcastEvents{}, zerolog.Nop())

	var reports []int
	_, err := uc.Dispatch(context.Background(), entities.Payload{}, 42, func(done, total int) {
		reports = append(reports, done)
		require.Equal(t, 100, total)
	})
	require.NoError(t, err)
	require.Equal(t, []int{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}, reports)
}

func TestDispatch_SmallRunReportsEveryDelivery(t *testing.T) {
	uc := NewUseCase(&mockBroadcastRepository{}, &mockUserSource{ids: recipientIDs(3)}, &mockSender{}, &mockBroadcastEvents{}, zerolog.Nop())

	var reports []int
	_, err := uc.Dispatch(context.Background(), entities.Payload{}, 42, func(done, total int) {
		reports = append(reports, done)
	})
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, reports)
}

func TestDispatch_RecipientListErrorAborts(t *testing.T) {
	srcErr := errors.New("users table gone")
	repo := &mockBroadcastRepository{}
	uc := NewUseCase(repo, &mockUserSource{err: srcErr}, &mockSender{}, &mockBroadcastEvents{}, zerolog.Nop())

	_, err := uc.Dispatch(context.Background(), entities.Payload{}, 42, nil)
	require.ErrorIs(t, err, srcErr)
	require.Nil(t, repo.created, "no audit record for an aborted run")
}
