package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	errorvalues "github.com/limbo/taskstars/internal/error_values"
	"github.com/limbo/taskstars/internal/service"
	"github.com/limbo/taskstars/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailRateLimiter(t *testing.T) {
	t.Parallel()
	clock := service.NewFixedClock(testNow)
	rl := service.NewEmailRateLimiter(clock, 5, time.Hour)

	for i := 0; i < 5; i++ {
		ok, _ := rl.Allow("parent@example.com")
		assert.True(t, ok, "request %d", i+1)
	}
	ok, wait := rl.Allow("PARENT@example.com ")
	assert.False(t, ok)
	assert.Equal(t, time.Hour, wait)

	other, _ := rl.Allow("other@example.com")
	assert.True(t, other)

	clock.Advance(40 * time.Minute)
	ok, wait = rl.Allow("parent@example.com")
	assert.False(t, ok)
	assert.Equal(t, 20*time.Minute, wait)

	clock.Advance(20 * time.Minute)
	ok, _ = rl.Allow("parent@example.com")
	assert.True(t, ok)
}

func TestEmailRateLimiterPrune(t *testing.T) {
	t.Parallel()
	clock := service.NewFixedClock(testNow)
	rl := service.NewEmailRateLimiter(clock, 1, time.Minute)
	rl.Allow("a@example.com")
	clock.Advance(30 * time.Second)
	rl.Allow("b@example.com")
	clock.Advance(31 * time.Second)

	assert.Equal(t, 1, rl.Prune())
	ok, _ := rl.Allow("b@example.com")
	assert.False(t, ok)

	clock.Advance(30 * time.Second)
	assert.Equal(t, 1, rl.Prune())
	ok, _ = rl.Allow("b@example.com")
	assert.True(t, ok)
}

func TestVerificationCodes(t *testing.T) {
	t.Parallel()
	clock := service.NewFixedClock(testNow)
	codes := service.NewVerificationCodes(clock, 15*time.Minute)

	code, err := service.NewVerificationCode()
	require.NoError(t, err)
	assert.Len(t, code, 6)
	expiresAt := codes.Store("Parent@Example.com", code)
	assert.Equal(t, testNow.Add(15*time.Minute), expiresAt)

	t.Run("wrong code keeps the issued one", func(t *testing.T) {
		wrong := "000000"
		if code == wrong {
			wrong = "111111"
		}
		assert.False(t, codes.Check("parent@example.com", wrong))
	})
	t.Run("matching code is consumed", func(t *testing.T) {
		assert.True(t, codes.Check("parent@example.com", code))
		assert.False(t, codes.Check("parent@example.com", code))
	})
	t.Run("expired code", func(t *testing.T) {
		code := "424242"
		codes.Store("late@example.com", code)
		clock.Advance(15 * time.Minute)
		assert.False(t, codes.Check("late@example.com", code))
	})
	t.Run("unknown email", func(t *testing.T) {
		assert.False(t, codes.Check("nobody@example.com", "123456"))
	})
}

func TestVerificationCodesWrongGuesses(t *testing.T) {
	t.Parallel()
	codes := service.NewVerificationCodes(service.NewFixedClock(testNow), 15*time.Minute)

	t.Run("code dropped after five wrong guesses", func(t *testing.T) {
		codes.Store("parent@example.com", "123456")
		for i := 0; i < 5; i++ {
			assert.False(t, codes.Check("parent@example.com", "000000"), "guess %d", i+1)
		}
		assert.False(t, codes.Check("parent@example.com", "123456"))
	})
	t.Run("fewer wrong guesses keep the code", func(t *testing.T) {
		codes.Store("other@example.com", "654321")
		for i := 0; i < 4; i++ {
			assert.False(t, codes.Check("other@example.com", "000000"))
		}
		assert.True(t, codes.Check("other@example.com", "654321"))
	})
	t.Run("new code resets the count", func(t *testing.T) {
		codes.Store("third@example.com", "111111")
		for i := 0; i < 4; i++ {
			codes.Check("third@example.com", "000000")
		}
		codes.Store("third@example.com", "222222")
		assert.False(t, codes.Check("third@example.com", "000000"))
		assert.True(t, codes.Check("third@example.com", "222222"))
	})
}

func newVerificationService(t *testing.T) (*service.EmailVerificationService, *mocks.MockEmailSender, *service.FixedClock) {
	t.Helper()
	ctrl := gomock.NewController(t)
	sender := mocks.NewMockEmailSender(ctrl)
	clock := service.NewFixedClock(testNow)
	svc := service.NewEmailVerificationService(
		service.NewEmailRateLimiter(clock, 5, time.Hour),
		service.NewVerificationCodes(clock, 15*time.Minute),
		sender,
	)
	return svc, sender, clock
}

func TestSendCode(t *testing.T) {
	t.Parallel()
	svc, sender, _ := newVerificationService(t)
	ctx := context.Background()
	testCases := []struct {
		Desc         string
		Req          *service.SendVerificationRequest
		ExpectedID   string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc:       "success",
			Req:        &service.SendVerificationRequest{Email: "Parent@Example.com", Code: "123456", UserName: "Alex"},
			ExpectedID: "msg-1",
			MockPrepFunc: func() {
				sender.EXPECT().SendVerificationEmail(gomock.Any(), "parent@example.com", "Alex", "123456").Return("msg-1", nil)
			},
		},
		{
			Desc:         "bad email",
			Req:          &service.SendVerificationRequest{Email: "not-an-email", Code: "123456", UserName: "Alex"},
			Error:        errorvalues.ErrValidation,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "short code",
			Req:          &service.SendVerificationRequest{Email: "parent@example.com", Code: "12345", UserName: "Alex"},
			Error:        errorvalues.ErrValidation,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "code with letters",
			Req:          &service.SendVerificationRequest{Email: "parent@example.com", Code: "12a456", UserName: "Alex"},
			Error:        errorvalues.ErrValidation,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "missing name",
			Req:          &service.SendVerificationRequest{Email: "parent@example.com", Code: "123456"},
			Error:        errorvalues.ErrValidation,
			MockPrepFunc: func() {},
		},
		{
			Desc:  "sender failure",
			Req:   &service.SendVerificationRequest{Email: "parent@example.com", Code: "123456", UserName: "Alex"},
			Error: errors.New("email sender error: throttled"),
			MockPrepFunc: func() {
				sender.EXPECT().SendVerificationEmail(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("throttled"))
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			id, err := svc.SendCode(ctx, tc.Req)
			if tc.Error != nil {
				if errors.Is(tc.Error, errorvalues.ErrValidation) {
					assert.ErrorIs(t, err, tc.Error)
				} else {
					assert.EqualError(t, err, tc.Error.Error())
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.ExpectedID, id)
		})
	}
}

func TestSendCodeRateLimit(t *testing.T) {
	t.Parallel()
	svc, sender, clock := newVerificationService(t)
	ctx := context.Background()
	req := &service.SendVerificationRequest{Email: "parent@example.com", Code: "123456", UserName: "Alex"}
	sender.EXPECT().SendVerificationEmail(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("msg", nil).Times(6)

	for i := 0; i < 5; i++ {
		_, err := svc.SendCode(ctx, req)
		require.NoError(t, err, "request %d", i+1)
	}
	_, err := svc.SendCode(ctx, req)
	assert.ErrorIs(t, err, errorvalues.ErrRateLimited)
	var rle *service.RateLimitError
	require.True(t, errors.As(err, &rle))
	assert.Equal(t, time.Hour, rle.RetryAfter)
	assert.Equal(t, errorvalues.CategoryRetry, errorvalues.CategoryOf(err))

	clock.Advance(time.Hour)
	_, err = svc.SendCode(ctx, req)
	assert.NoError(t, err)
}

func TestIssueAndCheckCode(t *testing.T) {
	t.Parallel()
	svc, sender, _ := newVerificationService(t)
	ctx := context.Background()
	var sent string
	sender.EXPECT().SendVerificationEmail(gomock.Any(), "parent@example.com", "Alex", gomock.Any()).DoAndReturn(
		func(_ context.Context, _, _, code string) (string, error) {
			sent = code
			return "msg", nil
		})

	require.NoError(t, svc.IssueCode(ctx, "parent@example.com", "Alex"))
	require.Len(t, sent, 6)
	assert.True(t, svc.CheckCode("parent@example.com", sent))
	assert.False(t, svc.CheckCode("parent@example.com", sent))
}

func TestIssueCodeRateLimitedKeepsMailedCode(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	sender := mocks.NewMockEmailSender(ctrl)
	clock := service.NewFixedClock(testNow)
	svc := service.NewEmailVerificationService(
		service.NewEmailRateLimiter(clock, 1, time.Hour),
		service.NewVerificationCodes(clock, 15*time.Minute),
		sender,
	)
	ctx := context.Background()
	var mailed string
	sender.EXPECT().SendVerificationEmail(gomock.Any(), "parent@example.com", "Alex", gomock.Any()).DoAndReturn(
		func(_ context.Context, _, _, code string) (string, error) {
			mailed = code
			return "msg", nil
		}).Times(1)

	require.NoError(t, svc.IssueCode(ctx, "parent@example.com", "Alex"))
	err := svc.IssueCode(ctx, "parent@example.com", "Alex")
	assert.ErrorIs(t, err, errorvalues.ErrRateLimited)
	assert.True(t, svc.CheckCode("parent@example.com", mailed))
}

func TestIssueCodeSendFailureKeepsLiveCode(t *testing.T) {
	t.Parallel()
	svc, sender, _ := newVerificationService(t)
	ctx := context.Background()
	var mailed string
	gomock.InOrder(
		sender.EXPECT().SendVerificationEmail(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _, _, code string) (string, error) {
				mailed = code
				return "msg", nil
			}),
		sender.EXPECT().SendVerificationEmail(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("throttled")),
	)

	require.NoError(t, svc.IssueCode(ctx, "parent@example.com", "Alex"))
	assert.Error(t, svc.IssueCode(ctx, "parent@example.com", "Alex"))
	assert.True(t, svc.CheckCode("parent@example.com", mailed))
}
