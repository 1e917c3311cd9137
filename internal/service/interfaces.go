package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/limbo/taskstars/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

type CreateAccountRequest struct {
	Email       string          `validate:"required,email,max=254"`
	DisplayName string          `validate:"required,printable_text,max=100"`
	Passcode    string          `validate:"required,passcode"`
	Tier        string          `validate:"omitempty,oneof=free basic standard premium"`
	Address     *entity.Address `validate:"omitempty"`
}

type AddChildRequest struct {
	Name   string `validate:"required,printable_text,max=50"`
	Age    int
	Avatar string `validate:"max=200"`
}

type CustomTaskRequest struct {
	Title       string `validate:"required,printable_text,max=120"`
	Description string `validate:"max=500"`
	Points      int    `validate:"min=0,max=1000"`
}

type CustomTaskResult struct {
	Task *entity.Task
	// Rewarded is false when the daily quota was used up and points were forced to 0.
	Rewarded  bool
	UsedToday int
	Quota     int
}

type CustomQuota struct {
	CanAdd    bool
	UsedToday int
	Quota     int
}

type DailyRefreshResult struct {
	Tasks     []*entity.Task
	Generated bool
}

type BatchApproval struct {
	Approved []*ApprovalOutcome
	Skipped  []uuid.UUID
}

type RegistryI interface {
	CreateAccount(ctx context.Context, req *CreateAccountRequest) (*entity.Account, error)
	Account(ctx context.Context, accountID uuid.UUID) (*entity.Account, error)
	SetTier(ctx context.Context, accountID uuid.UUID, tier entity.Tier) (*entity.Account, error)
	VerifyPasscode(ctx context.Context, accountID uuid.UUID, passcode string) error
	ChangePasscode(ctx context.Context, accountID uuid.UUID, current, next string) error
	// Sets a new passcode without the old one. verified is the email verification outcome
	ResetPasscode(ctx context.Context, accountID uuid.UUID, next string, verified bool) error

	AddChild(ctx context.Context, accountID uuid.UUID, req *AddChildRequest) (*entity.Child, error)
	Children(ctx context.Context, accountID uuid.UUID) ([]*entity.Child, error)
	Child(ctx context.Context, accountID, childID uuid.UUID) (*entity.Child, error)

	AddCustomTask(ctx context.Context, accountID, childID uuid.UUID, req *CustomTaskRequest) (*CustomTaskResult, error)
	CanAddCustomTask(ctx context.Context, accountID, childID uuid.UUID) (bool, error)
	CustomTasksToday(ctx context.Context, accountID, childID uuid.UUID) ([]*entity.Task, error)
	CustomQuota(ctx context.Context, accountID, childID uuid.UUID) (*CustomQuota, error)
	RefreshDailyTasks(ctx context.Context, accountID, childID uuid.UUID) (*DailyRefreshResult, error)
	// Lists child's tasks. A nil date lists all of them
	Tasks(ctx context.Context, accountID, childID uuid.UUID, date *entity.Date) ([]*entity.Task, error)
	Task(ctx context.Context, accountID, taskID uuid.UUID) (*entity.Task, error)
	PendingApprovals(ctx context.Context, accountID uuid.UUID) ([]*entity.Task, error)

	SubmitTask(ctx context.Context, accountID, childID, taskID uuid.UUID, sub Submission) (*entity.Task, error)
	ApproveTask(ctx context.Context, accountID, taskID uuid.UUID, passcode string) (*ApprovalOutcome, error)
	RejectTask(ctx context.Context, accountID, taskID uuid.UUID) (*entity.Task, error)
	ApproveAll(ctx context.Context, accountID uuid.UUID, passcode string) (*BatchApproval, error)
}

type EmailVerifierI interface {
	SendCode(ctx context.Context, req *SendVerificationRequest) (string, error)
	IssueCode(ctx context.Context, email, userName string) error
	CheckCode(email, code string) bool
}

type EmailSender interface {
	// Sends the verification code mail and returns provider message id
	SendVerificationEmail(ctx context.Context, toEmail, userName, code string) (string, error)
}

type ProofRequest struct {
	TaskTitle       string `json:"taskTitle"`
	TaskDescription string `json:"taskDescription"`
	ChildAge        int    `json:"childAge"`
	PhotoURL        string `json:"photoUrl"`
}

// ProofVerifier analyses a proof photo. Its answer is advisory only.
type ProofVerifier interface {
	Verify(ctx context.Context, req *ProofRequest) (*entity.Verification, error)
}
