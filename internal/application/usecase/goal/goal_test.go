package goal_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/finance-planner/backend/internal/application/adapter/mocks"
	"github.com/finance-planner/backend/internal/application/usecase/goal"
	"github.com/finance-planner/backend/internal/domain/entity"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
)

func TestCreateGoal_Validation(t *testing.T) {
	tests := []struct {
		name   string
		input  goal.CreateGoalInput
		code   domainerror.GoalErrorCode
		stored bool
	}{
		{
			name:   "valid",
			input:  goal.CreateGoalInput{Title: "Emergency fund", TargetAmount: decimal.NewFromInt(10000), SavedAmount: decimal.NewFromInt(250)},
			stored: true,
		},
		{
			name:  "missing title",
			input: goal.CreateGoalInput{TargetAmount: decimal.NewFromInt(100)},
			code:  domainerror.ErrCodeGoalTitleRequired,
		},
		{
			name:  "zero target",
			input: goal.CreateGoalInput{Title: "Bike", TargetAmount: decimal.Zero},
			code:  domainerror.ErrCodeInvalidTargetAmount,
		},
		{
			name:  "negative saved",
			input: goal.CreateGoalInput{Title: "Bike", TargetAmount: decimal.NewFromInt(500), SavedAmount: decimal.NewFromInt(-1)},
			code:  domainerror.ErrCodeInvalidSavedAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockGoalRepository(ctrl)
			if tt.stored {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			}

			tt.input.UserID = uuid.New()
			out, err := goal.NewCreateGoalUseCase(repo).Execute(context.Background(), tt.input)

			if !tt.stored {
				var goalErr *domainerror.GoalError
				require.True(t, errors.As(err, &goalErr))
				assert.Equal(t, tt.code, goalErr.Code)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, entity.GoalStatusActive, out.Goal.Status)
		})
	}
}

func TestUpdateGoal_CompletesWhenTargetReached(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockGoalRepository(ctrl)

	userID := uuid.New()
	existing := entity.NewSavingsGoal(userID, "Camera", decimal.NewFromInt(800), decimal.NewFromInt(100), nil)

	repo.EXPECT().FindByID(gomock.Any(), existing.ID, userID).Return(existing, nil)
	repo.EXPECT().Update(gomock.Any(), existing).Return(nil)

	saved := decimal.NewFromInt(800)
	out, err := goal.NewUpdateGoalUseCase(repo).Execute(context.Background(), goal.UpdateGoalInput{
		GoalID:      existing.ID,
		UserID:      userID,
		SavedAmount: &saved,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.GoalStatusCompleted, out.Goal.Status)
	assert.Equal(t, "100", out.Goal.Progress().String())
}

func TestDeleteGoal_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockGoalRepository(ctrl)
	repo.EXPECT().Delete(gomock.Any(), gomock.Any(), gomock.Any()).Return(domainerror.ErrGoalNotFound)

	err := goal.NewDeleteGoalUseCase(repo).Execute(context.Background(), goal.DeleteGoalInput{GoalID: uuid.New(), UserID: uuid.New()})
	assert.ErrorIs(t, err, domainerror.ErrGoalNotFound)
}
