package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"article-workflow/internal/domain"
)

// MockApprovalServiceInterface is a mock type for the ApprovalServiceInterface type
type MockApprovalServiceInterface struct {
	mock.Mock
}

type MockApprovalServiceInterface_Expecter struct {
	mock *mock.Mock
}

func (_m *MockApprovalServiceInterface) EXPECT() *MockApprovalServiceInterface_Expecter {
	return &MockApprovalServiceInterface_Expecter{mock: &_m.Mock}
}

// SubmitVote provides a mock function with given fields: ctx, req
func (_m *MockApprovalServiceInterface) SubmitVote(ctx context.Context, req domain.VoteRequest) (*domain.VoteOutcome, error) {
	ret := _m.Called(ctx, req)

	if len(ret) == 0 {
		panic("no return value specified for SubmitVote")
	}

	var r0 *domain.VoteOutcome
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.VoteRequest) (*domain.VoteOutcome, error)); ok {
		return rf(ctx, req)
	}
	if rf, ok := ret.Get(0).(func(context.Context, domain.VoteRequest) *domain.VoteOutcome); ok {
		r0 = rf(ctx, req)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*domain.VoteOutcome)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, domain.VoteRequest) error); ok {
		r1 = rf(ctx, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockApprovalServiceInterface_SubmitVote_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'SubmitVote'
type MockApprovalServiceInterface_SubmitVote_Call struct {
	*mock.Call
}

// SubmitVote is a helper method to define mock.On call
//   - ctx context.Context
//   - req domain.VoteRequest
func (_e *MockApprovalServiceInterface_Expecter) SubmitVote(ctx interface{}, req interface{}) *MockApprovalServiceInterface_SubmitVote_Call {
	return &MockApprovalServiceInterface_SubmitVote_Call{Call: _e.mock.On("SubmitVote", ctx, req)}
}

func (_c *MockApprovalServiceInterface_SubmitVote_Call) Run(run func(ctx context.Context, req domain.VoteRequest)) *MockApprovalServiceInterface_SubmitVote_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.VoteRequest))
	})
	return _c
}

func (_c *MockApprovalServiceInterface_SubmitVote_Call) Return(_a0 *domain.VoteOutcome, _a1 error) *MockApprovalServiceInterface_SubmitVote_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockApprovalServiceInterface_SubmitVote_Call) RunAndReturn(run func(context.Context, domain.VoteRequest) (*domain.VoteOutcome, error)) *MockApprovalServiceInterface_SubmitVote_Call {
	_c.Call.Return(run)
	return _c
}

// History provides a mock function with given fields: ctx, articleID
func (_m *MockApprovalServiceInterface) History(ctx context.Context, articleID string) ([]domain.VoteRecord, error) {
	ret := _m.Called(ctx, articleID)

	if len(ret) == 0 {
		panic("no return value specified for History")
	}

	var r0 []domain.VoteRecord
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) ([]domain.VoteRecord, error)); ok {
		return rf(ctx, articleID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) []domain.VoteRecord); ok {
		r0 = rf(ctx, articleID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]domain.VoteRecord)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, articleID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockApprovalServiceInterface_History_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'History'
type MockApprovalServiceInterface_History_Call struct {
	*mock.Call
}

// History is a helper method to define mock.On call
//   - ctx context.Context
//   - articleID string
func (_e *MockApprovalServiceInterface_Expecter) History(ctx interface{}, articleID interface{}) *MockApprovalServiceInterface_History_Call {
	return &MockApprovalServiceInterface_History_Call{Call: _e.mock.On("History", ctx, articleID)}
}

func (_c *MockApprovalServiceInterface_History_Call) Run(run func(ctx context.Context, articleID string)) *MockApprovalServiceInterface_History_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockApprovalServiceInterface_History_Call) Return(_a0 []domain.VoteRecord, _a1 error) *MockApprovalServiceInterface_History_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockApprovalServiceInterface_History_Call) RunAndReturn(run func(context.Context, string) ([]domain.VoteRecord, error)) *MockApprovalServiceInterface_History_Call {
	_c.Call.Return(run)
	return _c
}

// Tally provides a mock function with given fields: ctx, articleID
func (_m *MockApprovalServiceInterface) Tally(ctx context.Context, articleID string) (*domain.VoteTally, error) {
	ret := _m.Called(ctx, articleID)

	if len(ret) == 0 {
		panic("no return value specified for Tally")
	}

	var r0 *domain.VoteTally
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*domain.VoteTally, error)); ok {
		return rf(ctx, articleID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) *domain.VoteTally); ok {
		r0 = rf(ctx, articleID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*domain.VoteTally)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, articleID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockApprovalServiceInterface_Tally_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Tally'
type MockApprovalServiceInterface_Tally_Call struct {
	*mock.Call
}

// Tally is a helper method to define mock.On call
//   - ctx context.Context
//   - articleID string
func (_e *MockApprovalServiceInterface_Expecter) Tally(ctx interface{}, articleID interface{}) *MockApprovalServiceInterface_Tally_Call {
	return &MockApprovalServiceInterface_Tally_Call{Call: _e.mock.On("Tally", ctx, articleID)}
}

func (_c *MockApprovalServiceInterface_Tally_Call) Run(run func(ctx context.Context, articleID string)) *MockApprovalServiceInterface_Tally_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockApprovalServiceInterface_Tally_Call) Return(_a0 *domain.VoteTally, _a1 error) *MockApprovalServiceInterface_Tally_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockApprovalServiceInterface_Tally_Call) RunAndReturn(run func(context.Context, string) (*domain.VoteTally, error)) *MockApprovalServiceInterface_Tally_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockApprovalServiceInterface creates a new instance of MockApprovalServiceInterface. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockApprovalServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockApprovalServiceInterface {
	mock := &MockApprovalServiceInterface{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
