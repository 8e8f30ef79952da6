package doctor

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockCheck is a testify mock for Check.
type MockCheck struct {
	mock.Mock
}

// MockCheck_Expecter builds typed expectations.
type MockCheck_Expecter struct {
	mock *mock.Mock
}

func (_m *MockCheck) EXPECT() *MockCheck_Expecter {
	return &MockCheck_Expecter{mock: &_m.Mock}
}

func (_m *MockCheck) Name() string {
	ret := _m.Called()
	return ret.String(0)
}

func (_m *MockCheck) Category() string {
	ret := _m.Called()
	return ret.String(0)
}

func (_m *MockCheck) Run(ctx context.Context) *CheckResult {
	ret := _m.Called(ctx)
	r, _ := ret.Get(0).(*CheckResult)
	return r
}

// MockCheck_Name_Call wraps an expectation on Name.
type MockCheck_Name_Call struct {
	*mock.Call
}

func (_e *MockCheck_Expecter) Name() *MockCheck_Name_Call {
	return &MockCheck_Name_Call{Call: _e.mock.On("Name")}
}

func (_c *MockCheck_Name_Call) Return(name string) *MockCheck_Name_Call {
	_c.Call.Return(name)
	return _c
}

func (_c *MockCheck_Name_Call) Maybe() *MockCheck_Name_Call {
	_c.Call.Maybe()
	return _c
}

// MockCheck_Run_Call wraps an expectation on Run.
type MockCheck_Run_Call struct {
	*mock.Call
}

func (_e *MockCheck_Expecter) Run(ctx any) *MockCheck_Run_Call {
	return &MockCheck_Run_Call{Call: _e.mock.On("Run", ctx)}
}

func (_c *MockCheck_Run_Call) Return(result *CheckResult) *MockCheck_Run_Call {
	_c.Call.Return(result)
	return _c
}

// NewMockCheck creates a MockCheck whose expectations are asserted when the
// test ends.
func NewMockCheck(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCheck {
	m := &MockCheck{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
