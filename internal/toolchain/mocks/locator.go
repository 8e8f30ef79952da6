// Package mocks provides testify mocks for toolchain interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Locator is a mock toolchain.Locator.
type Locator struct {
	mock.Mock
}

// NewLocator creates a Locator mock whose expectations are asserted when
// the test ends.
func NewLocator(t interface {
	mock.TestingT
	Cleanup(func())
}) *Locator {
	m := &Locator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Locate implements toolchain.Locator.
func (m *Locator) Locate(ctx context.Context, name string) (string, error) {
	args := m.Called(ctx, name)
	return args.String(0), args.Error(1)
}

// Present configures the mock to resolve each name to /usr/bin/<name>.
func (m *Locator) Present(names ...string) *Locator {
	for _, name := range names {
		m.On("Locate", mock.Anything, name).Return("/usr/bin/"+name, nil).Maybe()
	}
	return m
}

// Absent configures the mock to fail lookup for each name.
func (m *Locator) Absent(err error, names ...string) *Locator {
	for _, name := range names {
		m.On("Locate", mock.Anything, name).Return("", err).Maybe()
	}
	return m
}
