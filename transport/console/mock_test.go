package console

import (
	"github.com/stretchr/testify/mock"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
)

type mockGame struct {
	mock.Mock
}

func (that *mockGame) MakeMove(cell int) (entity.View, error) {
	args := that.Called(cell)
	return args.Get(0).(entity.View), args.Error(1)
}

func (that *mockGame) JumpTo(step int) (entity.View, error) {
	args := that.Called(step)
	return args.Get(0).(entity.View), args.Error(1)
}

func (that *mockGame) View() entity.View {
	args := that.Called()
	return args.Get(0).(entity.View)
}

func (that *mockGame) Restart() entity.View {
	args := that.Called()
	return args.Get(0).(entity.View)
}
