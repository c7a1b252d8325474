package adding

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"pgregory.net/rapid"
)

const (
	methodLen    = "Len"
	methodAt     = "At"
	methodAll    = "All"
	methodValues = "Values"
)

type mockList struct {
	mock.Mock
}

func (m *mockList) Len() int { return m.Called().Int(0) }

func (m *mockList) At(i int) int { return m.Called(i).Int(0) }

func (m *mockList) Values() []int {
	v, _ := m.Called().Get(0).([]int)
	return v
}

func (m *mockList) All() iter.Seq[int] {
	seq, _ := m.Called().Get(0).(iter.Seq[int])
	return seq
}

// spyList wraps a real List and counts each access path.
type spyList struct {
	List
	lens, ats, alls, values int
}

func (s *spyList) Len() int { s.lens++; return s.List.Len() }

func (s *spyList) At(i int) int { s.ats++; return s.List.At(i) }

func (s *spyList) All() iter.Seq[int] { s.alls++; return s.List.All() }

func (s *spyList) Values() []int { s.values++; return s.List.Values() }

func TestTotalUsingLoop_WithMock(t *testing.T) {
	list := new(mockList)
	list.On(methodLen).Return(3).Once()

	inRange := mock.MatchedBy(func(i int) bool { return i >= 0 && i < 3 })
	list.On(methodAt, inRange).Return(2).Times(3)

	got := NewMachine(list).TotalUsingLoop()

	assert.Equal(t, 6, got)
	list.AssertNumberOfCalls(t, methodLen, 1)
	list.AssertNumberOfCalls(t, methodAt, 3)
	list.AssertCalled(t, methodAt, 0)
	list.AssertCalled(t, methodAt, 2)
	list.AssertNotCalled(t, methodAt, 3)
	list.AssertNotCalled(t, methodValues)
	list.AssertNotCalled(t, methodAll)
}

func TestTotalUsingIterator_WithMock(t *testing.T) {
	list := new(mockList)
	list.On(methodAll).Return(IntSlice{1, 2, 3}.All()).Once()

	assert.Equal(t, 6, NewMachine(list).TotalUsingIterator())
	list.AssertExpectations(t)
}

func TestTotalUsingSlice_WithMock(t *testing.T) {
	list := new(mockList)
	list.On(methodValues).Return([]int{1, 2, 3}).Once()

	assert.Equal(t, 6, NewMachine(list).TotalUsingSlice())
	list.AssertExpectations(t)
	list.AssertNotCalled(t, methodLen)
}

func TestTotals_WithSpy(t *testing.T) {
	spy := &spyList{List: IntSlice{1, 2, 3}}
	m := NewMachine(spy)

	assert.Equal(t, 6, m.TotalUsingLoop())
	assert.Equal(t, 6, m.TotalUsingIterator())
	assert.Equal(t, 6, m.TotalUsingSlice())

	assert.Equal(t, 1, spy.lens)
	assert.Equal(t, 3, spy.ats)
	assert.Equal(t, 1, spy.alls)
	assert.Equal(t, 1, spy.values)
}

func TestTotals_Empty(t *testing.T) {
	m := NewMachine(IntSlice{})

	assert.Zero(t, m.TotalUsingLoop())
	assert.Zero(t, m.TotalUsingIterator())
	assert.Zero(t, m.TotalUsingSlice())
}

func TestIntSlice_ValuesIsACopy(t *testing.T) {
	s := IntSlice{1, 2, 3}
	v := s.Values()
	v[0] = 100

	assert.Equal(t, 1, s.At(0))
}

func TestIntSlice_AllStopsEarly(t *testing.T) {
	var seen []int

	for v := range (IntSlice{1, 2, 3}).All() {
		seen = append(seen, v)
		if v == 2 {
			break
		}
	}

	assert.Equal(t, []int{1, 2}, seen)
}

func TestTotals_AgreeProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		values := rapid.SliceOf(rapid.IntRange(-1000, 1000)).Draw(rt, "values")
		m := NewMachine(IntSlice(values))

		loop, it, slice := m.TotalUsingLoop(), m.TotalUsingIterator(), m.TotalUsingSlice()
		if loop != it || it != slice {
			rt.Fatalf("totals disagree: loop=%d iterator=%d slice=%d", loop, it, slice)
		}
	})
}
