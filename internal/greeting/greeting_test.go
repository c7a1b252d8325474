package greeting

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lueurxax/greeter/internal/core/domain"
	coreerrors "github.com/lueurxax/greeter/internal/core/errors"
	"github.com/lueurxax/greeter/internal/core/ports/mocks"
	"github.com/lueurxax/greeter/internal/storage/memory"
)

const (
	methodFindByID         = "FindByID"
	methodTranslate        = "Translate"
	methodTranslateDefault = "TranslateDefault"
	langEn                 = "en"
	langFr                 = "fr"
	greetingGrace          = "Hello, Grace, from Mockito!"
	greetingWorld          = "Hello, World, from Mockito!"
)

var (
	errRepository  = errors.New("database unavailable")
	errTranslation = errors.New("translation service down")
	errInvalidType = fmt.Errorf("invalid type")
)

var grace = domain.NewPerson(1, "Grace", "Hopper", 1906, 12, 9)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) Save(ctx context.Context, p domain.Person) (domain.Person, error) {
	args := m.Called(ctx, p)

	res, ok := args.Get(0).(domain.Person)
	if !ok {
		return domain.Person{}, errInvalidType
	}

	return res, args.Error(1) //nolint:wrapcheck
}

func (m *mockRepo) FindByID(ctx context.Context, id int) (domain.Person, bool, error) {
	args := m.Called(ctx, id)

	res, ok := args.Get(0).(domain.Person)
	if !ok {
		return domain.Person{}, false, errInvalidType
	}

	return res, args.Bool(1), args.Error(2) //nolint:wrapcheck
}

func (m *mockRepo) FindAll(ctx context.Context) ([]domain.Person, error) {
	args := m.Called(ctx)

	res, _ := args.Get(0).([]domain.Person)

	return res, args.Error(1) //nolint:wrapcheck
}

func (m *mockRepo) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)

	return args.Int(0), args.Error(1) //nolint:wrapcheck
}

func (m *mockRepo) Delete(ctx context.Context, p domain.Person) error {
	return m.Called(ctx, p).Error(0) //nolint:wrapcheck
}

type mockTranslator struct {
	mock.Mock
}

func (m *mockTranslator) Translate(ctx context.Context, text, source, target string) (string, error) {
	args := m.Called(ctx, text, source, target)

	if answer, ok := args.Get(0).(func(context.Context, string, string, string) string); ok {
		return answer(ctx, text, source, target), args.Error(1) //nolint:wrapcheck
	}

	return args.String(0), args.Error(1) //nolint:wrapcheck
}

func (m *mockTranslator) TranslateDefault(ctx context.Context, text string) (string, error) {
	args := m.Called(ctx, text)

	return args.String(0), args.Error(1) //nolint:wrapcheck
}

func TestGreet_KnownPerson(t *testing.T) {
	repo := new(mockRepo)
	tr := new(mockTranslator)

	repo.On(methodFindByID, mock.Anything, 1).Return(grace, true, nil).Once()
	tr.On(methodTranslate, mock.Anything, greetingGrace, langEn, langEn).Return(greetingGrace, nil).Once()

	got, err := NewService(repo, tr).Greet(context.Background(), 1, langEn, langEn)

	require.NoError(t, err)
	assert.Equal(t, greetingGrace, got)
	repo.AssertExpectations(t)
	tr.AssertExpectations(t)
}

func TestGreet_UnknownIDUsesFallback(t *testing.T) {
	repo := new(mockRepo)
	tr := new(mockTranslator)

	repo.On(methodFindByID, mock.Anything, 999).Return(domain.Person{}, false, nil).Once()
	tr.On(methodTranslate, mock.Anything, greetingWorld, langEn, langEn).Return(greetingWorld, nil).Once()

	got, err := NewService(repo, tr).Greet(context.Background(), 999, langEn, langEn)

	require.NoError(t, err)
	assert.Equal(t, greetingWorld, got)
	tr.AssertNumberOfCalls(t, methodTranslate, 1)
}

func TestGreet_RepositoryBeforeTranslator(t *testing.T) {
	repo := new(mockRepo)
	tr := new(mockTranslator)

	var order []string

	find := repo.On(methodFindByID, mock.Anything, 1).Return(grace, true, nil).Once().
		Run(func(mock.Arguments) { order = append(order, methodFindByID) })
	tr.On(methodTranslate, mock.Anything, mock.AnythingOfType("string"), langEn, langEn).
		Return(greetingGrace, nil).Once().
		NotBefore(find).
		Run(func(mock.Arguments) { order = append(order, methodTranslate) })

	_, err := NewService(repo, tr).Greet(context.Background(), 1, langEn, langEn)

	require.NoError(t, err)
	assert.Equal(t, []string{methodFindByID, methodTranslate}, order)
}

func TestGreet_NeverTranslatesTheID(t *testing.T) {
	tr := mocks.NewTranslator()
	svc := NewService(memory.NewPersonRepository(grace), tr)

	for _, id := range []int{1, 42, 999} {
		_, err := svc.Greet(context.Background(), id, langEn, langFr)
		require.NoError(t, err)
	}

	calls := tr.Calls()
	require.Len(t, calls, 3)

	for i, id := range []int{1, 42, 999} {
		assert.NotContains(t, calls[i].Text, fmt.Sprint(id))
		assert.Equal(t, langEn, calls[i].Source)
		assert.Equal(t, langFr, calls[i].Target)
	}

	assert.Equal(t, greetingWorld, calls[1].Text)
	assert.Equal(t, greetingWorld, calls[2].Text)
}

func TestGreet_TranslatorAnswers(t *testing.T) {
	tests := []struct {
		name   string
		answer func(text string) string
		want   string
	}{
		{name: "returns first argument", answer: func(text string) string { return text }, want: greetingGrace},
		{name: "appends suffix", answer: func(text string) string { return text + " (translated)" }, want: greetingGrace + " (translated)"},
		{name: "upper case", answer: strings.ToUpper, want: strings.ToUpper(greetingGrace)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := new(mockTranslator)
			tr.On(methodTranslate, mock.Anything, mock.AnythingOfType("string"), mock.Anything, mock.Anything).
				Return(func(_ context.Context, text, _, _ string) string { return tt.answer(text) }, nil)

			svc := NewService(memory.NewPersonRepository(grace), tr)

			got, err := svc.Greet(context.Background(), 1, langEn, langEn)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGreet_RepositoryErrorPropagates(t *testing.T) {
	repo := new(mockRepo)
	tr := new(mockTranslator)

	repo.On(methodFindByID, mock.Anything, 1).Return(domain.Person{}, false, errRepository).Once()

	_, err := NewService(repo, tr).Greet(context.Background(), 1, langEn, langEn)

	assert.Same(t, errRepository, err)
	tr.AssertNotCalled(t, methodTranslate, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGreet_TranslatorErrorPropagates(t *testing.T) {
	tr := new(mockTranslator)
	tr.On(methodTranslate, mock.Anything, greetingGrace, langEn, langFr).Return("", errTranslation).Once()

	_, err := NewService(memory.NewPersonRepository(grace), tr).Greet(context.Background(), 1, langEn, langFr)

	assert.Same(t, errTranslation, err)
}

func TestGreetDefault_UsesDefaultPair(t *testing.T) {
	tr := new(mockTranslator)
	tr.On(methodTranslateDefault, mock.Anything, greetingGrace).Return("Bonjour, Grace", nil).Once()

	got, err := NewService(memory.NewPersonRepository(grace), tr).GreetDefault(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, "Bonjour, Grace", got)
	tr.AssertExpectations(t)
	tr.AssertNotCalled(t, methodTranslate, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGreetPerson_SkipsRepository(t *testing.T) {
	repo := new(mockRepo)
	tr := mocks.NewTranslator()

	got, err := NewService(repo, tr).GreetPerson(context.Background(), grace, langEn, langEn)

	require.NoError(t, err)
	assert.Equal(t, greetingGrace, got)
	repo.AssertNotCalled(t, methodFindByID, mock.Anything, mock.Anything)
}

func TestTemplate_GetterSetter(t *testing.T) {
	svc := New(WithRepository(memory.NewPersonRepository(grace)))

	assert.Equal(t, DefaultTemplate, svc.Template())

	svc.SetTemplate("Hi %s!")
	assert.Equal(t, "Hi %s!", svc.Template())

	got, err := svc.Greet(context.Background(), 1, langEn, langEn)
	require.NoError(t, err)
	assert.Equal(t, "Hi Grace!", got)
}

func TestNew_Options(t *testing.T) {
	svc := New(WithTemplate("Hey %s"), WithFallbackName("stranger"), WithLogger(nil))

	got, err := svc.GreetDefault(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, "Hey stranger", got)
}

func TestNew_DefaultsGreetWorld(t *testing.T) {
	got, err := New().Greet(context.Background(), 1, langEn, langEn)

	require.NoError(t, err)
	assert.Equal(t, greetingWorld, got)
}

func TestValidateTemplate(t *testing.T) {
	tests := []struct {
		template string
		valid    bool
	}{
		{template: DefaultTemplate, valid: true},
		{template: "%s", valid: true},
		{template: "100%% %s", valid: true},
		{template: "Hello", valid: false},
		{template: "%s and %s", valid: false},
		{template: "%s is %d", valid: false},
		{template: "", valid: false},
	}

	for _, tt := range tests {
		err := ValidateTemplate(tt.template)
		if tt.valid {
			assert.NoError(t, err, tt.template)
		} else {
			assert.ErrorIs(t, err, coreerrors.ErrInvalidTemplate, tt.template)
		}
	}
}
