package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"questions/internal/domain"
)

type fakeService struct {
	answer *domain.Answer
	err    error
	asked  []string
}

func (f *fakeService) Answer(query string) (*domain.Answer, error) {
	f.asked = append(f.asked, query)
	return f.answer, f.err
}

func ask(t *testing.T, m Model, query string) Model {
	t.Helper()
	m.input.SetValue(query)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	out, ok := next.(Model)
	require.True(t, ok)
	return out
}

func sized(t *testing.T, m Model) Model {
	t.Helper()
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return next.(Model)
}

func TestModelAnswer(t *testing.T) {
	svc := &fakeService{answer: &domain.Answer{
		Query:     "cats",
		Files:     []string{"cats.txt"},
		Sentences: []string{"Cats purr.", "Cats are mammals."},
	}}
	m := New(svc, "1 documents, 4 distinct words.")
	assert.Equal(t, "Loading...", m.View())

	m = sized(t, m)
	assert.Contains(t, m.View(), "No answer yet.")
	assert.Contains(t, m.View(), "1 documents, 4 distinct words.")

	m = ask(t, m, "  cats  ")
	assert.Equal(t, []string{"cats"}, svc.asked)
	assert.Equal(t, `Answer for "cats"`, m.status)
	assert.Contains(t, m.renderAnswer(), "Sentence 1/2  from cats.txt")
	assert.Contains(t, m.renderAnswer(), "Cats purr.")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(Model)
	assert.Equal(t, 1, m.cursor)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(Model)
	assert.Equal(t, 0, m.cursor)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(Model)
	assert.Equal(t, 1, m.cursor)
}

func TestModelBlankQueryIgnored(t *testing.T) {
	svc := &fakeService{}
	m := ask(t, sized(t, New(svc, "")), "   ")
	assert.Empty(t, svc.asked)
	assert.Nil(t, m.answer)
}

func TestModelNoSentences(t *testing.T) {
	svc := &fakeService{answer: &domain.Answer{Files: []string{"a.txt"}}}
	m := ask(t, sized(t, New(svc, "")), "zebra")
	assert.Equal(t, "No matching sentence in a.txt.", m.renderAnswer())
}

func TestModelError(t *testing.T) {
	svc := &fakeService{err: assert.AnError}
	m := ask(t, sized(t, New(svc, "")), "cats")
	assert.Equal(t, "Error: "+assert.AnError.Error(), m.status)
	assert.Nil(t, m.answer)
}

func TestModelQuit(t *testing.T) {
	m := New(&fakeService{}, "")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}
