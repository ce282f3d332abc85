package view

import (
	"Recette/domain"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, s State) string {
	t.Helper()
	e := NewEngine()
	require.NoError(t, e.Load())

	var buf bytes.Buffer
	require.NoError(t, e.Render(&buf, "page", s))
	return buf.String()
}

func TestRender_EmptyState(t *testing.T) {
	out := render(t, Loaded(NewState(), nil, nil))

	assert.Contains(t, out, "No recipes yet")
	assert.NotContains(t, out, `class="recipe-card"`)
	assert.NotContains(t, out, "<details class=\"new-recipe\" open>")
}

func TestRender_Loading(t *testing.T) {
	out := render(t, NewState())
	assert.Contains(t, out, "Loading recipes...")
}

func TestRender_CardsInStateOrder(t *testing.T) {
	s := Loaded(NewState(), []domain.Recipe{
		{ID: "1", Title: "Newest", Ingredients: "Water\nTea", Instructions: "Boil.", ImageURL: "https://cdn.test/a.png"},
		{ID: "2", Title: "Oldest", Description: "Plain", Ingredients: "Bread", Instructions: "Toast."},
	}, nil)

	out := render(t, s)

	assert.Equal(t, 2, strings.Count(out, `class="recipe-card"`))
	assert.Less(t, strings.Index(out, "Newest"), strings.Index(out, "Oldest"))
	assert.Contains(t, out, `src="https://cdn.test/a.png"`)
	assert.Contains(t, out, "Plain")
	assert.NotContains(t, out, "No recipes yet")
}

func TestRender_OpenFormKeepsValues(t *testing.T) {
	s := ToggleForm(Loaded(NewState(), nil, nil))
	s.Form = Form{Title: "Tea <hot>", Ingredients: "Water", Instructions: "Boil."}
	s = SelectImage(s, "a.gif", "image/gif", bytes.NewReader([]byte("GIF89a")))
	s = SubmitFailed(s)

	out := render(t, s)

	assert.Contains(t, out, `<details class="new-recipe" open>`)
	assert.Contains(t, out, `value="Tea &lt;hot&gt;"`)
	assert.Contains(t, out, domain.MessageAlertCreateRecipe)
	assert.Contains(t, out, `src="data:image/gif;base64,R0lGODlh"`)
	assert.Contains(t, out, `name="image_data"`)
}

func TestRender_UploadingDisablesSave(t *testing.T) {
	s := BeginSubmit(ToggleForm(Loaded(NewState(), nil, nil)))

	out := render(t, s)

	assert.Contains(t, out, "Saving...")
	assert.Contains(t, out, " disabled>")
}

func TestRender_FormCarriesToken(t *testing.T) {
	s := Loaded(NewState(), nil, nil)
	s.Form.Token = "3f2a9c1e-token"

	out := render(t, s)

	assert.Contains(t, out, `name="token" value="3f2a9c1e-token"`)
}

func TestRender_UnknownTemplate(t *testing.T) {
	e := NewEngine()
	var buf bytes.Buffer
	assert.Error(t, e.Render(&buf, "missing", nil))
}

func TestSafeURL(t *testing.T) {
	assert.Equal(t, "data:image/png;base64,AA==", string(safeURL("data:image/png;base64,AA==")))
	assert.Equal(t, "", string(safeURL("javascript:alert(1)")))
	assert.Equal(t, "", string(safeURL("data:text/html;base64,AA==")))
}
