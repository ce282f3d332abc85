// Package view holds the recipe page: its state, the pure functions that
// move it forward, the controller that talks to the backend and the
// template engine that renders it.
package view

import (
	"Recette/domain"
	"bytes"
	"encoding/base64"
	"io"
	"net/http"
	"strings"
)

type (
	// State is everything the page shows. It is passed by value; update
	// functions return a new State and never touch the backend.
	State struct {
		Recipes   []domain.Recipe `json:"recipes"`
		Loading   bool            `json:"loading"`
		ShowForm  bool            `json:"show_form"`
		Uploading bool            `json:"uploading"`
		Form      Form            `json:"form"`
		Alert     string          `json:"alert,omitempty"`
	}

	Form struct {
		Title        string `json:"title"`
		Description  string `json:"description"`
		Ingredients  string `json:"ingredients"`
		Instructions string `json:"instructions"`
		// ImageName and ImagePreview describe the selected image; the
		// preview is a data URL holding the full file.
		ImageName    string              `json:"image_name,omitempty"`
		ImagePreview string              `json:"image_preview,omitempty"`
		Image        *domain.ImageUpload `json:"-"`
		// Token identifies one rendering of the form. A token is accepted
		// by Page.Submit at most once.
		Token string `json:"token,omitempty"`
	}
)

func NewState() State {
	return State{
		Recipes: []domain.Recipe{},
		Loading: true,
	}
}

func ToggleForm(s State) State {
	s.ShowForm = !s.ShowForm
	return s
}

// SelectImage reads the file fully and keeps it with an inline preview. A
// read error leaves the state as it was.
func SelectImage(s State, name, contentType string, r io.Reader) State {
	data, err := io.ReadAll(r)
	if err != nil {
		return s
	}
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}

	s.Form.Image = &domain.ImageUpload{
		Name:        name,
		ContentType: contentType,
		Data:        data,
	}
	s.Form.ImageName = name
	s.Form.ImagePreview = dataURL(contentType, data)
	return s
}

// RestoreImage brings back an image carried in the form as a data URL.
// Anything that is not a base64 data URL is ignored.
func RestoreImage(s State, name, preview string) State {
	contentType, data, ok := parseDataURL(preview)
	if !ok {
		return s
	}
	return SelectImage(s, name, contentType, bytes.NewReader(data))
}

// Loaded ends a list load. On error the list is left empty.
func Loaded(s State, recipes []domain.Recipe, err error) State {
	s.Loading = false
	if err != nil || recipes == nil {
		s.Recipes = []domain.Recipe{}
		return s
	}
	s.Recipes = recipes
	return s
}

func BeginSubmit(s State) State {
	s.Uploading = true
	s.Alert = ""
	return s
}

func SubmitSucceeded(s State) State {
	s.Form = Form{}
	s.ShowForm = false
	s.Uploading = false
	s.Alert = ""
	return s
}

// SubmitFailed keeps the form open and populated for a retry.
func SubmitFailed(s State) State {
	s.Uploading = false
	s.ShowForm = true
	s.Alert = domain.MessageAlertCreateRecipe
	return s
}

func (s State) Request() domain.CreateRecipeRequest {
	return domain.CreateRecipeRequest{
		Title:        s.Form.Title,
		Description:  s.Form.Description,
		Ingredients:  s.Form.Ingredients,
		Instructions: s.Form.Instructions,
		Image:        s.Form.Image,
	}
}

func dataURL(contentType string, data []byte) string {
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

func parseDataURL(s string) (string, []byte, bool) {
	rest, ok := strings.CutPrefix(s, "data:")
	if !ok {
		return "", nil, false
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, false
	}
	contentType, ok := strings.CutSuffix(meta, ";base64")
	if !ok {
		return "", nil, false
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, false
	}
	return contentType, data, true
}
