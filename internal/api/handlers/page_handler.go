package handlers

import (
	"Recette/internal/view"

	"github.com/gofiber/fiber/v2"
)

const pageTemplate = "page"

type (
	PageHandler interface {
		Index(c *fiber.Ctx) error
		Submit(c *fiber.Ctx) error
	}

	pageHandler struct {
		page *view.Page
	}
)

func NewPageHandler(page *view.Page) PageHandler {
	return &pageHandler{page: page}
}

func (h *pageHandler) Index(c *fiber.Ctx) error {
	return h.render(c, h.page.Load(c.Context(), view.NewState()))
}

// Submit handles the form. action=preview only renders the selected image;
// anything else runs the creation flow. A save, or a repeated token, is
// answered with 303 to the list so a reload does not post again.
func (h *pageHandler) Submit(c *fiber.Ctx) error {
	s := view.ToggleForm(view.NewState())
	s.Form = view.Form{
		Title:        c.FormValue("title"),
		Description:  c.FormValue("description"),
		Ingredients:  c.FormValue("ingredients"),
		Instructions: c.FormValue("instructions"),
		Token:        c.FormValue("token"),
	}
	s = selectImage(c, s)

	if c.FormValue("action") == "preview" {
		return h.render(c, h.page.Load(c.Context(), s))
	}

	s = h.page.Submit(c.Context(), s)
	if s.Alert == "" {
		return c.Redirect("/", fiber.StatusSeeOther)
	}
	return h.render(c, h.page.Load(c.Context(), s))
}

// render issues a fresh token for every form it serves.
func (h *pageHandler) render(c *fiber.Ctx, s view.State) error {
	return c.Render(pageTemplate, h.page.IssueToken(s))
}

// selectImage prefers a newly chosen file over the one carried from a
// previous render. Files that cannot be opened are ignored.
func selectImage(c *fiber.Ctx, s view.State) view.State {
	file, err := c.FormFile("image")
	if err != nil || file.Filename == "" {
		return view.RestoreImage(s, c.FormValue("image_name"), c.FormValue("image_data"))
	}

	f, err := file.Open()
	if err != nil {
		return s
	}
	defer f.Close()

	return view.SelectImage(s, file.Filename, file.Header.Get("Content-Type"), f)
}
