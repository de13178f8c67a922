package handler

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/getready/ats-system/internal/core/ports"
)

// FileHandler mediates resume access. Download and view take the access
// token as a query parameter rather than a header, so the URLs work as
// plain browser navigations.
type FileHandler struct {
	service ports.FileService
}

func NewFileHandler(service ports.FileService) *FileHandler {
	return &FileHandler{service: service}
}

type fileTokenResponse struct {
	Token string `json:"token"`
}

// IssueToken handles POST /v1/files/:id/token.
//
// @Summary      Issue a short-lived resume access token
// @Tags         files
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "File ID"
// @Success      200  {object}  envelope
// @Failure      403  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /v1/files/{id}/token [post]
func (h *FileHandler) IssueToken(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	token, err := h.service.IssueToken(c.Request().Context(), c.Param("id"), actor)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "", fileTokenResponse{Token: token})
}

// Download handles GET /v1/files/:id/download?token=...
//
// @Summary      Download a resume
// @Tags         files
// @Produce      octet-stream
// @Param        id     path      string  true  "File ID"
// @Param        token  query     string  true  "Access token"
// @Success      200    {file}    file
// @Failure      401    {object}  envelope
// @Failure      404    {object}  envelope
// @Router       /v1/files/{id}/download [get]
func (h *FileHandler) Download(c echo.Context) error {
	return h.serve(c, "attachment")
}

// View handles GET /v1/files/:id/view?token=... and renders inline, letting
// the browser open PDFs in a tab.
//
// @Summary      View a resume inline
// @Tags         files
// @Produce      octet-stream
// @Param        id     path      string  true  "File ID"
// @Param        token  query     string  true  "Access token"
// @Success      200    {file}    file
// @Failure      401    {object}  envelope
// @Failure      404    {object}  envelope
// @Router       /v1/files/{id}/view [get]
func (h *FileHandler) View(c echo.Context) error {
	return h.serve(c, "inline")
}

func (h *FileHandler) serve(c echo.Context, disposition string) error {
	file, rc, err := h.service.Open(c.Request().Context(), c.Param("id"), c.QueryParam("token"))
	if err != nil {
		return err
	}
	defer rc.Close()

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("%s; filename=%q", disposition, file.OriginalName))
	return c.Stream(http.StatusOK, mediaType(file.OriginalName), rc)
}

func mediaType(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return "application/pdf"
	case ".txt":
		return "text/plain; charset=utf-8"
	case ".doc":
		return "application/msword"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	default:
		return "application/octet-stream"
	}
}
