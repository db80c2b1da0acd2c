package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/mimistyle/backend/internal/service"
)

type ImageHandler struct {
	svc service.ImageService
}

func NewImageHandler(svc service.ImageService) *ImageHandler {
	return &ImageHandler{svc: svc}
}

// Upload accepts multipart "files" parts, stores each under a generated
// name and returns the names in upload order.
func (h *ImageHandler) Upload(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid multipart form"))
	}
	headers := form.File["files"]

	files := make([]service.UploadFile, 0, len(headers))
	closers := make([]func() error, 0, len(headers))
	defer func() {
		for _, closeFn := range closers {
			_ = closeFn()
		}
	}()
	for _, fh := range headers {
		src, err := fh.Open()
		if err != nil {
			return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "unreadable file part"))
		}
		closers = append(closers, src.Close)
		files = append(files, service.UploadFile{Filename: fh.Filename, Content: src})
	}

	names, err := h.svc.Upload(c.Request().Context(), files)
	if err != nil {
		return writeServiceError(c, err, "failed to store images")
	}
	return c.JSON(http.StatusOK, names)
}

func (h *ImageHandler) Attach(c echo.Context) error {
	productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid product id"))
	}
	var filenames []string
	if err := c.Bind(&filenames); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	images, err := h.svc.Attach(c.Request().Context(), productID, filenames)
	if err != nil {
		return writeServiceError(c, err, "failed to save image names")
	}

	type imageResponse struct {
		ID          uint64 `json:"id"`
		ProductID   uint64 `json:"productId"`
		ImageURL    string `json:"imageUrl"`
		IsThumbnail bool   `json:"isThumbnail"`
	}
	resp := make([]imageResponse, 0, len(images))
	for _, img := range images {
		resp = append(resp, imageResponse{
			ID:          img.ID,
			ProductID:   img.ProductID,
			ImageURL:    img.ImageURL,
			IsThumbnail: img.IsThumbnail,
		})
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *ImageHandler) Delete(c echo.Context) error {
	productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid product id"))
	}
	filename := c.Param("filename")
	if err := h.svc.Delete(c.Request().Context(), productID, filename); err != nil {
		return writeServiceError(c, err, "failed to delete image")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"success": true})
}

func (h *ImageHandler) Serve(c echo.Context) error {
	path, err := h.svc.ResolvePath(c.Param("filename"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid filename"))
	}
	return c.File(path)
}
