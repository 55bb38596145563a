package handler

import (
	"io"
	"log/slog"
	"net/http"

	"catrescue/config"
	"catrescue/internal/delivery/http/middleware"
	"catrescue/internal/delivery/http/response"
	"catrescue/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/bytes"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	imageFormField      = "image"
	defaultMaxImageSize = 5 << 20
)

// CatHandlerParams holds dependencies for CatHandler, injected by Fx.
type CatHandlerParams struct {
	fx.In

	CatUC  usecase.CatUsecase
	Config *config.Config
	Logger *slog.Logger
}

// CatHandler serves the cat registry.
type CatHandler struct {
	catUC        usecase.CatUsecase
	maxImageSize int64
	logger       *slog.Logger
}

// NewCatHandler is the constructor for CatHandler
func NewCatHandler(params CatHandlerParams) (*CatHandler, error) {
	maxImageSize := int64(defaultMaxImageSize)
	if params.Config.Storage != nil && params.Config.Storage.MaxImageSize != "" {
		parsed, err := bytes.Parse(params.Config.Storage.MaxImageSize)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid storage.maxImageSize %q", params.Config.Storage.MaxImageSize)
		}
		maxImageSize = parsed
	}

	return &CatHandler{
		catUC:        params.CatUC,
		maxImageSize: maxImageSize,
		logger:       params.Logger,
	}, nil
}

// CreateCat registers a cat added by the caller.
func (h *CatHandler) CreateCat(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return invalidUserID(c)
	}

	var input usecase.CreateCatInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cat input")
	}
	if err := c.Validate(&input); err != nil {
		return response.HandleAppError(c, err)
	}

	cat, err := h.catUC.CreateCat(c.Request().Context(), userID, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, cat, "Cat created")
}

// ListUnlistedCats returns cats that have no adoption listing.
func (h *CatHandler) ListUnlistedCats(c echo.Context) error {
	cats, err := h.catUC.ListUnlistedCats(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cats, "")
}

// ListMyCats returns the cats added by the caller.
func (h *CatHandler) ListMyCats(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return invalidUserID(c)
	}

	cats, err := h.catUC.ListMyCats(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cats, "")
}

// UpdateCat merge-patches a cat.
func (h *CatHandler) UpdateCat(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return invalidUserID(c)
	}

	catID, err := uuidParam(c, "id")
	if err != nil {
		return invalidID(c, "cat")
	}

	var input usecase.UpdateCatInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cat input")
	}
	if err := c.Validate(&input); err != nil {
		return response.HandleAppError(c, err)
	}

	cat, err := h.catUC.UpdateCat(c.Request().Context(), userID, catID, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cat, "Cat updated")
}

// DeleteCat removes a cat.
func (h *CatHandler) DeleteCat(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return invalidUserID(c)
	}

	catID, err := uuidParam(c, "id")
	if err != nil {
		return invalidID(c, "cat")
	}

	if err := h.catUC.DeleteCat(c.Request().Context(), userID, catID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Cat deleted")
}

// UploadCatImage stores the multipart "image" field as the cat's picture.
func (h *CatHandler) UploadCatImage(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return invalidUserID(c)
	}

	catID, err := uuidParam(c, "id")
	if err != nil {
		return invalidID(c, "cat")
	}

	fileHeader, err := c.FormFile(imageFormField)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Missing image file")
	}
	if fileHeader.Size > h.maxImageSize {
		return response.Error(c, http.StatusRequestEntityTooLarge, "IMAGE_TOO_LARGE",
			"Image exceeds the size limit", bytes.Format(h.maxImageSize))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded image")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.maxImageSize+1))
	if err != nil {
		return errors.Wrap(err, "failed to read uploaded image")
	}
	if int64(len(data)) > h.maxImageSize {
		return response.Error(c, http.StatusRequestEntityTooLarge, "IMAGE_TOO_LARGE",
			"Image exceeds the size limit", bytes.Format(h.maxImageSize))
	}

	contentType := fileHeader.Header.Get(echo.HeaderContentType)
	if contentType == "" || contentType == echo.MIMEOctetStream {
		contentType = http.DetectContentType(data)
	}

	cat, err := h.catUC.UploadCatImage(c.Request().Context(), userID, catID, &usecase.CatImageInput{
		Filename:    fileHeader.Filename,
		ContentType: contentType,
		Data:        data,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cat, "Image uploaded")
}
