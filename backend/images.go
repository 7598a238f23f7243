package backend

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"hairlab-backoffice/models"
)

// ImageUpload is a carousel image with its descriptive fields.
type ImageUpload struct {
	Title       string
	Address     string
	Phone       string
	Filename    string
	ContentType string
	Data        io.Reader
}

// ListCarouselImages returns the carousel with image URLs made absolute.
func (c *Client) ListCarouselImages(ctx context.Context) ([]models.CarouselImage, error) {
	var images []models.CarouselImage
	if err := c.doJSON(ctx, http.MethodGet, "/api/carousel-images", nil, nil, &images); err != nil {
		return nil, err
	}
	for i := range images {
		images[i].URL = c.absolute(images[i].URL)
	}
	if images == nil {
		images = []models.CarouselImage{}
	}
	return images, nil
}

func (c *Client) UploadCarouselImage(ctx context.Context, up ImageUpload) (models.CarouselImage, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, f := range [][2]string{{"title", up.Title}, {"address", up.Address}, {"phone", up.Phone}} {
		if err := w.WriteField(f[0], f[1]); err != nil {
			return models.CarouselImage{}, err
		}
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, up.Filename))
	h.Set("Content-Type", up.ContentType)
	part, err := w.CreatePart(h)
	if err != nil {
		return models.CarouselImage{}, err
	}
	if _, err := io.Copy(part, up.Data); err != nil {
		return models.CarouselImage{}, err
	}
	if err := w.Close(); err != nil {
		return models.CarouselImage{}, err
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/api/carousel-images", nil, &buf)
	if err != nil {
		return models.CarouselImage{}, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	var img models.CarouselImage
	if err := c.send(req, &img); err != nil {
		return img, err
	}
	img.URL = c.absolute(img.URL)
	return img, nil
}

func (c *Client) UpdateCarouselImage(ctx context.Context, id string, upd models.CarouselImageUpdate) (models.CarouselImage, error) {
	var img models.CarouselImage
	if err := c.doJSON(ctx, http.MethodPut, "/api/carousel-images/"+escape(id), nil, upd, &img); err != nil {
		return img, err
	}
	img.URL = c.absolute(img.URL)
	return img, nil
}

func (c *Client) DeleteCarouselImage(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/carousel-images/"+escape(id), nil, nil, nil)
}

func (c *Client) absolute(path string) string {
	if path == "" || strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}
