package handler

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/BossEnterprises/chataru_api/internal/models"
	"github.com/BossEnterprises/chataru_api/internal/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeEnquiryStore struct {
	enquiries []models.Enquiry
	insertErr error
	listErr   error
}

func (f *fakeEnquiryStore) Insert(_ context.Context, e *models.Enquiry) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.enquiries = append(f.enquiries, *e)
	return nil
}

func (f *fakeEnquiryStore) List(context.Context) ([]models.Enquiry, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.enquiries, nil
}

type productUpdate struct {
	id          int
	name        string
	price       int
	description string
	imagePath   *string
}

type fakeProductStore struct {
	products  []models.Product
	updates   []productUpdate
	deleted   []int
	missing   bool // Update/Delete report not found
	insertErr error
	listErr   error
}

func (f *fakeProductStore) Insert(_ context.Context, p *models.Product) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.products = append(f.products, *p)
	return nil
}

func (f *fakeProductStore) List(context.Context) ([]models.Product, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.products, nil
}

func (f *fakeProductStore) Update(_ context.Context, id int, name string, price int, description string, imagePath *string) error {
	if f.missing {
		return utils.ErrProductNotFound
	}
	f.updates = append(f.updates, productUpdate{id, name, price, description, imagePath})
	return nil
}

func (f *fakeProductStore) Delete(_ context.Context, id int) error {
	if f.missing {
		return utils.ErrProductNotFound
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeImageStore struct {
	saved   []string
	saveErr error
}

func (f *fakeImageStore) Save(_ io.Reader, originalName string) (string, error) {
	if f.saveErr != nil {
		return "", f.saveErr
	}
	f.saved = append(f.saved, originalName)
	return "/uploads/1700000000_" + originalName, nil
}

// multipartBody builds a multipart form with the given fields and, when
// fileName is non-empty, a file part named "image".
func multipartBody(t *testing.T, fields map[string]string, fileName, fileContent string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if fileName != "" {
		fw, err := mw.CreateFormFile("image", fileName)
		require.NoError(t, err)
		_, err = fw.Write([]byte(fileContent))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}
