package impl

import (
	"context"
	"strings"
	"testing"

	domainerrors "zeneasy/internal/domain/errors"
	"zeneasy/internal/domain/service"
	mockSvc "zeneasy/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUploadService_Upload(t *testing.T) {
	tests := []struct {
		name       string
		object     *service.UploadObject
		storageErr error
		wantURL    string
		wantErr    error
		wantFolder string
	}{
		{
			name:       "image goes to default folder",
			object:     &service.UploadObject{Size: 10, ContentType: "Image/PNG; charset=binary", FileName: "a.png"},
			wantURL:    "https://cdn.example.com/uploads/a.png",
			wantFolder: defaultUploadFolder,
		},
		{
			name:       "pdf into named folder",
			object:     &service.UploadObject{Size: 10, ContentType: "application/pdf", Folder: "certificates"},
			wantURL:    "https://cdn.example.com/certificates/x.pdf",
			wantFolder: "certificates",
		},
		{
			name:    "unsupported type",
			object:  &service.UploadObject{Size: 10, ContentType: "text/html"},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "empty file",
			object:  &service.UploadObject{ContentType: "image/jpeg"},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "over the size limit",
			object:  &service.UploadObject{Size: 2048, ContentType: "image/jpeg"},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "folder traversal",
			object:  &service.UploadObject{Size: 10, ContentType: "image/jpeg", Folder: "../etc"},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:       "storage failure",
			object:     &service.UploadObject{Size: 10, ContentType: "image/webp"},
			storageErr: errors.New("bucket unavailable"),
			wantErr:    domainerrors.ErrUploadFailed,
			wantFolder: defaultUploadFolder,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage := mockSvc.NewMockObjectStorage(t)
			srv := NewUploadService(UploadServiceParams{
				Storage: storage,
				Config:  newTestConfig(),
				Logger:  newDiscardLogger(),
			})

			if tt.wantFolder != "" {
				storage.EXPECT().
					Upload(mock.Anything, mock.MatchedBy(func(o *service.UploadObject) bool {
						return o.Folder == tt.wantFolder && !strings.Contains(o.ContentType, ";")
					})).
					Return(tt.wantURL, tt.storageErr)
			}

			url, err := srv.Upload(context.Background(), tt.object)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantURL, url)
		})
	}
}
