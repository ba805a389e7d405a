package services

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/localnerve/reviewdb/internal/blob"
	"github.com/localnerve/reviewdb/internal/models"
	"github.com/localnerve/reviewdb/internal/store"
	"github.com/localnerve/reviewdb/internal/types"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// photoLocks serializes position assignment per business. MAX(position)+1
// followed by an insert is not atomic, so two concurrent uploads to the same
// business would otherwise race for the same slot.
var photoLocks sync.Map // uint64 -> *sync.Mutex

func lockBusinessPhotos(businessID uint64) *sync.Mutex {
	lock, _ := photoLocks.LoadOrStore(businessID, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// forgetBusinessPhotoLock drops the per-business mutex once the business is
// deleted, so the table does not grow without bound. An upload racing the
// delete may re-create the entry; that only costs one mutex.
func forgetBusinessPhotoLock(businessID uint64) {
	photoLocks.Delete(businessID)
}

// UploadPhoto stores the image bytes in the blob sink and records the photo
// row at the next free position for the business. The row and the blob write
// share one transaction: a failed blob write rolls the row back.
func UploadPhoto(ctx context.Context, db *gorm.DB, photos blob.Store, businessID uint64, image []byte, caption string) (types.Result, error) {
	business, err := store.BusinessByID(db, businessID)
	if err != nil {
		return types.Result{}, err
	}
	if business == nil {
		return types.Failure("Business not found", types.LevelError, nil), nil
	}

	lock := lockBusinessPhotos(businessID)
	lock.Lock()
	defer lock.Unlock()

	contentType := http.DetectContentType(image)
	meta, err := json.Marshal(map[string]interface{}{
		"contentType": contentType,
		"size":        len(image),
	})
	if err != nil {
		return types.Result{}, err
	}

	var photo models.Photo
	err = db.Transaction(func(tx *gorm.DB) error {
		max, err := store.MaxPhotoPosition(tx, businessID)
		if err != nil {
			return err
		}
		photo = models.Photo{
			BusinessID: businessID,
			Position:   max + 1,
			Caption:    caption,
			Meta:       models.JSON{JSON: datatypes.JSON(meta)},
		}
		if err := store.InsertPhoto(tx, &photo); err != nil {
			return err
		}
		return photos.Put(ctx, blob.PhotoKey(photo.ID), bytes.NewReader(image), blob.PutOptions{
			ContentType: contentType,
		})
	})
	if err != nil {
		return types.Result{}, err
	}
	return types.Success("Photo successfully uploaded", &photo), nil
}
