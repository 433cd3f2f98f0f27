package common

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"mime/multipart"

	"github.com/nfnt/resize"
	"github.com/yatube-lab/backend/pkg/errorx"
	"github.com/yatube-lab/backend/pkg/storage"
	"github.com/yatube-lab/backend/pkg/xcontext"
)

const postImagePrefix = "posts"

// ProcessImage decodes an uploaded image, shrinks it to the configured max
// width and uploads it to the asset store. It returns the public url of the
// stored image.
func ProcessImage(
	ctx context.Context, fileStorage storage.Storage, header *multipart.FileHeader,
) (string, error) {
	cfg := xcontext.Configs(ctx).File
	if cfg.MaxSize > 0 && header.Size > cfg.MaxSize {
		return "", errorx.NewValidation(map[string]string{
			"image": fmt.Sprintf("Image must not be larger than %d bytes.", cfg.MaxSize),
		})
	}

	file, err := header.Open()
	if err != nil {
		return "", errorx.New(errorx.BadRequest, "Error retrieving the file")
	}
	defer file.Close()

	mime := header.Header.Get("Content-Type")
	img, err := decodeImg(mime, file)
	if err != nil {
		return "", errorx.NewValidation(map[string]string{
			"image": "Upload a valid image. The file you uploaded was either not an image or a corrupted image.",
		})
	}

	if cfg.MaxImageWidth > 0 && uint(img.Bounds().Dx()) > cfg.MaxImageWidth {
		img = resize.Resize(cfg.MaxImageWidth, 0, img, resize.Lanczos2)
	}

	b, err := encodeImg(mime, img)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot encode image: %v", err)
		return "", errorx.Unknown
	}

	resp, err := fileStorage.Upload(ctx, &storage.UploadObject{
		Bucket:   cfg.ImageBucket,
		Prefix:   postImagePrefix,
		FileName: header.Filename,
		Mime:     mime,
		Data:     b,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot upload image: %v", err)
		return "", errorx.Unknown
	}

	return resp.Url, nil
}

func decodeImg(mime string, data io.Reader) (img image.Image, err error) {
	switch mime {
	case "image/jpeg":
		img, err = jpeg.Decode(data)
	case "image/png":
		img, err = png.Decode(data)
	case "image/gif":
		img, err = gif.Decode(data)
	default:
		return nil, fmt.Errorf("unsupported image type %s", mime)
	}
	return img, err
}

func encodeImg(mime string, img image.Image) ([]byte, error) {
	buf := new(bytes.Buffer)

	var err error
	switch mime {
	case "image/jpeg":
		err = jpeg.Encode(buf, img, nil)
	case "image/png":
		err = png.Encode(buf, img)
	case "image/gif":
		err = gif.Encode(buf, img, nil)
	default:
		return nil, fmt.Errorf("unsupported image type %s", mime)
	}
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
