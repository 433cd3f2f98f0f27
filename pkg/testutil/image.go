package testutil

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/textproto"
)

// ImageFileHeader returns the header of a png image uploaded in a multipart
// form under field "image".
func ImageFileHeader(fileName string, width, height int) *multipart.FileHeader {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}

	data := new(bytes.Buffer)
	if err := png.Encode(data, img); err != nil {
		panic(err)
	}

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="image"; filename="`+fileName+`"`)
	header.Set("Content-Type", "image/png")
	part, err := writer.CreatePart(header)
	if err != nil {
		panic(err)
	}

	if _, err := part.Write(data.Bytes()); err != nil {
		panic(err)
	}

	if err := writer.Close(); err != nil {
		panic(err)
	}

	req, err := http.NewRequest(http.MethodPost, "/", body)
	if err != nil {
		panic(err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	if err := req.ParseMultipartForm(1 << 20); err != nil {
		panic(err)
	}

	return req.MultipartForm.File["image"][0]
}
