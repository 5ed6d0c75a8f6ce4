package cubemap

import (
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"

	"github.com/deepteams/webp"
	"github.com/pkg/errors"
)

// candidateExtensions are tried, in order, for each face basename. JPEG is
// the primary asset format; PNG and WebP (via deepteams/webp) are accepted
// as well so a desktop build can ship either.
var candidateExtensions = []string{".jpg", ".jpeg", ".png", ".webp"}

// LoadDir decodes the six cubemap faces named right/left/top/bottom/
// front/back from dir, trying each of candidateExtensions in turn for
// every face. All six faces must share identical width, height, and
// channel count; a mismatch or a missing face is a fatal configuration
// error.
func LoadDir(dir string) (*Cubemap, error) {
	var cm Cubemap

	var refWidth, refHeight int
	for face := Face(0); face < numFaces; face++ {
		img, path, err := loadFace(dir, FaceNames[face])
		if err != nil {
			return nil, errors.Wrapf(err, "cubemap: loading face %q", FaceNames[face])
		}

		faceImg := toFaceImage(img)
		if face == 0 {
			refWidth, refHeight = faceImg.Width, faceImg.Height
		} else if faceImg.Width != refWidth || faceImg.Height != refHeight {
			return nil, errors.Errorf("cubemap: face %q (%s) is %dx%d, expected %dx%d to match the other faces",
				FaceNames[face], path, faceImg.Width, faceImg.Height, refWidth, refHeight)
		}

		cm.Faces[face] = faceImg
	}

	return &cm, nil
}

func loadFace(dir, name string) (image.Image, string, error) {
	for _, ext := range candidateExtensions {
		path := filepath.Join(dir, name+ext)
		f, err := os.Open(path)
		if err != nil {
			continue
		}
		defer f.Close()

		img, decodeErr := decodeByExt(f, ext)
		if decodeErr != nil {
			return nil, path, errors.Wrapf(decodeErr, "decoding %s", path)
		}
		return img, path, nil
	}
	return nil, "", errors.Errorf("no file named %s.{jpg,jpeg,png,webp} found under %s", name, dir)
}

func decodeByExt(f *os.File, ext string) (image.Image, error) {
	switch ext {
	case ".jpg", ".jpeg":
		return jpeg.Decode(f)
	case ".png":
		return png.Decode(f)
	case ".webp":
		return webp.Decode(f)
	default:
		return nil, errors.Errorf("unsupported cubemap face extension %q", ext)
	}
}

// toFaceImage converts a decoded image.Image into the raw 8-bit RGB buffer
// the sampler reads.
func toFaceImage(img image.Image) FaceImage {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pix := make([]byte, w*h*3)

	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			pix[i] = byte(r >> 8)
			pix[i+1] = byte(g >> 8)
			pix[i+2] = byte(b >> 8)
			i += 3
		}
	}

	return FaceImage{Width: w, Height: h, Pix: pix}
}
